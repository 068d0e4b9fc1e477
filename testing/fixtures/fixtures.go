// Package fixtures holds fixed, well-known Ed25519 identities for use in
// tests and examples, so signed UCANs are reproducible across runs.
package fixtures

import (
	"encoding/hex"

	"github.com/dagucan/dagucan/principal/ed25519/signer"
)

func seed(hexSeed string) []byte {
	b, err := hex.DecodeString(hexSeed)
	if err != nil {
		panic(err)
	}
	return b
}

// Alice is a fixed test identity.
var Alice, _ = signer.FromSeed(seed("a11ce00000000000000000000000000000000000000000000000000000000000"))

// Bob is a fixed test identity.
var Bob, _ = signer.FromSeed(seed("b0b0000000000000000000000000000000000000000000000000000000000000"))

// Mallory is a fixed test identity, used where a test needs a party without
// legitimate delegated authority.
var Mallory, _ = signer.FromSeed(seed("ca11000000000000000000000000000000000000000000000000000000000000"))

// Service is a fixed test identity representing a service principal.
var Service, _ = signer.FromSeed(seed("5e4b1ce000000000000000000000000000000000000000000000000000000000"))
