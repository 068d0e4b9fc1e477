// Package principal defines the Signer/Verifier capability interfaces that
// concrete cryptographic backends (Ed25519, RSA, ...) implement. Signing
// and verification algorithms themselves are out of this library's scope;
// this package only describes the shape callers plug them in through.
package principal

import (
	"github.com/dagucan/dagucan/did"
	"github.com/dagucan/dagucan/ucan/crypto/signature"
)

// Verifier authenticates signatures produced by a corresponding Signer.
type Verifier interface {
	DID() did.DID
	// Code is the multicodec code of the verifier's key algorithm.
	Code() uint64
	// Verify reports whether msg was signed by the corresponding Signer.
	Verify(msg []byte, sig signature.Signature) bool
	// Encode returns the tagged raw public key bytes.
	Encode() []byte
	// Raw returns the untagged raw public key bytes.
	Raw() []byte
}

// Signer produces VarSig-enveloped signatures over arbitrary messages.
type Signer interface {
	DID() did.DID
	// Code is the multicodec code of the signer's key algorithm.
	Code() uint64
	// Sign signs msg, returning a self-describing signature.
	Sign(msg []byte) signature.View
	// SignatureCode is the multicodec code of the signature algorithm.
	SignatureCode() uint64
	// SignatureAlgorithm is the human readable signature algorithm name,
	// used as the JWT header's `alg` field.
	SignatureAlgorithm() string
	// Verifier returns the Verifier corresponding to this Signer's key.
	Verifier() Verifier
	// Encode returns the tagged raw private key bytes.
	Encode() []byte
	// Raw returns the untagged raw private key bytes.
	Raw() []byte
}
