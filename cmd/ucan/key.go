package main

import (
	"crypto/rand"
	"fmt"
	"os"

	"github.com/mr-tron/base58"
	"github.com/spf13/cobra"

	"github.com/dagucan/dagucan/principal"
	edsigner "github.com/dagucan/dagucan/principal/ed25519/signer"
)

func randomSeed() []byte {
	seed := make([]byte, 32)
	if _, err := rand.Read(seed); err != nil {
		panic(err)
	}
	return seed
}

var keygenCmd = &cobra.Command{
	Use:   "keygen",
	Short: "Generate a new Ed25519 signing key",
	Long: `Generate a new Ed25519 signing key and print its base58btc-encoded
raw seed (for --issuer-seed) and its did:key identifier.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		signer, err := edsigner.FromSeed(randomSeed())
		if err != nil {
			return err
		}
		fmt.Printf("seed: %s\n", base58.Encode(signer.Raw()[:32]))
		fmt.Printf("did:  %s\n", signer.DID().String())
		return nil
	},
}

// loadIssuer resolves a signer from a base58btc-encoded raw seed, either
// given directly or read from a file.
func loadIssuer(seedFlag, seedFile string) (principal.Signer, error) {
	var encoded string
	switch {
	case seedFlag != "":
		encoded = seedFlag
	case seedFile != "":
		b, err := os.ReadFile(seedFile)
		if err != nil {
			return nil, fmt.Errorf("reading issuer seed file: %w", err)
		}
		encoded = string(b)
	default:
		return nil, fmt.Errorf("one of --issuer-seed or --issuer-seed-file is required")
	}
	seed, err := base58.Decode(trimNewline(encoded))
	if err != nil {
		return nil, fmt.Errorf("decoding issuer seed: %w", err)
	}
	return edsigner.FromSeed(seed)
}

func trimNewline(s string) string {
	for len(s) > 0 && (s[len(s)-1] == '\n' || s[len(s)-1] == '\r' || s[len(s)-1] == ' ') {
		s = s[:len(s)-1]
	}
	return s
}

func init() {
	rootCmd.AddCommand(keygenCmd)
}
