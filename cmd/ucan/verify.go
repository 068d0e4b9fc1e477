package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dagucan/dagucan/did"
	"github.com/dagucan/dagucan/principal/decode"
	wrapverifier "github.com/dagucan/dagucan/principal/verifier"
	"github.com/dagucan/dagucan/ucan"
)

var verifyAsDID string

var verifyCmd = &cobra.Command{
	Use:   "verify <token-or-file> <verifier-did>",
	Short: "Verify a UCAN's signature against a verifier DID",
	Long: `verify reports whether a UCAN's signature is valid for the given
verifier DID. It does not evaluate expiration, not-before, or capability
policy: those are the caller's responsibility.

If the UCAN's issuer is not a did:key (e.g. it was issued with
--issuer-did to a did:web identity), pass the underlying did:key
verifier and --as with the claimed identity: verification checks the
did:key signature but requires the claimed identity to match the
UCAN's issuer.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		token, err := readTokenArg(args[0])
		if err != nil {
			return err
		}

		var u ucan.View
		if strings.Count(token, ".") == 2 {
			u, err = ucan.Parse(token)
		} else {
			u, err = ucan.Decode([]byte(token))
		}
		if err != nil {
			return fmt.Errorf("parsing token: %w", err)
		}

		verifier, err := decode.ParseDID(args[1])
		if err != nil {
			return fmt.Errorf("parsing verifier DID: %w", err)
		}

		if verifyAsDID != "" {
			id, err := did.Parse(verifyAsDID)
			if err != nil {
				return fmt.Errorf("parsing --as: %w", err)
			}
			verifier, err = wrapverifier.Wrap(verifier, id)
			if err != nil {
				return fmt.Errorf("wrapping verifier under --as: %w", err)
			}
		}

		valid, err := ucan.VerifySignature(u, verifier)
		if err != nil {
			return fmt.Errorf("verifying signature: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%t\n", valid)
		if !valid {
			return fmt.Errorf("signature verification failed")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
	verifyCmd.Flags().StringVar(&verifyAsDID, "as", "", "verify the token was issued by this DID (e.g. did:web:example.com) rather than the did:key given directly")
}
