package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dagucan/dagucan/core/ipld"
	"github.com/dagucan/dagucan/did"
	"github.com/dagucan/dagucan/principal/decode"
	wrapsigner "github.com/dagucan/dagucan/principal/signer"
	"github.com/dagucan/dagucan/ucan"
)

// jsonCaveats renders an arbitrary JSON object as a capability's `nb` field.
type jsonCaveats map[string]any

func (c jsonCaveats) ToIPLD() (ipld.Node, error) {
	if len(c) == 0 {
		return ipld.NewMap(nil)
	}
	return ipld.FromPlain(map[string]any(c))
}

var (
	issueIssuerSeed     string
	issueIssuerSeedFile string
	issueIssuerDID      string
	issueAudience       string
	issueCan            string
	issueWith           string
	issueNb             string
	issueExpiration     int64
	issueNonce          string
)

var issueCmd = &cobra.Command{
	Use:   "issue",
	Short: "Issue a new signed UCAN",
	RunE: func(cmd *cobra.Command, args []string) error {
		issuer, err := loadIssuer(issueIssuerSeed, issueIssuerSeedFile)
		if err != nil {
			return err
		}
		if issueIssuerDID != "" {
			id, err := did.Parse(issueIssuerDID)
			if err != nil {
				return fmt.Errorf("parsing --issuer-did: %w", err)
			}
			wrapped, err := wrapsigner.Wrap(issuer, id)
			if err != nil {
				return fmt.Errorf("wrapping issuer under --issuer-did: %w", err)
			}
			issuer = wrapped
		}
		audience, err := decode.ParseDID(issueAudience)
		if err != nil {
			return fmt.Errorf("parsing audience DID: %w", err)
		}
		if issueCan == "" || issueWith == "" {
			return fmt.Errorf("--can and --with are required")
		}

		nb := jsonCaveats{}
		if issueNb != "" {
			if err := json.Unmarshal([]byte(issueNb), &nb); err != nil {
				return fmt.Errorf("parsing --nb JSON: %w", err)
			}
		}

		cap := ucan.NewCapability(issueCan, issueWith, nb)

		var opts []ucan.Option
		if issueExpiration != 0 {
			opts = append(opts, ucan.WithExpiration(issueExpiration))
		}
		if issueNonce != "" {
			opts = append(opts, ucan.WithNonce(issueNonce))
		}

		u, err := ucan.Issue(issuer, audience, []ucan.Capability[jsonCaveats]{cap}, opts...)
		if err != nil {
			return fmt.Errorf("issuing UCAN: %w", err)
		}

		jwt, err := ucan.Format(u)
		if err != nil {
			return fmt.Errorf("formatting UCAN: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), jwt)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(issueCmd)

	issueCmd.Flags().StringVar(&issueIssuerSeed, "issuer-seed", "", "base58btc-encoded 32-byte Ed25519 seed for the issuer")
	issueCmd.Flags().StringVar(&issueIssuerSeedFile, "issuer-seed-file", "", "file containing the issuer's base58btc-encoded seed")
	issueCmd.Flags().StringVar(&issueIssuerDID, "issuer-did", "", "issue as this DID (e.g. did:web:example.com) instead of the issuer key's own did:key, wrapping the key's signature under the given identity")
	issueCmd.Flags().StringVar(&issueAudience, "audience", "", "audience DID")
	issueCmd.Flags().StringVar(&issueCan, "can", "", "capability ability, e.g. store/put")
	issueCmd.Flags().StringVar(&issueWith, "with", "", "capability resource")
	issueCmd.Flags().StringVar(&issueNb, "nb", "", "capability caveats, as a JSON object")
	issueCmd.Flags().Int64Var(&issueExpiration, "expiration", 0, "expiration as a UTC unix timestamp (default: 30s from now)")
	issueCmd.Flags().StringVar(&issueNonce, "nonce", "", "nonce value")

	issueCmd.MarkFlagRequired("audience")
}
