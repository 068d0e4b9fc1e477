package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dagucan/dagucan/ucan"
)

var parseCmd = &cobra.Command{
	Use:   "parse <jwt-or-file>",
	Short: "Parse a JWT-formatted UCAN and print its fields",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		jwt, err := readTokenArg(args[0])
		if err != nil {
			return err
		}
		u, err := ucan.Parse(jwt)
		if err != nil {
			return fmt.Errorf("parsing token: %w", err)
		}
		printUCAN(cmd, u)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

// readTokenArg treats arg as a file path if it exists on disk, and as a
// literal token string otherwise.
func readTokenArg(arg string) (string, error) {
	if info, err := os.Stat(arg); err == nil && !info.IsDir() {
		b, err := os.ReadFile(arg)
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", arg, err)
		}
		return strings.TrimSpace(string(b)), nil
	}
	return arg, nil
}

func printUCAN(cmd *cobra.Command, u ucan.View) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "version:    %s\n", u.Version())
	fmt.Fprintf(out, "issuer:     %s\n", u.Issuer().DID().String())
	fmt.Fprintf(out, "audience:   %s\n", u.Audience().DID().String())
	if exp := u.Expiration(); exp != nil {
		fmt.Fprintf(out, "expiration: %d\n", *exp)
	} else {
		fmt.Fprintf(out, "expiration: none\n")
	}
	if nbf := u.NotBefore(); nbf != nil {
		fmt.Fprintf(out, "not-before: %d\n", *nbf)
	}
	if nnc := u.Nonce(); nnc != "" {
		fmt.Fprintf(out, "nonce:      %s\n", nnc)
	}
	fmt.Fprintf(out, "expired:    %t\n", ucan.IsExpired(u))
	fmt.Fprintf(out, "capabilities:\n")
	for _, c := range u.Capabilities() {
		fmt.Fprintf(out, "  - can: %s\n    with: %s\n", c.Can(), c.With())
	}
	if len(u.Proofs()) > 0 {
		fmt.Fprintf(out, "proofs:\n")
		for _, p := range u.Proofs() {
			fmt.Fprintf(out, "  - %s\n", p.String())
		}
	}
}
