// Package main is the entry point for the ucan CLI, a small inspection and
// issuance tool wrapped around the dagucan library.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ucan",
	Short: "Inspect, issue and verify UCAN tokens",
	Long: `ucan parses, formats, issues and verifies UCAN (User Controlled
Authorization Network) tokens, in both their DAG-CBOR and JWT-compatible
byte encodings.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
