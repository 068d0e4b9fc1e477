package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dagucan/dagucan/ucan"
)

var formatCmd = &cobra.Command{
	Use:   "format <cbor-file>",
	Short: "Format a DAG-CBOR-encoded UCAN as a JWT string",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading %s: %w", args[0], err)
		}
		u, err := ucan.Decode(data)
		if err != nil {
			return fmt.Errorf("decoding token: %w", err)
		}
		jwt, err := ucan.Format(u)
		if err != nil {
			return fmt.Errorf("formatting token: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), jwt)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(formatCmd)
}
