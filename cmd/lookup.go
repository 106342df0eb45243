package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// lookupCmd performs a single HLR lookup
var lookupCmd = &cobra.Command{
	Use:   "lookup <number>",
	Short: "Look up one number and print its normalized record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, _ := cmd.Flags().GetBool("raw")

		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.logger.Sync()

		client, err := a.lookupClient(nil)
		if err != nil {
			return err
		}

		record, err := client.Lookup(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("lookup of %s failed: %w", args[0], err)
		}

		var v any = a.cfg.Lookup.Normalizer().Normalize(record)
		if raw {
			v = record
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	},
}

func init() {
	lookupCmd.Flags().Bool("raw", false, "Print the provider response instead of the normalized record")
	RootCmd.AddCommand(lookupCmd)
}
