package cmd

import (
	"fmt"
	"path/filepath"

	"mnp-alarm/feature/reference"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// referenceCmd groups reference set commands
var referenceCmd = &cobra.Command{
	Use:   "reference",
	Short: "Inspect or publish the reference set",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// referenceShowCmd prints the groups of the configured reference set
var referenceShowCmd = &cobra.Command{
	Use:   "show",
	Short: "List reference groups and their sizes",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.logger.Sync()

		source, err := a.source()
		if err != nil {
			return err
		}
		set, err := source.Load(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to load reference set: %w", err)
		}

		out := cmd.OutOrStdout()
		total := 0
		fmt.Fprintf(out, "\n=== Reference Set (%s) ===\n", a.cfg.Reference.Source)
		for _, g := range reference.Summarize(set) {
			fmt.Fprintf(out, "%-12s %d\n", g.Name, g.Numbers)
			total += g.Numbers
		}
		fmt.Fprintf(out, "Total Numbers: %d\n", total)
		return nil
	},
}

// referencePushCmd uploads a local reference file to the storage bucket
var referencePushCmd = &cobra.Command{
	Use:   "push <file>",
	Short: "Upload a reference file to object storage",
	Long: `Validates a local JSON or YAML reference file and uploads it to the storage bucket.
The object name defaults to the configured reference path.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		object, _ := cmd.Flags().GetString("object")

		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.logger.Sync()

		if object == "" {
			object = a.cfg.Reference.Path
		}
		if object == "" {
			object = filepath.Base(path)
		}

		client, err := a.storage()
		if err != nil {
			return err
		}

		info, err := reference.Push(cmd.Context(), client, a.cfg.Storage.Bucket, object, path)
		if err != nil {
			return err
		}

		a.logger.Info("Reference set uploaded",
			zap.String("bucket", info.Bucket),
			zap.String("object", info.Key),
			zap.Int64("size", info.Size),
		)
		return nil
	},
}

func init() {
	referencePushCmd.Flags().String("object", "", "Object name in the bucket")
	referenceCmd.AddCommand(referenceShowCmd)
	referenceCmd.AddCommand(referencePushCmd)
	RootCmd.AddCommand(referenceCmd)
}
