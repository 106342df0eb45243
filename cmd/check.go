package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"mnp-alarm/core/reconcile"
	"mnp-alarm/feature/check"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// checkCmd runs one reconciliation pass
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Reconcile the reference set against live HLR lookups",
	Long: `Looks up every number of the reference set, compares network and owner with the
expected values and sends a single SMS alert listing every discrepancy.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dryRun, _ := cmd.Flags().GetBool("dry-run")
		jsonOutput, _ := cmd.Flags().GetBool("json")
		failOnDrift, _ := cmd.Flags().GetBool("fail-on-drift")

		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.logger.Sync()

		if err := a.cfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}

		source, err := a.source()
		if err != nil {
			return err
		}
		engine, err := a.engine(nil)
		if err != nil {
			return err
		}

		report, err := check.NewService(source, engine, a.logger).Run(cmd.Context(), dryRun)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if jsonOutput {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			if err := enc.Encode(report); err != nil {
				return fmt.Errorf("failed to encode report: %w", err)
			}
		} else {
			printReport(out, report, dryRun)
		}

		if failOnDrift && !report.Matched() {
			a.logger.Warn("Drift detected", zap.Int("groups", countDrift(report)))
			return fmt.Errorf("drift detected in %d group(s)", countDrift(report))
		}
		return nil
	},
}

func printReport(w io.Writer, report *reconcile.Report, dryRun bool) {
	fmt.Fprintln(w, "\n=== Reconciliation Report ===")
	for _, g := range report.Groups {
		status := "matched"
		if !g.Matched {
			status = "DRIFT"
		}
		fmt.Fprintf(w, "%-12s %-8s numbers=%d discrepancies=%d lookup_failures=%d\n",
			g.Name, status, g.Numbers, len(g.Discrepancies), g.LookupFailures)
		if g.BatchError != "" {
			fmt.Fprintf(w, "  batch error: %s\n", g.BatchError)
		}
	}

	if report.AlertBody != "" {
		fmt.Fprintln(w, "\nAlert:")
		fmt.Fprint(w, report.AlertBody)
		switch {
		case dryRun:
			fmt.Fprintln(w, "(dry run, not sent)")
		case report.AlertError != "":
			fmt.Fprintf(w, "(not delivered: %s)\n", report.AlertError)
		default:
			fmt.Fprintln(w, "(sent)")
		}
	}
	fmt.Fprintf(w, "Execution Time: %s\n", report.Duration)
}

func countDrift(report *reconcile.Report) int {
	n := 0
	for _, matched := range report.Results {
		if !matched {
			n++
		}
	}
	return n
}

func init() {
	checkCmd.Flags().Bool("dry-run", false, "Build the alert but do not send it")
	checkCmd.Flags().Bool("json", false, "Print the report as JSON")
	checkCmd.Flags().Bool("fail-on-drift", false, "Exit with an error when any group drifted")
	RootCmd.AddCommand(checkCmd)
}
