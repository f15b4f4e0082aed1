package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tkreuzer/scholex/internal/ledger"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Summarize a fetch run ledger",
	Long: `Report reads a run ledger database written by "fetch --ledger" and prints
totals plus the DOIs whose lookup ended in an error placeholder.`,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().String("ledger", "", "run ledger database (required)")

	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("ledger")
	if path == "" {
		return fmt.Errorf("provide --ledger, the run ledger database")
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("opening ledger %s: %w", path, err)
	}

	l, err := ledger.Open(path)
	if err != nil {
		return err
	}
	defer l.Close()

	s, err := l.Summarize()
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "DOIs fetched: %d (%d ok, %d error)\n", s.Total, s.OK, s.Errored)
	for _, doi := range s.FailedDOIs {
		fmt.Fprintf(os.Stdout, "  error: %s\n", doi)
	}
	return nil
}
