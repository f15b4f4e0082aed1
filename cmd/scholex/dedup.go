package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tkreuzer/scholex/internal/doilist"
)

var dedupCmd = &cobra.Command{
	Use:   "dedup",
	Short: "Drop duplicate DOIs from a CSV, preserving order",
	Long: `Dedup streams a DOI CSV and writes the header plus the first occurrence
of each DOI, in original order. Blank lines are dropped. A second pass over
its own output is a byte-identical no-op.`,
	RunE: runDedup,
}

func init() {
	dedupCmd.Flags().String("input", "dois.csv", "DOI CSV to deduplicate")
	dedupCmd.Flags().String("output", "dois_unique.csv", "deduplicated CSV to write")

	rootCmd.AddCommand(dedupCmd)
}

func runDedup(cmd *cobra.Command, args []string) error {
	input, _ := cmd.Flags().GetString("input")
	output, _ := cmd.Flags().GetString("output")

	if err := doilist.Deduplicate(input, output); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "deduplicated %s -> %s\n", input, output)
	return nil
}
