package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tkreuzer/scholex/internal/doilist"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Project the DOI column out of a repository CSV export",
	Long: `Extract reads an arbitrary CSV export with a DOI column and writes a
one-column CSV holding just the trimmed DOI values, dropping rows where the
column is missing or blank.`,
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().String("input", "", "CSV export to read (required)")
	extractCmd.Flags().String("output", "dois_only.csv", "one-column DOI CSV to write")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	input, _ := cmd.Flags().GetString("input")
	if input == "" {
		return fmt.Errorf("provide --input, the CSV export to read")
	}
	output, _ := cmd.Flags().GetString("output")

	if err := doilist.Extract(input, output); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "extracted DOI column %s -> %s\n", input, output)
	return nil
}
