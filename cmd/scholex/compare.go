package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tkreuzer/scholex/internal/compare"
	"github.com/tkreuzer/scholex/pkg/types"
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare a stored Links response against a DataCite landing page",
	Long: `Compare extracts the DOI set from a DataCite landing-page XML (every
relatedIdentifier of type DOI, regardless of relationType) and the DOI set
from a stored ScholExplorer response artifact (every source and target DOI),
then reports which DOIs appear on only one side.`,
	RunE: runCompare,
}

func init() {
	compareCmd.Flags().String("landing-page", "", "DataCite landing-page XML file (required)")
	compareCmd.Flags().String("links", "", "stored ScholExplorer response artifact (required)")
	compareCmd.Flags().String("report-file", "", "also write the report as YAML to this path")

	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	cfg := types.CompareConfig{}
	cfg.LandingPagePath, _ = cmd.Flags().GetString("landing-page")
	cfg.LinksPath, _ = cmd.Flags().GetString("links")
	cfg.ReportPath, _ = cmd.Flags().GetString("report-file")
	if cfg.LandingPagePath == "" || cfg.LinksPath == "" {
		return fmt.Errorf("provide --landing-page and --links")
	}

	report, err := compare.Compare(cfg)
	if err != nil {
		return err
	}
	report.Print(os.Stdout)

	if cfg.ReportPath != "" {
		if err := report.WriteFile(cfg.ReportPath); err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "\nreport written to %s\n", cfg.ReportPath)
	}
	return nil
}
