package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tkreuzer/scholex/internal/doilist"
	"github.com/tkreuzer/scholex/internal/fetch"
	"github.com/tkreuzer/scholex/internal/ledger"
	"github.com/tkreuzer/scholex/pkg/types"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultDelay     = 300 * time.Millisecond
	defaultOutDir    = "scholexplorer_responses"
	defaultUserAgent = "scholex/0.1"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch ScholExplorer link metadata for each DOI in the list",
	Long: `Fetch reads the deduplicated DOI list and performs one Links lookup per
DOI, writing one JSON artifact per DOI to the output directory. Failed
lookups get an error placeholder artifact; one bad DOI never stops
processing of the rest. A rerun overwrites prior artifacts.`,
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().String("input", "dois_unique.csv", "deduplicated DOI CSV")
	fetchCmd.Flags().String("out-dir", defaultOutDir, "directory for response artifacts")
	fetchCmd.Flags().Duration("timeout", defaultTimeout, "HTTP request timeout")
	fetchCmd.Flags().Duration("delay", defaultDelay, "pause after each DOI")
	fetchCmd.Flags().Int("max-retries", 0, "backoff retries on HTTP 429 (0 = single attempt)")
	fetchCmd.Flags().String("ledger", "", "record outcomes in a SQLite ledger at this path")

	rootCmd.AddCommand(fetchCmd)
}

// fetchConfig resolves the fetch configuration: flags win over the config
// file, the config file wins over defaults.
func fetchConfig(cmd *cobra.Command) types.FetchConfig {
	cfg := types.FetchConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   defaultTimeout,
			UserAgent: defaultUserAgent,
		},
		Delay:  defaultDelay,
		OutDir: defaultOutDir,
	}
	cfg.InputPath, _ = cmd.Flags().GetString("input")

	if v := viper.GetString("http.user_agent"); v != "" {
		cfg.UserAgent = v
	}
	if v := viper.GetDuration("fetch.timeout"); v > 0 {
		cfg.Timeout = v
	}
	if v := viper.GetDuration("fetch.delay"); v > 0 {
		cfg.Delay = v
	}
	if v := viper.GetString("fetch.out_dir"); v != "" {
		cfg.OutDir = v
	}
	cfg.MaxRetries = viper.GetInt("fetch.max_retries")
	cfg.LedgerPath = viper.GetString("fetch.ledger_path")

	if cmd.Flags().Changed("timeout") {
		cfg.Timeout, _ = cmd.Flags().GetDuration("timeout")
	}
	if cmd.Flags().Changed("delay") {
		cfg.Delay, _ = cmd.Flags().GetDuration("delay")
	}
	if cmd.Flags().Changed("out-dir") {
		cfg.OutDir, _ = cmd.Flags().GetString("out-dir")
	}
	if cmd.Flags().Changed("max-retries") {
		cfg.MaxRetries, _ = cmd.Flags().GetInt("max-retries")
	}
	if cmd.Flags().Changed("ledger") {
		cfg.LedgerPath, _ = cmd.Flags().GetString("ledger")
	}

	if email := contactEmail(); email != "" {
		cfg.UserAgent = fmt.Sprintf("%s (mailto:%s)", cfg.UserAgent, email)
	}
	return cfg
}

func runFetch(cmd *cobra.Command, args []string) error {
	cfg := fetchConfig(cmd)

	dois, err := doilist.Load(cfg.InputPath)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "%d DOIs loaded.\n", len(dois))

	var rec fetch.Recorder
	if cfg.LedgerPath != "" {
		l, err := ledger.Open(cfg.LedgerPath)
		if err != nil {
			return err
		}
		defer l.Close()
		rec = l
	}

	client := &http.Client{
		Timeout: cfg.Timeout,
	}

	result, err := fetch.FetchBatch(context.Background(), client, dois, cfg, rec, os.Stdout)
	if err != nil {
		return err
	}
	if result.HasFailures() {
		fmt.Fprintf(os.Stdout, "%d of %d DOIs ended with an error placeholder.\n", result.Failed, result.Total())
	}
	return nil
}
