// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the scholex CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tkreuzer/scholex/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds credentials loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// contactEmail returns the polite-access contact address, if configured.
func contactEmail() string {
	return loadedSecrets["contact-email"]
}

// rootCmd is the base command for the scholex CLI.
var rootCmd = &cobra.Command{
	Use:   "scholex",
	Short: "Harvest ScholExplorer link metadata for DOI lists",
	Long: `scholex retrieves scholarly-link metadata for a list of DOIs from the
ScholExplorer API and stores the raw JSON responses to disk.

Each pipeline stage is a subcommand, run in sequence by the operator:
extract projects the DOI column out of a repository export, dedup drops
duplicate DOIs while preserving order, fetch retrieves one Links response
per DOI, and compare checks a stored response against a DataCite landing
page.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./scholex.yaml or ~/.config/scholex/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("scholex")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "scholex"))
		}
	}

	viper.SetEnvPrefix("SCHOLEX")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
