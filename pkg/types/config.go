package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "scholex/0.1"). A contact e-mail from .secrets/contact-email
	// is appended when present, for polite API access.
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// DedupConfig holds settings for the deduplication stage.
type DedupConfig struct {
	// InputPath is the DOI CSV to deduplicate (default "dois.csv").
	InputPath string `json:"input_path" yaml:"input_path"`

	// OutputPath is the deduplicated CSV to write (default "dois_unique.csv").
	OutputPath string `json:"output_path" yaml:"output_path"`
}

// FetchConfig holds settings for the fetch stage.
type FetchConfig struct {
	HTTPConfig `yaml:",inline"`

	// InputPath is the deduplicated DOI CSV (default "dois_unique.csv").
	InputPath string `json:"input_path" yaml:"input_path"`

	// OutDir is the directory for response artifacts
	// (default "scholexplorer_responses").
	OutDir string `json:"out_dir" yaml:"out_dir"`

	// Delay is the unconditional pause after each DOI (default 300ms),
	// a courtesy rate-limit toward the API.
	Delay time.Duration `json:"delay" yaml:"delay"`

	// MaxRetries is the number of backoff retries on HTTP 429. Zero (the
	// default) makes exactly one attempt per DOI.
	MaxRetries int `json:"max_retries" yaml:"max_retries"`

	// LedgerPath, when non-empty, enables the SQLite run ledger at this path.
	LedgerPath string `json:"ledger_path,omitempty" yaml:"ledger_path,omitempty"`
}

// CompareConfig holds settings for the compare stage.
type CompareConfig struct {
	// LandingPagePath is the DataCite landing-page XML file.
	LandingPagePath string `json:"landing_page_path" yaml:"landing_page_path"`

	// LinksPath is the stored ScholExplorer response artifact.
	LinksPath string `json:"links_path" yaml:"links_path"`

	// ReportPath, when non-empty, is where the YAML report is written.
	ReportPath string `json:"report_path,omitempty" yaml:"report_path,omitempty"`
}
