// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package compare

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"
)

// Report is the result of one comparison. The researcher can save it to a
// YAML file and revisit it later without re-running the comparison.
type Report struct {
	LandingPagePath   string    `yaml:"landing_page"`
	LinksPath         string    `yaml:"links_artifact"`
	OnlyInLinks       []string  `yaml:"only_in_links,omitempty"`
	OnlyInLandingPage []string  `yaml:"only_in_landing_page,omitempty"`
	InBoth            []string  `yaml:"in_both,omitempty"`
	Timestamp         time.Time `yaml:"timestamp"`
}

// WriteFile saves the report as YAML at path, stamping it with the current
// time.
func (r *Report) WriteFile(path string) error {
	r.Timestamp = time.Now().UTC()
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing report %s: %w", path, err)
	}
	return nil
}
