// Package fetch retrieves ScholExplorer link metadata for a DOI work list
// and persists one JSON artifact per DOI.
package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tkreuzer/scholex/internal/httputil"
	"github.com/tkreuzer/scholex/pkg/types"
)

// linksAPIBase is the ScholExplorer Links endpoint. Declared as a var so
// tests can substitute an httptest server.
var linksAPIBase = "https://api-beta.scholexplorer.openaire.eu/v3/Links"

// Outcome classifies the result of one DOI lookup.
type Outcome string

const (
	OutcomeOK    Outcome = "ok"
	OutcomeError Outcome = "error"
)

// Recorder receives per-DOI outcomes; the run ledger implements it.
// A nil Recorder disables recording.
type Recorder interface {
	Record(doi string, outcome Outcome, httpStatus int, artifactPath string) error
}

// BatchResult holds the outcome of a fetch run.
type BatchResult struct {
	Saved  int
	Failed int
}

// Total returns the total number of DOIs processed.
func (r BatchResult) Total() int {
	return r.Saved + r.Failed
}

// HasFailures reports whether any DOI produced an error placeholder.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// ArtifactName returns the artifact filename for a DOI: the DOI with "/"
// and ":" replaced by "_", suffixed ".json". The substitution is lossy, so
// distinct DOIs can collide on the same name; a rerun overwrites.
func ArtifactName(doi string) string {
	return strings.NewReplacer("/", "_", ":", "_").Replace(doi) + ".json"
}

// FetchOne looks up a single DOI and classifies the outcome. Transport
// failures, non-200 statuses, and unparseable bodies all yield OutcomeError
// with a log line naming the DOI; only a 200 with a valid JSON body yields
// OutcomeOK and a payload. The payload is an opaque parsed JSON value, not
// validated against any schema.
func FetchOne(ctx context.Context, client *http.Client, doi string, cfg types.FetchConfig, w io.Writer) (payload any, outcome Outcome, httpStatus int) {
	reqURL := linksAPIBase + "?" + url.Values{"targetPid": {doi}}.Encode()

	resp, err := httputil.Get(ctx, client, reqURL, cfg.UserAgent, cfg.MaxRetries)
	if err != nil {
		fmt.Fprintf(w, "error for DOI %s: %v\n", doi, err)
		return nil, OutcomeError, 0
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		fmt.Fprintf(w, "HTTP %d for DOI %s\n", resp.StatusCode, doi)
		return nil, OutcomeError, resp.StatusCode
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		fmt.Fprintf(w, "error for DOI %s: %v\n", doi, err)
		return nil, OutcomeError, resp.StatusCode
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		fmt.Fprintf(w, "no valid JSON response for %s\n", doi)
		return nil, OutcomeError, resp.StatusCode
	}
	return payload, OutcomeOK, resp.StatusCode
}

// FetchBatch processes every DOI in order: one request, one artifact, one
// progress line each, with an unconditional pause after every DOI. A failed
// DOI gets the error placeholder and the loop continues; only workspace I/O
// errors abort the run.
func FetchBatch(ctx context.Context, client *http.Client, dois []string, cfg types.FetchConfig, rec Recorder, w io.Writer) (BatchResult, error) {
	if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		return BatchResult{}, fmt.Errorf("creating output directory %s: %w", cfg.OutDir, err)
	}

	var result BatchResult
	total := len(dois)
	for i, doi := range dois {
		fmt.Fprintf(w, "[%d/%d] fetching for %s ...\n", i+1, total, doi)

		payload, outcome, status := FetchOne(ctx, client, doi, cfg, w)
		outPath := filepath.Join(cfg.OutDir, ArtifactName(doi))

		if err := writeArtifact(outPath, payload, outcome); err != nil {
			return result, err
		}
		if outcome == OutcomeOK {
			result.Saved++
			fmt.Fprintf(w, "  -> saved to %s\n", outPath)
		} else {
			result.Failed++
			fmt.Fprintf(w, "  -> error, placeholder written to %s\n", outPath)
		}

		if rec != nil {
			if err := rec.Record(doi, outcome, status, outPath); err != nil {
				fmt.Fprintf(w, "  warning: ledger write failed for %s: %v\n", doi, err)
			}
		}

		if cfg.Delay > 0 {
			time.Sleep(cfg.Delay)
		}
	}

	fmt.Fprintln(w, "Done.")
	return result, nil
}

// errorPlaceholder is the artifact body for every failed DOI.
const errorPlaceholder = `{"error": true}`

// writeArtifact persists one artifact. Successful payloads are re-serialized
// with 2-space indent and without HTML escaping, so non-ASCII characters are
// preserved as-is. Failures get the fixed placeholder object.
func writeArtifact(path string, payload any, outcome Outcome) error {
	if outcome != OutcomeOK {
		if err := os.WriteFile(path, []byte(errorPlaceholder), 0o644); err != nil {
			return fmt.Errorf("writing placeholder %s: %w", path, err)
		}
		return nil
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating artifact %s: %w", path, err)
	}
	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(payload); err != nil {
		f.Close()
		return fmt.Errorf("writing artifact %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing artifact %s: %w", path, err)
	}
	return nil
}
