// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package compare diffs the DOI set of a DataCite landing-page XML against
// the DOI set of a stored ScholExplorer response artifact.
package compare

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/tkreuzer/scholex/pkg/types"
)

// doiURLPrefix matches resolver-URL forms of a DOI ("https://doi.org/10...").
var doiURLPrefix = regexp.MustCompile(`(?i)^https?://(dx\.)?doi\.org/`)

// NormalizeDOI canonicalizes a DOI for set comparison: trim surrounding
// whitespace, strip a leading doi.org resolver prefix, lowercase. Returns
// the empty string when raw holds no DOI.
func NormalizeDOI(raw string) string {
	doi := strings.TrimSpace(raw)
	doi = doiURLPrefix.ReplaceAllString(doi, "")
	return strings.ToLower(doi)
}

// landingPage captures the relatedIdentifier elements of a DataCite kernel
// record. Namespaces are ignored; only local element names matter here.
type landingPage struct {
	RelatedIdentifiers []relatedIdentifier `xml:"relatedIdentifiers>relatedIdentifier"`
}

type relatedIdentifier struct {
	Type  string `xml:"relatedIdentifierType,attr"`
	Value string `xml:",chardata"`
}

// DOIsFromLandingPage extracts every related DOI from a DataCite
// landing-page XML file, regardless of relationType.
func DOIsFromLandingPage(path string) (map[string]struct{}, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening landing page %s: %w", path, err)
	}
	defer f.Close()

	var page landingPage
	if err := xml.NewDecoder(f).Decode(&page); err != nil {
		return nil, fmt.Errorf("parsing landing page %s: %w", path, err)
	}

	dois := make(map[string]struct{})
	for _, rel := range page.RelatedIdentifiers {
		if !strings.EqualFold(rel.Type, "DOI") {
			continue
		}
		if doi := NormalizeDOI(rel.Value); doi != "" {
			dois[doi] = struct{}{}
		}
	}
	return dois, nil
}

// DOIsFromLinks extracts every source and target DOI from a stored
// ScholExplorer artifact, regardless of relationship type. An artifact
// holding the error placeholder is rejected: it carries no links.
func DOIsFromLinks(path string) (map[string]struct{}, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading links artifact %s: %w", path, err)
	}

	var placeholder struct {
		Error bool `json:"error"`
	}
	if err := json.Unmarshal(data, &placeholder); err == nil && placeholder.Error {
		return nil, fmt.Errorf("links artifact %s is an error placeholder", path)
	}

	var links types.LinksResponse
	if err := json.Unmarshal(data, &links); err != nil {
		return nil, fmt.Errorf("parsing links artifact %s: %w", path, err)
	}

	dois := make(map[string]struct{})
	for _, link := range links.Result {
		for _, entity := range []types.LinkEntity{link.Source, link.Target} {
			for _, ident := range entity.Identifiers {
				if !strings.EqualFold(ident.Scheme, "doi") {
					continue
				}
				if doi := NormalizeDOI(ident.ID); doi != "" {
					dois[doi] = struct{}{}
				}
			}
		}
	}
	return dois, nil
}

// Compare diffs the two DOI sets named by cfg and returns the report.
func Compare(cfg types.CompareConfig) (*Report, error) {
	pageDOIs, err := DOIsFromLandingPage(cfg.LandingPagePath)
	if err != nil {
		return nil, err
	}
	linkDOIs, err := DOIsFromLinks(cfg.LinksPath)
	if err != nil {
		return nil, err
	}
	return buildReport(cfg, pageDOIs, linkDOIs), nil
}

func buildReport(cfg types.CompareConfig, pageDOIs, linkDOIs map[string]struct{}) *Report {
	r := &Report{
		LandingPagePath: cfg.LandingPagePath,
		LinksPath:       cfg.LinksPath,
	}
	for doi := range linkDOIs {
		if _, ok := pageDOIs[doi]; ok {
			r.InBoth = append(r.InBoth, doi)
		} else {
			r.OnlyInLinks = append(r.OnlyInLinks, doi)
		}
	}
	for doi := range pageDOIs {
		if _, ok := linkDOIs[doi]; !ok {
			r.OnlyInLandingPage = append(r.OnlyInLandingPage, doi)
		}
	}
	sort.Strings(r.InBoth)
	sort.Strings(r.OnlyInLinks)
	sort.Strings(r.OnlyInLandingPage)
	return r
}

// Print writes the human-readable comparison to w.
func (r *Report) Print(w io.Writer) {
	fmt.Fprintf(w, "=== Comparison\n  XML : %s\n  JSON: %s\n\n", r.LandingPagePath, r.LinksPath)
	fmt.Fprintf(w, "DOIs in landing page: %d\n", len(r.InBoth)+len(r.OnlyInLandingPage))
	fmt.Fprintf(w, "DOIs in links:        %d\n\n", len(r.InBoth)+len(r.OnlyInLinks))

	fmt.Fprintf(w, "only in links (missing from landing page): %d\n", len(r.OnlyInLinks))
	for _, doi := range r.OnlyInLinks {
		fmt.Fprintf(w, "  + %s\n", doi)
	}
	fmt.Fprintf(w, "only in landing page (missing from links): %d\n", len(r.OnlyInLandingPage))
	for _, doi := range r.OnlyInLandingPage {
		fmt.Fprintf(w, "  - %s\n", doi)
	}
	fmt.Fprintf(w, "in both: %d\n", len(r.InBoth))
}
