// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package doilist

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Load reads the deduplicated DOI CSV at path and returns the fetch work
// list: the trimmed value of the DOI column per row, in file order, with
// missing and blank values excluded.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening DOI list %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty DOI list %s", path)
		}
		return nil, fmt.Errorf("reading header of %s: %w", path, err)
	}
	col, err := findColumn(header, doiColumn)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	var dois []string
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		if col >= len(row) {
			continue
		}
		doi := strings.TrimSpace(row[col])
		if doi == "" {
			continue
		}
		dois = append(dois, doi)
	}
	return dois, nil
}
