// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package doilist

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// doiColumn is the CSV column carrying DOI values. Lookup is case-sensitive.
const doiColumn = "DOI"

// Extract projects the DOI column out of an arbitrary CSV export at
// inputPath into a one-column CSV at outputPath. Rows with a missing or
// blank DOI are dropped; kept values are trimmed. Row order is preserved.
func Extract(inputPath, outputPath string) error {
	in, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("opening input file %s: %w", inputPath, err)
	}
	defer in.Close()

	reader := csv.NewReader(in)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return fmt.Errorf("parsing CSV %s: %w", inputPath, err)
	}
	if len(records) == 0 {
		return fmt.Errorf("empty CSV %s", inputPath)
	}

	col, err := findColumn(records[0], doiColumn)
	if err != nil {
		return fmt.Errorf("%s: %w", inputPath, err)
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("creating output file %s: %w", outputPath, err)
	}

	writer := csv.NewWriter(out)
	writer.Write([]string{doiColumn})
	for _, row := range records[1:] {
		if col >= len(row) {
			continue
		}
		doi := strings.TrimSpace(row[col])
		if doi == "" {
			continue
		}
		writer.Write([]string{doi})
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		out.Close()
		return fmt.Errorf("writing output %s: %w", outputPath, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("closing output file %s: %w", outputPath, err)
	}
	return nil
}

// findColumn returns the index of name in the header row.
func findColumn(header []string, name string) (int, error) {
	for i, field := range header {
		if strings.TrimSpace(field) == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("no %q column in header %v", name, header)
}
