// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package doilist handles DOI list CSV files: extracting a DOI column from
// raw exports, deduplicating, and loading the work list for the fetch stage.
package doilist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Deduplicate streams a DOI CSV from inputPath to outputPath, keeping the
// header line and the first occurrence of each DOI value, in original order.
// Lines are passed through byte-exact: a kept line is written untrimmed,
// with whatever line ending it had, so running Deduplicate on its own output
// is a byte-identical no-op.
//
// Uniqueness is exact string equality after trimming surrounding whitespace;
// blank and whitespace-only lines are dropped. The seen-set is local to this
// call. The whole file is never held in memory beyond the seen-set.
func Deduplicate(inputPath, outputPath string) error {
	in, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("opening input file %s: %w", inputPath, err)
	}
	defer in.Close()

	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("creating output file %s: %w", outputPath, err)
	}

	if err := dedupLines(in, out); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("closing output file %s: %w", outputPath, err)
	}
	return nil
}

func dedupLines(r io.Reader, w io.Writer) error {
	br := bufio.NewReader(r)
	bw := bufio.NewWriter(w)

	// Header passes through unmodified, even if empty or unterminated.
	header, err := br.ReadString('\n')
	if err != nil && err != io.EOF {
		return fmt.Errorf("reading header: %w", err)
	}
	if _, werr := bw.WriteString(header); werr != nil {
		return fmt.Errorf("writing header: %w", werr)
	}
	atEOF := err == io.EOF

	seen := make(map[string]struct{})
	for !atEOF {
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return fmt.Errorf("reading input: %w", err)
		}
		atEOF = err == io.EOF

		doi := strings.TrimSpace(line)
		if doi == "" {
			continue
		}
		if _, dup := seen[doi]; dup {
			continue
		}
		seen[doi] = struct{}{}
		if _, werr := bw.WriteString(line); werr != nil {
			return fmt.Errorf("writing output: %w", werr)
		}
	}
	return bw.Flush()
}
