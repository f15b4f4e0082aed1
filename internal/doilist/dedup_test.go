// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package doilist

import (
	"os"
	"path/filepath"
	"testing"
)

func dedupString(t *testing.T, input string) string {
	t.Helper()
	dir := t.TempDir()
	in := filepath.Join(dir, "dois.csv")
	out := filepath.Join(dir, "dois_unique.csv")
	if err := os.WriteFile(in, []byte(input), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := Deduplicate(in, out); err != nil {
		t.Fatalf("Deduplicate: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestDeduplicate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"order preserved", "DOI\nA\nB\nA\nC\n", "DOI\nA\nB\nC\n"},
		{"blank lines dropped", "DOI\nA\n\n  \nB\n", "DOI\nA\nB\n"},
		{"already unique", "DOI\nA\nB\nC\n", "DOI\nA\nB\nC\n"},
		{"untrimmed line kept verbatim", "DOI\n  A  \nA\n", "DOI\n  A  \n"},
		{"crlf preserved", "DOI\r\nA\r\nA\r\nB\r\n", "DOI\r\nA\r\nB\r\n"},
		{"header only", "DOI\n", "DOI\n"},
		{"empty file", "", ""},
		{"no trailing newline", "DOI\nA\nB", "DOI\nA\nB"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := dedupString(t, tt.input)
			if got != tt.want {
				t.Errorf("Deduplicate(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestDeduplicateIdempotent(t *testing.T) {
	first := dedupString(t, "DOI\n10.1/a\n10.1/b\n10.1/a\n\n10.2/c\n")

	second := dedupString(t, first)
	if second != first {
		t.Errorf("second pass changed output: %q -> %q", first, second)
	}
}

func TestDeduplicateMissingInput(t *testing.T) {
	dir := t.TempDir()
	err := Deduplicate(filepath.Join(dir, "absent.csv"), filepath.Join(dir, "out.csv"))
	if err == nil {
		t.Fatal("expected error for missing input file")
	}
}
