// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ledger persists per-DOI fetch outcomes in a SQLite database.
// The ledger is opt-in; fetch runs are complete without it.
package ledger

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/tkreuzer/scholex/internal/fetch"
)

// Ledger manages the run ledger SQLite database.
type Ledger struct {
	db *sql.DB
}

// Summary aggregates the ledger contents for reporting.
type Summary struct {
	Total      int
	OK         int
	Errored    int
	FailedDOIs []string
}

// Open opens or creates the ledger database at path, creating the schema
// if it does not exist.
func Open(path string) (*Ledger, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating ledger directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening ledger database: %w", err)
	}

	l := &Ledger{db: db}
	if err := l.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return l, nil
}

// Close releases the database connection.
func (l *Ledger) Close() error {
	return l.db.Close()
}

func (l *Ledger) createSchema() error {
	_, err := l.db.Exec(`CREATE TABLE IF NOT EXISTS fetches (
		doi TEXT PRIMARY KEY,
		outcome TEXT NOT NULL,
		http_status INTEGER NOT NULL,
		artifact_path TEXT NOT NULL,
		fetched_at TEXT NOT NULL
	)`)
	return err
}

// Record upserts the outcome for one DOI. A rerun overwrites the prior row,
// mirroring artifact-overwrite semantics.
func (l *Ledger) Record(doi string, outcome fetch.Outcome, httpStatus int, artifactPath string) error {
	_, err := l.db.Exec(`INSERT INTO fetches (doi, outcome, http_status, artifact_path, fetched_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(doi) DO UPDATE SET
			outcome = excluded.outcome,
			http_status = excluded.http_status,
			artifact_path = excluded.artifact_path,
			fetched_at = excluded.fetched_at`,
		doi, string(outcome), httpStatus, artifactPath, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("recording %s: %w", doi, err)
	}
	return nil
}

// Summarize returns run totals and the DOIs that ended in an error outcome,
// in DOI order.
func (l *Ledger) Summarize() (Summary, error) {
	var s Summary
	rows, err := l.db.Query(`SELECT doi, outcome FROM fetches ORDER BY doi`)
	if err != nil {
		return s, fmt.Errorf("querying ledger: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var doi, outcome string
		if err := rows.Scan(&doi, &outcome); err != nil {
			return s, fmt.Errorf("scanning ledger row: %w", err)
		}
		s.Total++
		if outcome == string(fetch.OutcomeOK) {
			s.OK++
		} else {
			s.Errored++
			s.FailedDOIs = append(s.FailedDOIs, doi)
		}
	}
	return s, rows.Err()
}
