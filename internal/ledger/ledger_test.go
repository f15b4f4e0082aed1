// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ledger

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tkreuzer/scholex/internal/fetch"
)

func openTestLedger(t *testing.T) *Ledger {
	t.Helper()
	l, err := Open(filepath.Join(t.TempDir(), "fetch.db"))
	require.NoError(t, err)
	t.Cleanup(func() { l.Close() })
	return l
}

func TestRecordAndSummarize(t *testing.T) {
	l := openTestLedger(t)

	require.NoError(t, l.Record("10.1/a", fetch.OutcomeOK, 200, "responses/10.1_a.json"))
	require.NoError(t, l.Record("10.2/b", fetch.OutcomeError, 500, "responses/10.2_b.json"))
	require.NoError(t, l.Record("10.3/c", fetch.OutcomeError, 0, "responses/10.3_c.json"))

	s, err := l.Summarize()
	require.NoError(t, err)

	assert.Equal(t, 3, s.Total)
	assert.Equal(t, 1, s.OK)
	assert.Equal(t, 2, s.Errored)
	assert.Equal(t, []string{"10.2/b", "10.3/c"}, s.FailedDOIs)
}

func TestRecordRerunOverwrites(t *testing.T) {
	l := openTestLedger(t)

	require.NoError(t, l.Record("10.1/a", fetch.OutcomeError, 503, "responses/10.1_a.json"))
	require.NoError(t, l.Record("10.1/a", fetch.OutcomeOK, 200, "responses/10.1_a.json"))

	s, err := l.Summarize()
	require.NoError(t, err)

	assert.Equal(t, 1, s.Total)
	assert.Equal(t, 1, s.OK)
	assert.Equal(t, 0, s.Errored)
	assert.Empty(t, s.FailedDOIs)
}

func TestOpenCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "fetch.db")
	l, err := Open(path)
	require.NoError(t, err)
	defer l.Close()

	require.NoError(t, l.Record("10.1/a", fetch.OutcomeOK, 200, "x.json"))
}

func TestSummarizeEmptyLedger(t *testing.T) {
	l := openTestLedger(t)

	s, err := l.Summarize()
	require.NoError(t, err)
	assert.Equal(t, Summary{}, s)
}
