package pgsource

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/npillmayer/cefrlex"
)

type failingQuerier struct {
	err   error
	query string
	args  []any
}

func (q *failingQuerier) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	q.query, q.args = sql, args
	return nil, q.err
}

func TestNewValidatesTable(t *testing.T) {
	s, err := New(nil, "")
	require.NoError(t, err)
	assert.Equal(t, DefaultTable, s.table)

	_, err = New(nil, "lexicon.cefr_entries")
	assert.NoError(t, err)

	for _, bad := range []string{"entries; DROP TABLE x", "1table", "a.b.c", "cefr entries"} {
		_, err := New(nil, bad)
		assert.Error(t, err, bad)
	}
}

func TestEntriesQuery(t *testing.T) {
	s, err := New(nil, "")
	require.NoError(t, err)
	query, args, err := s.entriesQuery(cefrlex.French)
	require.NoError(t, err)
	assert.Equal(t, "SELECT form, cefr_level, norm, tags, definitions, definitions_alt, examples, romanization, forms "+
		"FROM cefr_entries WHERE language = $1 ORDER BY id", query)
	assert.Equal(t, []any{"fr"}, args)
}

func TestLightQuery(t *testing.T) {
	s, err := New(nil, "lexicon.words")
	require.NoError(t, err)
	query, args, err := s.lightQuery(cefrlex.Japanese)
	require.NoError(t, err)
	assert.Contains(t, query, "SELECT form, cefr_level, norm FROM lexicon.words WHERE")
	assert.Contains(t, query, "language = $1")
	assert.Contains(t, query, "cefr_level IS NOT NULL")
	assert.Equal(t, []any{"ja"}, args)
}

func TestFetchQueryError(t *testing.T) {
	q := &failingQuerier{err: errors.New("connection refused")}
	s, err := New(q, "")
	require.NoError(t, err)

	_, err = s.FetchEntries(context.Background(), cefrlex.German)
	assert.ErrorIs(t, err, q.err)
	assert.Contains(t, q.query, "FROM cefr_entries")
	assert.Equal(t, []any{"de"}, q.args)

	_, err = s.FetchLight(context.Background(), cefrlex.German)
	assert.ErrorIs(t, err, q.err)
}
