/*
Package pgsource reads dictionary payloads from a PostgreSQL table with one
row per dictionary entry:

	CREATE TABLE cefr_entries (
	    id              bigserial PRIMARY KEY,
	    language        text NOT NULL,
	    form            text NOT NULL,
	    cefr_level      text,
	    norm            text,
	    tags            text[],
	    definitions     text[],
	    definitions_alt text[],
	    examples        text[],
	    romanization    text,
	    forms           text[]
	);

The light index is derived from the same table: every row with a level.
*/
package pgsource

import (
	"context"
	"fmt"
	"regexp"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/npillmayer/cefrlex"
	"github.com/npillmayer/cefrlex/source"
)

// DefaultTable is the table read when none is configured.
const DefaultTable = "cefr_entries"

// Querier is the subset of *pgxpool.Pool the source needs.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// Source is a source.Fetcher over PostgreSQL.
type Source struct {
	db    Querier
	table string
	psql  sq.StatementBuilderType
}

var _ source.Fetcher = (*Source)(nil)

var tableName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)

// New creates a source reading table through db. An empty table selects
// DefaultTable.
func New(db Querier, table string) (*Source, error) {
	if table == "" {
		table = DefaultTable
	}
	if !tableName.MatchString(table) {
		return nil, fmt.Errorf("pgsource: invalid table name %q", table)
	}
	return &Source{
		db:    db,
		table: table,
		psql:  sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}, nil
}

// Connect opens a connection pool and checks that the server answers.
func Connect(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse database DSN: %w", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return pool, nil
}

type entryRow struct {
	Form           string   `db:"form"`
	CEFR           *string  `db:"cefr_level"`
	Norm           *string  `db:"norm"`
	Tags           []string `db:"tags"`
	Definitions    []string `db:"definitions"`
	AltDefinitions []string `db:"definitions_alt"`
	Examples       []string `db:"examples"`
	Romanization   *string  `db:"romanization"`
	Forms          []string `db:"forms"`
}

func (r entryRow) raw() cefrlex.RawEntry {
	return cefrlex.RawEntry{
		Form:           r.Form,
		CEFR:           deref(r.CEFR),
		Norm:           deref(r.Norm),
		Tags:           r.Tags,
		Definitions:    r.Definitions,
		AltDefinitions: r.AltDefinitions,
		Examples:       r.Examples,
		Romanization:   deref(r.Romanization),
		Forms:          r.Forms,
	}
}

type lightRow struct {
	Form string  `db:"form"`
	CEFR string  `db:"cefr_level"`
	Norm *string `db:"norm"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func (s *Source) entriesQuery(lang cefrlex.Language) (string, []any, error) {
	return s.psql.
		Select("form", "cefr_level", "norm", "tags", "definitions", "definitions_alt",
			"examples", "romanization", "forms").
		From(s.table).
		Where(sq.Eq{"language": string(lang)}).
		OrderBy("id").
		ToSql()
}

func (s *Source) lightQuery(lang cefrlex.Language) (string, []any, error) {
	return s.psql.
		Select("form", "cefr_level", "norm").
		From(s.table).
		Where(sq.And{
			sq.Eq{"language": string(lang)},
			sq.NotEq{"cefr_level": nil},
		}).
		OrderBy("id").
		ToSql()
}

// FetchEntries reads every row of lang.
func (s *Source) FetchEntries(ctx context.Context, lang cefrlex.Language) ([]cefrlex.RawEntry, error) {
	query, args, err := s.entriesQuery(lang)
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query entries %q: %w", lang, err)
	}
	collected, err := pgx.CollectRows(rows, pgx.RowToStructByName[entryRow])
	if err != nil {
		return nil, fmt.Errorf("scan entries %q: %w", lang, err)
	}
	if len(collected) == 0 {
		return nil, fmt.Errorf("table %s, language %q: %w", s.table, lang, source.ErrNoPayload)
	}
	entries := make([]cefrlex.RawEntry, len(collected))
	for i, row := range collected {
		entries[i] = row.raw()
	}
	return entries, nil
}

// FetchLight reads form and level of every row of lang that has a level.
func (s *Source) FetchLight(ctx context.Context, lang cefrlex.Language) ([]cefrlex.RawLightEntry, error) {
	query, args, err := s.lightQuery(lang)
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query light entries %q: %w", lang, err)
	}
	collected, err := pgx.CollectRows(rows, pgx.RowToStructByName[lightRow])
	if err != nil {
		return nil, fmt.Errorf("scan light entries %q: %w", lang, err)
	}
	if len(collected) == 0 {
		return nil, fmt.Errorf("table %s, language %q: %w", s.table, lang, source.ErrNoPayload)
	}
	entries := make([]cefrlex.RawLightEntry, len(collected))
	for i, row := range collected {
		entries[i] = cefrlex.RawLightEntry{Form: row.Form, Norm: deref(row.Norm), CEFR: []string{row.CEFR}}
	}
	return entries, nil
}
