/*
Package source fetches raw dictionary payloads from external stores at
startup. Subpackages implement Fetcher for files, Redis and PostgreSQL;
Collect gathers the payloads of several languages into a cefrlex.Payloads
that a cefrlex.Registry serves from memory afterwards.
*/
package source

import (
	"context"
	"errors"
	"fmt"

	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/sync/errgroup"

	"github.com/npillmayer/cefrlex"
)

// ErrNoPayload marks a language the store has no data for. Collect skips
// such languages.
var ErrNoPayload = errors.New("no payload")

// Fetcher reads the payloads of one language.
type Fetcher interface {
	FetchEntries(ctx context.Context, lang cefrlex.Language) ([]cefrlex.RawEntry, error)
	FetchLight(ctx context.Context, lang cefrlex.Language) ([]cefrlex.RawLightEntry, error)
}

// maxParallelFetches bounds concurrent requests against one store.
const maxParallelFetches = 4

// tracer writes to trace with key 'cefrlex.source'
func tracer() tracing.Trace {
	return tracing.Select("cefrlex.source")
}

// Collect fetches full and light payloads of every language in langs.
// A language without data is skipped; any other error aborts.
func Collect(ctx context.Context, f Fetcher, langs []cefrlex.Language) (*cefrlex.Payloads, error) {
	payloads := cefrlex.NewPayloads()
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelFetches)
	for _, lang := range langs {
		g.Go(func() error {
			entries, err := f.FetchEntries(gctx, lang)
			switch {
			case errors.Is(err, ErrNoPayload):
				tracer().Infof("no dictionary for %q", lang)
			case err != nil:
				return fmt.Errorf("fetch dictionary %q: %w", lang, err)
			default:
				payloads.Add(lang, entries)
			}
			light, err := f.FetchLight(gctx, lang)
			switch {
			case errors.Is(err, ErrNoPayload):
				tracer().Infof("no light list for %q", lang)
			case err != nil:
				return fmt.Errorf("fetch light list %q: %w", lang, err)
			default:
				payloads.AddLight(lang, light)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return payloads, nil
}
