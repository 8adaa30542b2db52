package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/npillmayer/cefrlex"
	"github.com/npillmayer/cefrlex/internal/config"
	"github.com/npillmayer/cefrlex/source"
	"github.com/npillmayer/cefrlex/source/filesource"
	"github.com/npillmayer/cefrlex/source/pgsource"
	"github.com/npillmayer/cefrlex/source/redissource"
)

// OpenSource connects to the configured payload store. The returned close
// function releases its connections and is never nil.
func OpenSource(ctx context.Context, cfg config.SourceConfig) (source.Fetcher, func(), error) {
	switch cfg.Kind {
	case config.SourceFile:
		return filesource.New(cfg.Dir), func() {}, nil
	case config.SourceRedis:
		client := redissource.NewClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		return redissource.New(client, cfg.Redis.Prefix), func() { _ = client.Close() }, nil
	case config.SourcePostgres:
		pool, err := pgsource.Connect(ctx, cfg.Postgres.DSN)
		if err != nil {
			return nil, func() {}, err
		}
		src, err := pgsource.New(pool, cfg.Postgres.Table)
		if err != nil {
			pool.Close()
			return nil, func() {}, err
		}
		return src, pool.Close, nil
	}
	return nil, func() {}, fmt.Errorf("unknown source kind %q", cfg.Kind)
}

// LoadRegistry fetches the payloads of all configured languages and returns
// a registry serving them.
func LoadRegistry(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*cefrlex.Registry, error) {
	start := time.Now()
	fetcher, closeSource, err := OpenSource(ctx, cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("open %s source: %w", cfg.Source.Kind, err)
	}
	defer closeSource()

	payloads, err := source.Collect(ctx, fetcher, cfg.Langs)
	if err != nil {
		return nil, err
	}
	logger.Info("payloads loaded",
		slog.String("source", cfg.Source.Kind),
		slog.Any("languages", payloads.Languages()),
		slog.Duration("took", time.Since(start)),
	)

	var opts []cefrlex.Option
	if cfg.Resolve.CacheSize > 0 {
		opts = append(opts, cefrlex.WithResolveCache(cfg.Resolve.CacheSize))
	}
	return cefrlex.NewRegistry(payloads, opts...), nil
}
