package main

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"semaphore/masterdata/internal/cache"
	"semaphore/masterdata/internal/config"
	"semaphore/masterdata/internal/db"
	"semaphore/masterdata/internal/repository"
	"semaphore/masterdata/internal/repository/sqlite"
)

const sqlitePrefix = "sqlite:"

type store struct {
	repo    repository.Repository
	migrate func(context.Context) error
	closers []func()
}

func (s *store) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
}

// openStore picks the backend from the DATABASE_URL scheme: sqlite:<path> or
// a postgres URL.
func openStore(ctx context.Context, cfg config.Config) (*store, error) {
	url := strings.TrimSpace(cfg.DatabaseURL)
	switch {
	case url == "":
		return nil, errors.New("DATABASE_URL is empty")
	case strings.HasPrefix(url, sqlitePrefix):
		path := strings.TrimPrefix(strings.TrimPrefix(url, sqlitePrefix), "//")
		if path == "" {
			return nil, errors.New("sqlite database path is empty")
		}
		sq, err := sqlite.Open(ctx, path)
		if err != nil {
			return nil, err
		}
		return &store{
			repo:    sq,
			migrate: sq.Migrate,
			closers: []func(){func() { sq.Close() }},
		}, nil
	default:
		pool, err := db.NewPool(ctx, url, cfg.DBMaxConns)
		if err != nil {
			return nil, err
		}
		pg := repository.NewStore(pool)
		return &store{
			repo:    pg,
			migrate: pg.Migrate,
			closers: []func(){pool.Close},
		}, nil
	}
}

// withCache wraps the store with Redis when REDIS_ADDR is set. An
// unreachable Redis is logged and the store is used directly.
func (s *store) withCache(ctx context.Context, cfg config.Config, log zerolog.Logger) {
	if cfg.RedisAddr == "" {
		return
	}
	client, err := cache.NewClient(ctx, cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		log.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis unavailable, cache disabled")
		return
	}
	s.closers = append(s.closers, func() { client.Close() })
	s.repo = cache.New(s.repo, client, cfg.CacheTTL, log)
	log.Info().Str("addr", cfg.RedisAddr).Dur("ttl", cfg.CacheTTL).Msg("redis cache enabled")
}
