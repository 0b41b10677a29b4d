package cli

import (
	"context"
	"fmt"

	"github.com/idilsaglam/citas/internal/config"
	"github.com/idilsaglam/citas/internal/snapshot"
	"github.com/idilsaglam/citas/internal/store/jsonstore"
	"github.com/idilsaglam/citas/internal/store/memstore"
	"github.com/idilsaglam/citas/internal/store/pgstore"
	"github.com/idilsaglam/citas/internal/store/redisstore"
)

// OpenBackend connects the snapshot backend chosen in cfg. The returned close
// func is always non-nil.
func OpenBackend(ctx context.Context, cfg *config.Config) (snapshot.KV, func() error, error) {
	noop := func() error { return nil }
	switch cfg.Storage {
	case config.StorageFile:
		return jsonstore.New(cfg.DataDir), noop, nil
	case config.StorageMemory:
		return memstore.New(), noop, nil
	case config.StorageRedis:
		s, err := redisstore.Dial(ctx, redisstore.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			Prefix:   cfg.RedisPrefix,
		})
		if err != nil {
			return nil, noop, err
		}
		return s, s.Close, nil
	case config.StoragePostgres:
		s, pool, err := pgstore.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, noop, err
		}
		return s, func() error { pool.Close(); return nil }, nil
	}
	return nil, noop, fmt.Errorf("unknown storage %q", cfg.Storage)
}
