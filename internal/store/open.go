package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/catapou/contador/internal/app"
	"github.com/catapou/contador/internal/db"
)

const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

var ErrUnknownBackend = errors.New("unknown store backend")

type Options struct {
	Backend string
	// SQLitePath must be resolved by the caller for the sqlite backend.
	SQLitePath string
	Redis      RedisOptions
}

// Open builds a JSONStore on the selected backend. The returned close function
// releases the backend connection.
func Open(ctx context.Context, opts Options, log *slog.Logger) (*JSONStore, func() error, error) {
	switch strings.ToLower(strings.TrimSpace(opts.Backend)) {
	case "", BackendSQLite:
		if err := app.EnsureDBDir(opts.SQLitePath); err != nil {
			return nil, nil, err
		}
		sqldb, err := db.Open(opts.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		if err := db.ApplyMigrations(sqldb); err != nil {
			_ = sqldb.Close()
			return nil, nil, err
		}
		return New(NewSQLiteKV(sqldb), log), sqldb.Close, nil
	case BackendRedis:
		kv, err := NewRedisKV(ctx, opts.Redis)
		if err != nil {
			return nil, nil, err
		}
		return New(kv, log), kv.Close, nil
	case BackendMemory:
		return New(NewMemoryKV(), log), func() error { return nil }, nil
	default:
		return nil, nil, fmt.Errorf("%w %q (use sqlite, redis or memory)", ErrUnknownBackend, opts.Backend)
	}
}
