package storage

import (
	"context"
	"errors"
	"strings"
)

const (
	EngineSQLite = "sqlite"
	EngineJSON   = "json"
	EngineMemory = "memory"
)

// Store is the durable key/value gateway behind a hunter profile.
// Load reports ok=false for keys that were never saved.
type Store interface {
	Load(ctx context.Context, key string) (value []byte, ok bool, err error)
	Save(ctx context.Context, key string, value []byte) error
	// SaveMany writes all entries or none of them.
	SaveMany(ctx context.Context, entries []Entry) error
	Close() error
}

func NewByEngine(ctx context.Context, engine string, path string) (Store, error) {
	switch strings.ToLower(strings.TrimSpace(engine)) {
	case "", EngineSQLite:
		return NewSQLiteStore(ctx, path)
	case EngineJSON:
		return NewJSONStore(path)
	case EngineMemory:
		return NewMemoryStore(), nil
	default:
		return nil, errors.New("unsupported store engine: " + engine)
	}
}
