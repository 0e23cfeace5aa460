package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
)

var ErrKeyNotFound = errors.New("key not found")

// Store is a flat key-value namespace holding JSON documents. Every backend
// must return ErrKeyNotFound from Get for a missing key.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Keys(ctx context.Context, prefix string) ([]string, error)
}

// loadCollection reads a JSON array stored under key. A missing key yields
// ok=false; an unreadable document is logged and treated as empty.
func loadCollection[T any](ctx context.Context, store Store, key string) (items []T, ok bool, err error) {
	raw, err := store.Get(ctx, key)
	if errors.Is(err, ErrKeyNotFound) {
		return []T{}, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, &items); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("stored collection is not valid JSON, treating as empty")
		return []T{}, true, nil
	}
	if items == nil {
		items = []T{}
	}
	return items, true, nil
}

func saveCollection[T any](ctx context.Context, store Store, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := store.Put(ctx, key, raw); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}
