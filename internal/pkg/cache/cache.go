// Package cache provides the injectable read cache used by the catalog
// repositories. Values are opaque bytes; callers choose the encoding.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// DefaultTTL bounds how stale a cached catalog read may be.
const DefaultTTL = 300 * time.Second

// Store is a key/value cache with per-entry expiry.
type Store interface {
	// Get returns the value and true when key is present and not expired.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	// Clear drops every entry owned by this store.
	Clear(ctx context.Context) error

	// Generation is advanced by every Delete and Clear.
	Generation(ctx context.Context) (uint64, error)
	// SetIfGeneration stores value only while the generation still equals
	// gen, so a read that began before an invalidation cannot repopulate it.
	SetIfGeneration(ctx context.Context, key string, value []byte, ttl time.Duration, gen uint64) (bool, error)
}

// GetJSON loads key and decodes it into a T.
func GetJSON[T any](ctx context.Context, s Store, key string) (T, bool, error) {
	var zero T
	b, ok, err := s.Get(ctx, key)
	if err != nil || !ok {
		return zero, false, err
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return zero, false, fmt.Errorf("cache: decode %q: %w", key, err)
	}
	return v, true, nil
}

// SetJSON encodes v and stores it under key.
func SetJSON[T any](ctx context.Context, s Store, key string, v T, ttl time.Duration) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("cache: encode %q: %w", key, err)
	}
	return s.Set(ctx, key, b, ttl)
}

// SetJSONIfGeneration encodes v and stores it under key unless the store was
// invalidated after gen was read.
func SetJSONIfGeneration[T any](ctx context.Context, s Store, key string, v T, ttl time.Duration, gen uint64) (bool, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return false, fmt.Errorf("cache: encode %q: %w", key, err)
	}
	return s.SetIfGeneration(ctx, key, b, ttl, gen)
}

// Nop caches nothing.
type Nop struct{}

func (Nop) Get(context.Context, string) ([]byte, bool, error)        { return nil, false, nil }
func (Nop) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (Nop) Delete(context.Context, ...string) error                  { return nil }
func (Nop) Clear(context.Context) error                              { return nil }
func (Nop) Generation(context.Context) (uint64, error)               { return 0, nil }
func (Nop) SetIfGeneration(context.Context, string, []byte, time.Duration, uint64) (bool, error) {
	return false, nil
}
