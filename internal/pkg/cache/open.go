package cache

import (
	"context"
	"fmt"

	"github.com/murkotick/storefront-service/internal/pkg/clock"
)

// Backend names.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
	BackendNone   = "none"
)

// OpenOptions selects and configures a Store.
type OpenOptions struct {
	Backend string
	Redis   RedisOptions
	Clock   clock.Clock
}

// Open builds the store for opts.Backend. The returned close func is never nil.
func Open(ctx context.Context, opts OpenOptions) (Store, func() error, error) {
	noop := func() error { return nil }
	switch opts.Backend {
	case BackendMemory, "":
		clk := opts.Clock
		if clk == nil {
			clk = clock.RealClock{}
		}
		return NewMemoryStore(clk), noop, nil
	case BackendRedis:
		s, err := NewRedisStore(ctx, opts.Redis)
		if err != nil {
			return nil, noop, err
		}
		return s, s.Close, nil
	case BackendNone:
		return Nop{}, noop, nil
	default:
		return nil, noop, fmt.Errorf("cache: unknown backend %q", opts.Backend)
	}
}
