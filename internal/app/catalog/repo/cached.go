package repo

import (
	"context"
	"log/slog"
	"time"

	"github.com/murkotick/storefront-service/internal/pkg/cache"
)

// Cache keys shared by the catalog repositories.
const (
	KeyAllCategories  = "all_categories"
	keyCategoryPrefix = "category_"
	keyProductPrefix  = "product_"
)

func CategoryKey(name string) string { return keyCategoryPrefix + name }
func ProductKey(id string) string    { return keyProductPrefix + id }

// readThrough serves key from the store, falling back to load. Cache faults
// are logged and otherwise ignored; a value is cached only when store(v) is
// true and no Delete or Clear ran while it was loading.
func readThrough[T any](
	ctx context.Context,
	s cache.Store,
	ttl time.Duration,
	log *slog.Logger,
	key string,
	load func(context.Context) (T, error),
	store func(T) bool,
) (T, error) {
	if v, ok, err := cache.GetJSON[T](ctx, s, key); err != nil {
		log.WarnContext(ctx, "catalog cache read failed", "key", key, "error", err)
	} else if ok {
		return v, nil
	}

	gen, genErr := s.Generation(ctx)
	if genErr != nil {
		log.WarnContext(ctx, "catalog cache generation read failed", "key", key, "error", genErr)
	}

	v, err := load(ctx)
	if err != nil {
		return v, err
	}
	if genErr == nil && store(v) {
		if _, err := cache.SetJSONIfGeneration(ctx, s, key, v, ttl, gen); err != nil {
			log.WarnContext(ctx, "catalog cache write failed", "key", key, "error", err)
		}
	}
	return v, nil
}

func always[T any](T) bool { return true }
