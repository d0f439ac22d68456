package repo

import (
	"context"
	"log/slog"
	"time"

	"github.com/murkotick/storefront-service/internal/app/catalog/contracts"
	"github.com/murkotick/storefront-service/internal/app/catalog/domain"
	"github.com/murkotick/storefront-service/internal/app/catalog/queries/get_product"
	"github.com/murkotick/storefront-service/internal/app/catalog/queries/list_products"
	"github.com/murkotick/storefront-service/internal/pkg/cache"
)

// ProductRepository serves products through a time-boxed cache it owns.
type ProductRepository struct {
	get   *get_product.Handler
	list  *list_products.Handler
	store cache.Store
	ttl   time.Duration
	log   *slog.Logger
}

func NewProductRepository(rm contracts.ReadModel, store cache.Store, ttl time.Duration, logger *slog.Logger) *ProductRepository {
	if store == nil {
		store = cache.Nop{}
	}
	if ttl <= 0 {
		ttl = cache.DefaultTTL
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ProductRepository{
		get:   get_product.NewHandler(rm),
		list:  list_products.NewHandler(rm),
		store: store,
		ttl:   ttl,
		log:   logger,
	}
}

// FindByID returns nil, nil for an unknown id. Misses are not cached.
func (r *ProductRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	return readThrough(ctx, r.store, r.ttl, r.log, ProductKey(id),
		func(ctx context.Context) (*domain.Product, error) { return r.get.Execute(ctx, id) },
		func(p *domain.Product) bool { return p != nil },
	)
}

// FindByCategory lists the products of category; "all" lists every product.
func (r *ProductRepository) FindByCategory(ctx context.Context, category string) ([]*domain.Product, error) {
	return readThrough(ctx, r.store, r.ttl, r.log, CategoryKey(category),
		func(ctx context.Context) ([]*domain.Product, error) { return r.list.Execute(ctx, category) },
		always[[]*domain.Product],
	)
}

// Invalidate drops the cached entries for the given products and categories.
// The "all" listing spans every category, so it is dropped with any of them.
func (r *ProductRepository) Invalidate(ctx context.Context, productIDs []string, categories []string) error {
	keys := make([]string, 0, len(productIDs)+len(categories)+1)
	for _, id := range productIDs {
		keys = append(keys, ProductKey(id))
	}
	for _, c := range categories {
		keys = append(keys, CategoryKey(c))
	}
	if len(keys) == 0 {
		return nil
	}
	keys = append(keys, CategoryKey(domain.AllCategory))
	return r.store.Delete(ctx, keys...)
}
