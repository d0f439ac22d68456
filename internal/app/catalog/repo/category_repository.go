package repo

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/murkotick/storefront-service/internal/app/catalog/contracts"
	"github.com/murkotick/storefront-service/internal/app/catalog/domain"
	"github.com/murkotick/storefront-service/internal/app/catalog/queries/list_categories"
	"github.com/murkotick/storefront-service/internal/pkg/cache"
)

// CategoryRepository lists categories and resolves a category to its products.
type CategoryRepository struct {
	list     *list_categories.Handler
	products *ProductRepository
	store    cache.Store
	ttl      time.Duration
	log      *slog.Logger
}

func NewCategoryRepository(rm contracts.ReadModel, products *ProductRepository, store cache.Store, ttl time.Duration, logger *slog.Logger) *CategoryRepository {
	if store == nil {
		store = cache.Nop{}
	}
	if ttl <= 0 {
		ttl = cache.DefaultTTL
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &CategoryRepository{
		list:     list_categories.NewHandler(rm),
		products: products,
		store:    store,
		ttl:      ttl,
		log:      logger,
	}
}

// ListCategories returns real categories ordered by name.
func (r *CategoryRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return readThrough(ctx, r.store, r.ttl, r.log, KeyAllCategories, r.list.Execute, always[[]domain.Category])
}

// GetCategoryByName returns the category with its products. "all" aggregates
// every product; a category without products has an empty product list.
func (r *CategoryRepository) GetCategoryByName(ctx context.Context, name string) (*domain.Category, error) {
	if strings.TrimSpace(name) == "" {
		return nil, domain.ErrEmptyCategoryName
	}
	products, err := r.products.FindByCategory(ctx, name)
	if err != nil {
		return nil, err
	}
	return &domain.Category{Name: name, Products: products}, nil
}

// Invalidate drops the cached category listing.
func (r *CategoryRepository) Invalidate(ctx context.Context) error {
	return r.store.Delete(ctx, KeyAllCategories)
}

// Clear drops every cached catalog entry, categories and products alike.
func (r *CategoryRepository) Clear(ctx context.Context) error {
	return r.store.Clear(ctx)
}
