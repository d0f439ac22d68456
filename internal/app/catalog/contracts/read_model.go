package contracts

import (
	"context"

	"github.com/murkotick/storefront-service/internal/app/catalog/domain"
)

// ReadModel is the query side of the catalog. Implementations hit the
// database on every call; caching belongs to the repositories.
type ReadModel interface {
	// GetProduct returns nil, nil when no product has the id.
	GetProduct(ctx context.Context, productID string) (*domain.Product, error)
	// ListProducts returns every product of category, or of every category
	// when category is domain.AllCategory.
	ListProducts(ctx context.Context, category string) ([]*domain.Product, error)
	// ListCategories returns stored category names in lexicographic order,
	// without the synthetic "all" category.
	ListCategories(ctx context.Context) ([]domain.Category, error)
}
