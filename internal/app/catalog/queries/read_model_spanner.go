package queries

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/murkotick/storefront-service/internal/app/catalog/domain"
	"github.com/murkotick/storefront-service/internal/app/catalog/queries/get_product"
	"github.com/murkotick/storefront-service/internal/app/catalog/queries/list_categories"
	"github.com/murkotick/storefront-service/internal/app/catalog/queries/list_products"
)

// SpannerReadModel satisfies contracts.ReadModel by composing the individual queries.
type SpannerReadModel struct {
	getQ  *get_product.SpannerGetProductQuery
	listQ *list_products.SpannerListProductsQuery
	catsQ *list_categories.SpannerListCategoriesQuery
}

func NewSpannerReadModel(client *spanner.Client, factory *domain.Factory) *SpannerReadModel {
	if factory == nil {
		factory = domain.DefaultFactory()
	}
	return &SpannerReadModel{
		getQ:  get_product.NewSpannerGetProductQuery(client, factory),
		listQ: list_products.NewSpannerListProductsQuery(client, factory),
		catsQ: list_categories.NewSpannerListCategoriesQuery(client),
	}
}

func (rm *SpannerReadModel) GetProduct(ctx context.Context, productID string) (*domain.Product, error) {
	return rm.getQ.GetProduct(ctx, productID)
}

func (rm *SpannerReadModel) ListProducts(ctx context.Context, category string) ([]*domain.Product, error) {
	return rm.listQ.ListProducts(ctx, category)
}

func (rm *SpannerReadModel) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return rm.catsQ.ListCategories(ctx)
}
