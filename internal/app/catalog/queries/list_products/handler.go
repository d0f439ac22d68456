package list_products

import (
	"context"
	"strings"

	"github.com/murkotick/storefront-service/internal/app/catalog/contracts"
	"github.com/murkotick/storefront-service/internal/app/catalog/domain"
)

type Handler struct {
	readModel contracts.ReadModel
}

func NewHandler(r contracts.ReadModel) *Handler {
	return &Handler{readModel: r}
}

// Execute lists the products of category. A category with no products, or
// one that does not exist, yields an empty slice.
func (h *Handler) Execute(ctx context.Context, category string) ([]*domain.Product, error) {
	if strings.TrimSpace(category) == "" {
		return nil, domain.ErrEmptyCategoryName
	}
	products, err := h.readModel.ListProducts(ctx, category)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []*domain.Product{}
	}
	return products, nil
}
