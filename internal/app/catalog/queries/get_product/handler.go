package get_product

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

// Execute returns nil, nil for an unknown id.
func (h *Handler) Execute(ctx context.Context, productID string) (*domain.Product, error) {
	if strings.TrimSpace(productID) == "" {
		return nil, domain.ErrEmptyProductID
	}
	return h.readModel.GetProduct(ctx, productID)
}
