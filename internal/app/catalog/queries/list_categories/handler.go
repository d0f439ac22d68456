package list_categories

import (
	"context"

	"github.com/murkotick/storefront-service/internal/app/catalog/contracts"
	"github.com/murkotick/storefront-service/internal/app/catalog/domain"
)

type Handler struct {
	readModel contracts.ReadModel
}

func NewHandler(r contracts.ReadModel) *Handler {
	return &Handler{readModel: r}
}

// Execute lists real categories. The synthetic "all" category is filtered
// here as well so a stored "all" row can never leak through.
func (h *Handler) Execute(ctx context.Context) ([]domain.Category, error) {
	cats, err := h.readModel.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Category, 0, len(cats))
	for _, c := range cats {
		if domain.IsAll(c.Name) {
			continue
		}
		out = append(out, domain.Category{Name: c.Name})
	}
	return out, nil
}
