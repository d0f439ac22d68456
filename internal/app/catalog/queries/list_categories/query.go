package list_categories

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"

	"github.com/murkotick/storefront-service/internal/app/catalog/domain"
)

type SpannerListCategoriesQuery struct {
	Client *spanner.Client
}

func NewSpannerListCategoriesQuery(client *spanner.Client) *SpannerListCategoriesQuery {
	return &SpannerListCategoriesQuery{Client: client}
}

func (q *SpannerListCategoriesQuery) ListCategories(ctx context.Context) ([]domain.Category, error) {
	stmt := spanner.Statement{
		SQL:    `SELECT name FROM categories WHERE name != @all ORDER BY name`,
		Params: map[string]interface{}{"all": domain.AllCategory},
	}

	out := make([]domain.Category, 0)
	err := q.Client.Single().Query(ctx, stmt).Do(func(row *spanner.Row) error {
		var name string
		if err := row.Columns(&name); err != nil {
			return err
		}
		out = append(out, domain.Category{Name: name})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return out, nil
}
