package list_products

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/murkotick/storefront-service/internal/app/catalog/domain"
	"github.com/murkotick/storefront-service/internal/pkg/money"
)

const selectJoined = `SELECT p.product_id, p.name, p.in_stock, p.description, p.brand, c.name,
       g.position, g.url,
       pp.position, pp.amount, pp.currency_label, pp.currency_symbol,
       s.attribute_set_id, s.position, s.name, s.type,
       i.position, i.display_value, i.value
FROM products p
JOIN categories c ON c.name = p.category
LEFT JOIN product_gallery g ON g.product_id = p.product_id
LEFT JOIN product_prices pp ON pp.product_id = p.product_id
LEFT JOIN attribute_sets s ON s.product_id = p.product_id
LEFT JOIN attribute_items i
  ON i.product_id = s.product_id AND i.attribute_set_id = s.attribute_set_id`

// SpannerListProductsQuery loads every product of a category with one
// multi-join query instead of one query per product.
type SpannerListProductsQuery struct {
	Client  *spanner.Client
	Factory *domain.Factory
}

func NewSpannerListProductsQuery(client *spanner.Client, factory *domain.Factory) *SpannerListProductsQuery {
	return &SpannerListProductsQuery{Client: client, Factory: factory}
}

// BuildStatement omits the category filter for the "all" category.
func BuildStatement(category string) spanner.Statement {
	sql := selectJoined
	params := map[string]interface{}{}
	if !domain.IsAll(category) {
		sql += "\nWHERE c.name = @category"
		params["category"] = category
	}
	sql += "\nORDER BY p.name, p.product_id"
	return spanner.Statement{SQL: sql, Params: params}
}

func (q *SpannerListProductsQuery) ListProducts(ctx context.Context, category string) ([]*domain.Product, error) {
	iter := q.Client.Single().Query(ctx, BuildStatement(category))
	defer iter.Stop()

	asm := NewAssembler(q.Factory)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			return asm.Products(), nil
		}
		if err != nil {
			return nil, fmt.Errorf("list products of %q: %w", category, err)
		}
		jr, err := scanJoined(row)
		if err != nil {
			return nil, err
		}
		asm.Add(jr)
	}
}

func scanJoined(row *spanner.Row) (JoinedRow, error) {
	var (
		jr                  JoinedRow
		description, brand  spanner.NullString
		galleryPos          spanner.NullInt64
		galleryURL          spanner.NullString
		pricePos            spanner.NullInt64
		amount              spanner.NullNumeric
		label, symbol       spanner.NullString
		setID               spanner.NullString
		setPos              spanner.NullInt64
		setName, setType    spanner.NullString
		itemPos             spanner.NullInt64
		displayValue, value spanner.NullString
	)
	if err := row.Columns(
		&jr.ID, &jr.Name, &jr.InStock, &description, &brand, &jr.Category,
		&galleryPos, &galleryURL,
		&pricePos, &amount, &label, &symbol,
		&setID, &setPos, &setName, &setType,
		&itemPos, &displayValue, &value,
	); err != nil {
		return JoinedRow{}, err
	}

	jr.Description = description.StringVal
	jr.Brand = brand.StringVal
	if galleryPos.Valid && galleryURL.Valid {
		jr.GalleryPos = &galleryPos.Int64
		jr.GalleryURL = &galleryURL.StringVal
	}
	if pricePos.Valid && amount.Valid {
		jr.PricePos = &pricePos.Int64
		jr.PriceAmount = money.FromRat(&amount.Numeric)
		jr.CurrencyLabel = label.StringVal
		jr.CurrencySymbol = symbol.StringVal
	}
	if setID.Valid {
		jr.SetID = &setID.StringVal
		jr.SetPos = setPos.Int64
		jr.SetName = setName.StringVal
		jr.SetType = setType.StringVal
	}
	if itemPos.Valid {
		jr.ItemPos = &itemPos.Int64
		jr.DisplayValue = displayValue.StringVal
		jr.Value = value.StringVal
	}
	return jr, nil
}
