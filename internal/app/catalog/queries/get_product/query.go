package get_product

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/murkotick/storefront-service/internal/app/catalog/domain"
	"github.com/murkotick/storefront-service/internal/pkg/money"
)

// SpannerGetProductQuery loads one product with its gallery, prices and
// attributes from a single read-only snapshot.
type SpannerGetProductQuery struct {
	Client  *spanner.Client
	Factory *domain.Factory
}

func NewSpannerGetProductQuery(client *spanner.Client, factory *domain.Factory) *SpannerGetProductQuery {
	return &SpannerGetProductQuery{Client: client, Factory: factory}
}

// GetProduct returns nil, nil when the product does not exist.
func (q *SpannerGetProductQuery) GetProduct(ctx context.Context, productID string) (*domain.Product, error) {
	tx := q.Client.ReadOnlyTransaction()
	defer tx.Close()

	base, err := readBase(ctx, tx, productID)
	if err != nil || base == nil {
		return nil, err
	}

	rec := domain.NewProductRecord(*base)
	if err := readGallery(ctx, tx, rec); err != nil {
		return nil, err
	}
	if err := readPrices(ctx, tx, rec); err != nil {
		return nil, err
	}
	if err := readAttributes(ctx, tx, rec); err != nil {
		return nil, err
	}
	return q.Factory.Build(rec), nil
}

func readBase(ctx context.Context, tx *spanner.ReadOnlyTransaction, productID string) (*domain.ProductBase, error) {
	stmt := spanner.Statement{
		SQL: `SELECT p.product_id, p.name, p.in_stock, p.description, p.brand, c.name
		      FROM products p
		      JOIN categories c ON c.name = p.category
		      WHERE p.product_id = @id`,
		Params: map[string]interface{}{"id": productID},
	}

	iter := tx.Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err == iterator.Done {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get product %q: %w", productID, err)
	}

	var (
		b           domain.ProductBase
		description spanner.NullString
		brand       spanner.NullString
	)
	if err := row.Columns(&b.ID, &b.Name, &b.InStock, &description, &brand, &b.Category); err != nil {
		return nil, err
	}
	b.Description = description.StringVal
	b.Brand = brand.StringVal
	return &b, nil
}

func readGallery(ctx context.Context, tx *spanner.ReadOnlyTransaction, rec *domain.ProductRecord) error {
	stmt := spanner.Statement{
		SQL: `SELECT position, url FROM product_gallery
		      WHERE product_id = @id ORDER BY position`,
		Params: map[string]interface{}{"id": rec.ID},
	}
	return tx.Query(ctx, stmt).Do(func(row *spanner.Row) error {
		var (
			pos int64
			url string
		)
		if err := row.Columns(&pos, &url); err != nil {
			return err
		}
		rec.AddGalleryImage(pos, url)
		return nil
	})
}

func readPrices(ctx context.Context, tx *spanner.ReadOnlyTransaction, rec *domain.ProductRecord) error {
	stmt := spanner.Statement{
		SQL: `SELECT position, amount, currency_label, currency_symbol FROM product_prices
		      WHERE product_id = @id ORDER BY position`,
		Params: map[string]interface{}{"id": rec.ID},
	}
	return tx.Query(ctx, stmt).Do(func(row *spanner.Row) error {
		var (
			pos           int64
			amount        spanner.NullNumeric
			label, symbol string
		)
		if err := row.Columns(&pos, &amount, &label, &symbol); err != nil {
			return err
		}
		if amount.Valid {
			rec.AddPrice(pos, money.FromRat(&amount.Numeric), label, symbol)
		}
		return nil
	})
}

func readAttributes(ctx context.Context, tx *spanner.ReadOnlyTransaction, rec *domain.ProductRecord) error {
	stmt := spanner.Statement{
		SQL: `SELECT s.attribute_set_id, s.position, s.name, s.type,
		             i.position, i.display_value, i.value
		      FROM attribute_sets s
		      LEFT JOIN attribute_items i
		        ON i.product_id = s.product_id AND i.attribute_set_id = s.attribute_set_id
		      WHERE s.product_id = @id
		      ORDER BY s.position, i.position`,
		Params: map[string]interface{}{"id": rec.ID},
	}
	return tx.Query(ctx, stmt).Do(func(row *spanner.Row) error {
		var (
			setID, name, typ    string
			setPos              int64
			itemPos             spanner.NullInt64
			displayValue, value spanner.NullString
		)
		if err := row.Columns(&setID, &setPos, &name, &typ, &itemPos, &displayValue, &value); err != nil {
			return err
		}
		rec.AddAttributeSet(setID, setPos, name, typ)
		if itemPos.Valid {
			rec.AddAttributeItem(setID, itemPos.Int64, displayValue.StringVal, value.StringVal)
		}
		return nil
	})
}
