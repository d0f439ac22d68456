package list_products

import (
	"github.com/murkotick/storefront-service/internal/app/catalog/domain"
	"github.com/murkotick/storefront-service/internal/pkg/money"
)

// JoinedRow is one row of the product multi-join. Child columns are nil
// when the product has no row in that table.
type JoinedRow struct {
	domain.ProductBase

	GalleryPos *int64
	GalleryURL *string

	PricePos       *int64
	PriceAmount    *money.Money
	CurrencyLabel  string
	CurrencySymbol string

	SetID   *string
	SetPos  int64
	SetName string
	SetType string

	ItemPos      *int64
	DisplayValue string
	Value        string
}

// Assembler folds joined rows into products, preserving the order in which
// products first appear.
type Assembler struct {
	factory *domain.Factory
	order   []string
	records map[string]*domain.ProductRecord
}

func NewAssembler(factory *domain.Factory) *Assembler {
	return &Assembler{
		factory: factory,
		records: make(map[string]*domain.ProductRecord),
	}
}

func (a *Assembler) Add(row JoinedRow) {
	rec, ok := a.records[row.ID]
	if !ok {
		rec = domain.NewProductRecord(row.ProductBase)
		a.records[row.ID] = rec
		a.order = append(a.order, row.ID)
	}

	if row.GalleryPos != nil && row.GalleryURL != nil {
		rec.AddGalleryImage(*row.GalleryPos, *row.GalleryURL)
	}
	if row.PricePos != nil {
		rec.AddPrice(*row.PricePos, row.PriceAmount, row.CurrencyLabel, row.CurrencySymbol)
	}
	if row.SetID != nil {
		rec.AddAttributeSet(*row.SetID, row.SetPos, row.SetName, row.SetType)
		if row.ItemPos != nil {
			rec.AddAttributeItem(*row.SetID, *row.ItemPos, row.DisplayValue, row.Value)
		}
	}
}

// Products builds the assembled products. It never returns nil.
func (a *Assembler) Products() []*domain.Product {
	out := make([]*domain.Product, 0, len(a.order))
	for _, id := range a.order {
		out = append(out, a.factory.Build(a.records[id]))
	}
	return out
}
