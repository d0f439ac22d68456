package domain

import (
	"strings"

	"github.com/murkotick/storefront-service/internal/pkg/money"
)

// AllCategory is the synthetic category that aggregates every product.
const AllCategory = "all"

// Category is a named product grouping. Products is only populated by
// category lookups, never by the category listing.
type Category struct {
	Name     string     `json:"name"`
	Products []*Product `json:"products,omitempty"`
}

// Product is a fully assembled catalog entry.
type Product struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	InStock     bool           `json:"in_stock"`
	Description string         `json:"description"`
	Brand       string         `json:"brand"`
	Category    string         `json:"category"`
	Kind        Kind           `json:"kind"`
	Gallery     []string       `json:"gallery"`
	Prices      []Price        `json:"prices"`
	Attributes  []AttributeSet `json:"attributes"`
}

type Price struct {
	Amount         *money.Money `json:"amount"`
	CurrencyLabel  string       `json:"currency_label"`
	CurrencySymbol string       `json:"currency_symbol"`
}

type AttributeSet struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Type  string          `json:"type"`
	Items []AttributeItem `json:"items"`
}

type AttributeItem struct {
	DisplayValue string `json:"display_value"`
	Value        string `json:"value"`
}

// PriceFor picks the display price for currency. A blank currency means
// defaultCurrency. When no price matches, the first stored price is used;
// nil is returned only when the product has no prices at all.
func (p *Product) PriceFor(currency, defaultCurrency string) *Price {
	if len(p.Prices) == 0 {
		return nil
	}
	want := strings.TrimSpace(currency)
	if want == "" {
		want = defaultCurrency
	}
	for i := range p.Prices {
		if strings.EqualFold(p.Prices[i].CurrencyLabel, want) {
			return &p.Prices[i]
		}
	}
	return &p.Prices[0]
}

// IsAll reports whether name is the synthetic "all" category.
func IsAll(name string) bool {
	return name == AllCategory
}
