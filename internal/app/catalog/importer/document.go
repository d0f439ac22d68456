package importer

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Document is the catalog seed format: the same shape the storefront
// GraphQL API serves, wrapped in {"data": ...}.
type Document struct {
	Data struct {
		Categories []CategoryDoc `json:"categories"`
		Products   []ProductDoc  `json:"products"`
	} `json:"data"`
}

type CategoryDoc struct {
	Name string `json:"name"`
}

type ProductDoc struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	InStock     bool           `json:"inStock"`
	Gallery     []string       `json:"gallery"`
	Description string         `json:"description"`
	Category    string         `json:"category"`
	Attributes  []AttributeDoc `json:"attributes"`
	Prices      []PriceDoc     `json:"prices"`
	Brand       string         `json:"brand"`
}

type AttributeDoc struct {
	ID    string    `json:"id"`
	Name  string    `json:"name"`
	Type  string    `json:"type"`
	Items []ItemDoc `json:"items"`
}

type ItemDoc struct {
	ID           string `json:"id"`
	DisplayValue string `json:"displayValue"`
	Value        string `json:"value"`
}

type PriceDoc struct {
	// decimal.Decimal parses JSON numbers exactly, without a float64 detour.
	Amount   decimal.Decimal `json:"amount"`
	Currency struct {
		Label  string `json:"label"`
		Symbol string `json:"symbol"`
	} `json:"currency"`
}

func (p ProductDoc) validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return fmt.Errorf("product %q: id is required", p.Name)
	}
	if strings.TrimSpace(p.Category) == "" {
		return fmt.Errorf("product %q: category is required", p.ID)
	}
	for _, pr := range p.Prices {
		if pr.Amount.IsNegative() {
			return fmt.Errorf("product %q: negative price %s", p.ID, pr.Amount)
		}
		if pr.Currency.Label == "" {
			return fmt.Errorf("product %q: price without currency label", p.ID)
		}
	}
	for _, a := range p.Attributes {
		if strings.TrimSpace(a.ID) == "" {
			return fmt.Errorf("product %q: attribute set without id", p.ID)
		}
		seen := map[string]bool{}
		for _, it := range a.Items {
			if it.Value == "" {
				continue
			}
			if seen[it.Value] {
				return fmt.Errorf("product %q: duplicate value %q in attribute set %q", p.ID, it.Value, a.ID)
			}
			seen[it.Value] = true
		}
	}
	return nil
}
