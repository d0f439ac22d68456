// Package importer loads a catalog document into the database. It is the
// tooling behind cmd/seed and the end-to-end fixtures.
package importer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/murkotick/storefront-service/internal/app/catalog/contracts"
	"github.com/murkotick/storefront-service/internal/models/m_attribute_item"
	"github.com/murkotick/storefront-service/internal/models/m_attribute_set"
	"github.com/murkotick/storefront-service/internal/models/m_category"
	"github.com/murkotick/storefront-service/internal/models/m_product"
	"github.com/murkotick/storefront-service/internal/models/m_product_gallery"
	"github.com/murkotick/storefront-service/internal/models/m_product_price"
	commitplan "github.com/murkotick/storefront-service/internal/pkg/committer"
	"github.com/murkotick/storefront-service/internal/pkg/money"
)

// Stats summarizes an import run.
type Stats struct {
	Categories int
	Products   int
}

type Importer struct {
	committer contracts.Committer
	cache     contracts.CacheClearer
	log       *slog.Logger
}

// New builds an importer. cache may be nil when no cache is shared with the API.
func New(committer contracts.Committer, cache contracts.CacheClearer, logger *slog.Logger) *Importer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Importer{committer: committer, cache: cache, log: logger}
}

// Decode reads a catalog document.
func Decode(r io.Reader) (*Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return &doc, nil
}

// ImportReader decodes and imports a catalog document.
func (im *Importer) ImportReader(ctx context.Context, r io.Reader) (Stats, error) {
	doc, err := Decode(r)
	if err != nil {
		return Stats{}, err
	}
	return im.Import(ctx, doc)
}

// Import upserts every category, then replaces each product (row plus
// gallery, prices and attributes) in its own commit. Categories referenced
// only by products are created as well.
func (im *Importer) Import(ctx context.Context, doc *Document) (Stats, error) {
	for _, p := range doc.Data.Products {
		if err := p.validate(); err != nil {
			return Stats{}, err
		}
	}

	cats := categoryNames(doc)
	catPlan := commitplan.NewPlan()
	for _, name := range cats {
		catPlan.Add(m_category.UpsertMutation(name))
	}
	if err := im.committer.Apply(ctx, catPlan); err != nil {
		return Stats{}, fmt.Errorf("import categories: %w", err)
	}

	stats := Stats{Categories: len(cats)}
	for _, p := range doc.Data.Products {
		if err := im.committer.Apply(ctx, ProductPlan(p)); err != nil {
			return stats, fmt.Errorf("import product %q: %w", p.ID, err)
		}
		stats.Products++
	}

	if im.cache != nil {
		if err := im.cache.Clear(ctx); err != nil {
			im.log.WarnContext(ctx, "catalog cache clear failed after import", "error", err)
		}
	}
	im.log.InfoContext(ctx, "catalog imported", "categories", stats.Categories, "products", stats.Products)
	return stats, nil
}

// ProductPlan deletes the product (children cascade) and writes it back, so
// re-importing never leaves stale gallery, price or attribute rows behind.
func ProductPlan(p ProductDoc) *commitplan.Plan {
	plan := commitplan.NewPlan()
	plan.Add(m_product.DeleteMutation(p.ID))
	plan.Add(m_product.UpsertMutation(m_product.BuildUpsertMap(
		p.ID, p.Name, p.InStock, p.Description, p.Brand, p.Category,
	)))

	for i, url := range p.Gallery {
		plan.Add(m_product_gallery.UpsertMutation(p.ID, int64(i+1), url))
	}
	for i, pr := range p.Prices {
		plan.Add(m_product_price.UpsertMutation(p.ID, int64(i+1),
			money.FromDecimal(pr.Amount).Rat(), pr.Currency.Label, pr.Currency.Symbol))
	}
	for si, a := range p.Attributes {
		plan.Add(m_attribute_set.UpsertMutation(p.ID, a.ID, int64(si+1), a.Name, a.Type))
		for ii, it := range a.Items {
			plan.Add(m_attribute_item.UpsertMutation(p.ID, a.ID, int64(ii+1), it.DisplayValue, it.Value))
		}
	}
	return plan
}

func categoryNames(doc *Document) []string {
	seen := map[string]bool{}
	var out []string
	add := func(n string) {
		if n == "" || seen[n] {
			return
		}
		seen[n] = true
		out = append(out, n)
	}
	for _, c := range doc.Data.Categories {
		add(c.Name)
	}
	for _, p := range doc.Data.Products {
		add(p.Category)
	}
	return out
}
