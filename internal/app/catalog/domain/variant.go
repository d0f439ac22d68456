package domain

import (
	"strings"
	"sync"
)

// Kind names a product variant.
type Kind string

const (
	KindGeneric  Kind = "generic"
	KindClothing Kind = "clothing"
	KindTech     Kind = "tech"
)

// Variant shapes the loaded parts of a product into a Product. Every
// category maps to exactly one Variant through a Factory.
type Variant interface {
	Kind() Kind
	// ShapeAttributes receives attribute sets in stored order with items
	// already grouped and filtered.
	ShapeAttributes(sets []AttributeSet) []AttributeSet
}

// baseVariant holds the attribute handling shared by all current variants.
type baseVariant struct{}

func (baseVariant) ShapeAttributes(sets []AttributeSet) []AttributeSet {
	return sets
}

type GenericVariant struct{ baseVariant }

func (GenericVariant) Kind() Kind { return KindGeneric }

type ClothingVariant struct{ baseVariant }

func (ClothingVariant) Kind() Kind { return KindClothing }

type TechVariant struct{ baseVariant }

func (TechVariant) Kind() Kind { return KindTech }

// Factory dispatches a category name to a Variant. Keys are normalized
// (trimmed, lower-cased); unknown categories use the fallback.
type Factory struct {
	mu       sync.RWMutex
	variants map[string]Variant
	fallback Variant
}

// NewFactory returns a factory with no mappings.
func NewFactory(fallback Variant) (*Factory, error) {
	if fallback == nil {
		return nil, ErrNoFallbackVariant
	}
	return &Factory{
		variants: make(map[string]Variant),
		fallback: fallback,
	}, nil
}

// DefaultFactory maps clothes/clothing and tech/technology, falling back to
// GenericVariant.
func DefaultFactory() *Factory {
	f, _ := NewFactory(GenericVariant{})
	f.Register(ClothingVariant{}, "clothes", "clothing")
	f.Register(TechVariant{}, "tech", "technology")
	return f
}

// Register maps each category key to v, replacing earlier mappings.
func (f *Factory) Register(v Variant, categories ...string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range categories {
		f.variants[normalizeCategory(c)] = v
	}
}

// VariantFor returns the variant for category.
func (f *Factory) VariantFor(category string) Variant {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if v, ok := f.variants[normalizeCategory(category)]; ok {
		return v
	}
	return f.fallback
}

// Build turns an assembled record into a Product using the record's category variant.
func (f *Factory) Build(r *ProductRecord) *Product {
	v := f.VariantFor(r.Category)
	return &Product{
		ID:          r.ID,
		Name:        r.Name,
		InStock:     r.InStock,
		Description: r.Description,
		Brand:       r.Brand,
		Category:    r.Category,
		Kind:        v.Kind(),
		Gallery:     r.gallery(),
		Prices:      r.prices(),
		Attributes:  v.ShapeAttributes(r.attributeSets()),
	}
}

func normalizeCategory(c string) string {
	return strings.ToLower(strings.TrimSpace(c))
}
