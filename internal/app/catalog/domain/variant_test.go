package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultFactory_DispatchTable(t *testing.T) {
	f := DefaultFactory()

	cases := map[string]Kind{
		"clothes":      KindClothing,
		"Clothing":     KindClothing,
		"  CLOTHES ":   KindClothing,
		"tech":         KindTech,
		"Technology":   KindTech,
		"furniture":    KindGeneric,
		"":             KindGeneric,
		"all":          KindGeneric,
		"tech-gadgets": KindGeneric,
	}
	for category, want := range cases {
		assert.Equal(t, want, f.VariantFor(category).Kind(), "category %q", category)
	}
}

type warrantyVariant struct{ baseVariant }

func (warrantyVariant) Kind() Kind { return "warranty" }

func (warrantyVariant) ShapeAttributes(sets []AttributeSet) []AttributeSet {
	return append(sets, AttributeSet{ID: "warranty", Name: "Warranty", Type: "text"})
}

func TestFactory_RegisterNewCategoryKeepsExistingVariants(t *testing.T) {
	f := DefaultFactory()
	f.Register(warrantyVariant{}, "Appliances")

	assert.Equal(t, Kind("warranty"), f.VariantFor("appliances").Kind())
	assert.Equal(t, KindTech, f.VariantFor("tech").Kind())
	assert.Equal(t, KindClothing, f.VariantFor("clothes").Kind())

	p := f.Build(NewProductRecord(ProductBase{ID: "fridge", Category: "appliances"}))
	require.Len(t, p.Attributes, 1)
	assert.Equal(t, "warranty", p.Attributes[0].ID)
}

func TestNewFactory_RequiresFallback(t *testing.T) {
	_, err := NewFactory(nil)
	assert.ErrorIs(t, err, ErrNoFallbackVariant)
}

func TestFactory_BuildCopiesBaseFields(t *testing.T) {
	f := DefaultFactory()
	r := NewProductRecord(ProductBase{
		ID: "ps-5", Name: "PlayStation 5", InStock: true,
		Description: "<p>console</p>", Brand: "Sony", Category: "tech",
	})

	p := f.Build(r)
	assert.Equal(t, "ps-5", p.ID)
	assert.Equal(t, "PlayStation 5", p.Name)
	assert.True(t, p.InStock)
	assert.Equal(t, "Sony", p.Brand)
	assert.Equal(t, "tech", p.Category)
	assert.Equal(t, KindTech, p.Kind)
	assert.NotNil(t, p.Gallery)
	assert.NotNil(t, p.Prices)
	assert.NotNil(t, p.Attributes)
	assert.Empty(t, p.Gallery)
	assert.Empty(t, p.Prices)
}
