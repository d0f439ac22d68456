package get_product

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/storefront-service/internal/app/catalog/domain"
)

type fakeReadModel struct {
	products map[string]*domain.Product
}

func (f *fakeReadModel) GetProduct(_ context.Context, id string) (*domain.Product, error) {
	return f.products[id], nil
}

func (f *fakeReadModel) ListProducts(context.Context, string) ([]*domain.Product, error) {
	return nil, nil
}

func (f *fakeReadModel) ListCategories(context.Context) ([]domain.Category, error) {
	return nil, nil
}

func TestHandler_UnknownIDIsNilWithoutError(t *testing.T) {
	h := NewHandler(&fakeReadModel{})
	p, err := h.Execute(context.Background(), "does-not-exist")
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestHandler_Found(t *testing.T) {
	h := NewHandler(&fakeReadModel{products: map[string]*domain.Product{"ps-5": {ID: "ps-5"}}})
	p, err := h.Execute(context.Background(), "ps-5")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "ps-5", p.ID)
}

func TestHandler_BlankID(t *testing.T) {
	_, err := NewHandler(&fakeReadModel{}).Execute(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrEmptyProductID)
}
