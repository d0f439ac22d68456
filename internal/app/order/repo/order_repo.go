package repo

import (
	"cloud.google.com/go/spanner"

	"github.com/murkotick/storefront-service/internal/app/order/domain"
	"github.com/murkotick/storefront-service/internal/models/m_order"
	"github.com/murkotick/storefront-service/internal/models/m_order_item"
)

// OrderRepo is the Spanner implementation of contracts.OrderRepo.
type OrderRepo struct{}

func NewOrderRepo() *OrderRepo {
	return &OrderRepo{}
}

func buildOrderValues(o *domain.Order) map[string]interface{} {
	return m_order.BuildInsertMap(o.ID(), o.Total().Rat(), o.CreatedAt().UTC())
}

// buildItemValues returns the column maps of every line, numbered from 1.
func buildItemValues(o *domain.Order) ([]map[string]interface{}, error) {
	out := make([]map[string]interface{}, 0, len(o.Items()))
	for i, it := range o.Items() {
		attrs, err := it.AttributesJSON()
		if err != nil {
			return nil, err
		}
		out = append(out, m_order_item.BuildInsertMap(
			o.ID(), int64(i+1), it.ProductID, it.Quantity, it.Price.Rat(), attrs,
		))
	}
	return out, nil
}

func (r *OrderRepo) InsertMut(o *domain.Order) *spanner.Mutation {
	if o == nil {
		return nil
	}
	return m_order.InsertMutation(buildOrderValues(o))
}

func (r *OrderRepo) InsertItemMuts(o *domain.Order) ([]*spanner.Mutation, error) {
	if o == nil {
		return nil, nil
	}
	values, err := buildItemValues(o)
	if err != nil {
		return nil, err
	}
	muts := make([]*spanner.Mutation, 0, len(values))
	for _, v := range values {
		muts = append(muts, m_order_item.InsertMutation(v))
	}
	return muts, nil
}
