package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/murkotick/storefront-service/internal/app/order/domain"
)

// OrderPlacedType is the outbox event type written with every placed order.
const OrderPlacedType = "order.placed"

// OrderPlaced is the integration event consumers receive. Amounts are
// decimal strings so no precision is lost in transit.
type OrderPlaced struct {
	OrderID     string            `json:"order_id"`
	TotalAmount string            `json:"total_amount"`
	Items       []OrderPlacedItem `json:"items"`
	PlacedAt    time.Time         `json:"placed_at"`
}

type OrderPlacedItem struct {
	ProductID       string                     `json:"product_id"`
	Quantity        int64                      `json:"quantity"`
	PriceAtPurchase string                     `json:"price_at_purchase"`
	Attributes      []domain.SelectedAttribute `json:"attributes"`
}

// NewOrderPlaced snapshots o.
func NewOrderPlaced(o *domain.Order) OrderPlaced {
	ev := OrderPlaced{
		OrderID:     o.ID(),
		TotalAmount: o.Total().Decimal().String(),
		Items:       make([]OrderPlacedItem, 0, len(o.Items())),
		PlacedAt:    o.CreatedAt(),
	}
	for _, it := range o.Items() {
		attrs := it.Attributes
		if attrs == nil {
			attrs = []domain.SelectedAttribute{}
		}
		ev.Items = append(ev.Items, OrderPlacedItem{
			ProductID:       it.ProductID,
			Quantity:        it.Quantity,
			PriceAtPurchase: it.Price.Decimal().String(),
			Attributes:      attrs,
		})
	}
	return ev
}

func MarshalPayload(ev OrderPlaced) (string, error) {
	b, err := json.Marshal(ev)
	if err != nil {
		return "", fmt.Errorf("marshal %s payload for %s: %w", OrderPlacedType, ev.OrderID, err)
	}
	return string(b), nil
}
