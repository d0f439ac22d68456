package storefront

import (
	"errors"
	"fmt"

	orderdomain "github.com/murkotick/storefront-service/internal/app/order/domain"
	"github.com/murkotick/storefront-service/internal/app/order/usecases/create_order"
	"github.com/murkotick/storefront-service/internal/pkg/money"
)

var errNoProducts = errors.New("products must not be empty")

// parseOrderArgs turns coerced mutation arguments into a use-case request.
// Business validation stays in the order domain.
func parseOrderArgs(args map[string]interface{}) (create_order.Request, error) {
	rawItems, _ := args["products"].([]interface{})
	if len(rawItems) == 0 {
		return create_order.Request{}, errNoProducts
	}

	total, err := floatArg(args["total"], "total")
	if err != nil {
		return create_order.Request{}, err
	}

	items := make([]create_order.Item, 0, len(rawItems))
	for i, raw := range rawItems {
		m, ok := raw.(map[string]interface{})
		if !ok {
			return create_order.Request{}, fmt.Errorf("products[%d]: invalid input", i)
		}
		item, err := parseItem(m)
		if err != nil {
			return create_order.Request{}, fmt.Errorf("products[%d]: %w", i, err)
		}
		items = append(items, item)
	}

	return create_order.Request{Items: items, Total: total}, nil
}

func parseItem(m map[string]interface{}) (create_order.Item, error) {
	productID, _ := m["productId"].(string)

	qty, ok := m["quantity"].(int)
	if !ok {
		return create_order.Item{}, errors.New("quantity must be an integer")
	}

	price, err := floatArg(m["price"], "price")
	if err != nil {
		return create_order.Item{}, err
	}

	var attrs []orderdomain.SelectedAttribute
	if raw, ok := m["attributes"].([]interface{}); ok {
		attrs = make([]orderdomain.SelectedAttribute, 0, len(raw))
		for _, a := range raw {
			am, ok := a.(map[string]interface{})
			if !ok {
				continue
			}
			name, _ := am["name"].(string)
			value, _ := am["value"].(string)
			attrs = append(attrs, orderdomain.SelectedAttribute{Name: name, Value: value})
		}
	}

	return create_order.Item{
		ProductID:  productID,
		Quantity:   int64(qty),
		Price:      price,
		Attributes: attrs,
	}, nil
}

func floatArg(v interface{}, name string) (*money.Money, error) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case int:
		f = float64(n)
	default:
		return nil, fmt.Errorf("%s is required", name)
	}
	return money.FromFloat(f), nil
}
