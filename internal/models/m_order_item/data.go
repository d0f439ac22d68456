package m_order_item

import (
	"math/big"

	"cloud.google.com/go/spanner"
)

// BuildInsertMap constructs the column map of one order line.
func BuildInsertMap(orderID string, lineNo int64, productID string, quantity int64, price *big.Rat, attributesJSON string) map[string]interface{} {
	return map[string]interface{}{
		ColOrderID:         orderID,
		ColLineNo:          lineNo,
		ColProductID:       productID,
		ColQuantity:        quantity,
		ColPriceAtPurchase: price,
		ColAttributesJSON:  attributesJSON,
	}
}

func InsertMutation(values map[string]interface{}) *spanner.Mutation {
	return spanner.InsertMap(TableName, values)
}
