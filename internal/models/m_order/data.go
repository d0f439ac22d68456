package m_order

import (
	"math/big"
	"time"

	"cloud.google.com/go/spanner"
)

// BuildInsertMap constructs the column map of an order header row.
func BuildInsertMap(orderID string, total *big.Rat, createdAt time.Time) map[string]interface{} {
	return map[string]interface{}{
		ColOrderID:     orderID,
		ColTotalAmount: total,
		ColCreatedAt:   createdAt,
	}
}

func InsertMutation(values map[string]interface{}) *spanner.Mutation {
	return spanner.InsertMap(TableName, values)
}
