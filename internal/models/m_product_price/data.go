package m_product_price

import (
	"math/big"

	"cloud.google.com/go/spanner"
)

func UpsertMutation(productID string, position int64, amount *big.Rat, label, symbol string) *spanner.Mutation {
	return spanner.InsertOrUpdate(TableName,
		[]string{ColProductID, ColPosition, ColAmount, ColCurrencyLabel, ColCurrencySymbol},
		[]interface{}{productID, position, amount, label, symbol})
}
