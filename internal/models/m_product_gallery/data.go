package m_product_gallery

import "cloud.google.com/go/spanner"

func UpsertMutation(productID string, position int64, url string) *spanner.Mutation {
	return spanner.InsertOrUpdate(TableName,
		[]string{ColProductID, ColPosition, ColURL},
		[]interface{}{productID, position, url})
}
