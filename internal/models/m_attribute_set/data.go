package m_attribute_set

import "cloud.google.com/go/spanner"

func UpsertMutation(productID, setID string, position int64, name, typ string) *spanner.Mutation {
	return spanner.InsertOrUpdate(TableName,
		[]string{ColProductID, ColAttributeSetID, ColPosition, ColName, ColType},
		[]interface{}{productID, setID, position, name, typ})
}
