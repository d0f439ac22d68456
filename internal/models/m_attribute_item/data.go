package m_attribute_item

import "cloud.google.com/go/spanner"

// UpsertMutation writes one item. Empty strings are stored as NULL so the
// unique (set, value) index ignores items without a value.
func UpsertMutation(productID, setID string, position int64, displayValue, value string) *spanner.Mutation {
	return spanner.InsertOrUpdate(TableName,
		[]string{ColProductID, ColAttributeSetID, ColPosition, ColDisplayValue, ColValue},
		[]interface{}{productID, setID, position, nullable(displayValue), nullable(value)})
}

func nullable(s string) spanner.NullString {
	return spanner.NullString{StringVal: s, Valid: s != ""}
}
