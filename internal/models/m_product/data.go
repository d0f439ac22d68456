package m_product

import "cloud.google.com/go/spanner"

// BuildUpsertMap constructs the column map of a product row. Empty
// description and brand are stored as NULL.
func BuildUpsertMap(productID, name string, inStock bool, description, brand, category string) map[string]interface{} {
	return map[string]interface{}{
		ColProductID:   productID,
		ColName:        name,
		ColInStock:     inStock,
		ColDescription: nullable(description),
		ColBrand:       nullable(brand),
		ColCategory:    category,
	}
}

func UpsertMutation(values map[string]interface{}) *spanner.Mutation {
	return spanner.InsertOrUpdateMap(TableName, values)
}

// DeleteMutation removes a product; interleaved gallery, prices and
// attributes cascade.
func DeleteMutation(productID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{productID})
}

func nullable(s string) spanner.NullString {
	return spanner.NullString{StringVal: s, Valid: s != ""}
}
