package m_attribute_set

const (
	TableName = "attribute_sets"

	ColProductID      = "product_id"
	ColAttributeSetID = "attribute_set_id"
	ColPosition       = "position"
	ColName           = "name"
	ColType           = "type"
)
