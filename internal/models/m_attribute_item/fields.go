package m_attribute_item

const (
	TableName = "attribute_items"

	ColProductID      = "product_id"
	ColAttributeSetID = "attribute_set_id"
	ColPosition       = "position"
	ColDisplayValue   = "display_value"
	ColValue          = "value"
)
