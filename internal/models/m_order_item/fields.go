package m_order_item

// order_items is interleaved in orders; (order_id, line_no) is the key.
const (
	TableName = "order_items"

	ColOrderID         = "order_id"
	ColLineNo          = "line_no"
	ColProductID       = "product_id"
	ColQuantity        = "quantity"
	ColPriceAtPurchase = "price_at_purchase"
	ColAttributesJSON  = "attributes_json"
)
