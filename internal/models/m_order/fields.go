package m_order

const (
	TableName = "orders"

	ColOrderID     = "order_id"
	ColTotalAmount = "total_amount"
	ColCreatedAt   = "created_at"
)
