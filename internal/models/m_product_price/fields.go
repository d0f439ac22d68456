package m_product_price

const (
	TableName = "product_prices"

	ColProductID      = "product_id"
	ColPosition       = "position"
	ColAmount         = "amount"
	ColCurrencyLabel  = "currency_label"
	ColCurrencySymbol = "currency_symbol"
)
