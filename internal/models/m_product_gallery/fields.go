package m_product_gallery

const (
	TableName = "product_gallery"

	ColProductID = "product_id"
	ColPosition  = "position"
	ColURL       = "url"
)
