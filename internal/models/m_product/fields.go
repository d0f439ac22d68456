package m_product

const (
	TableName = "products"

	ColProductID   = "product_id"
	ColName        = "name"
	ColInStock     = "in_stock"
	ColDescription = "description"
	ColBrand       = "brand"
	ColCategory    = "category"
)
