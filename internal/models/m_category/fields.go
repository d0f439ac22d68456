package m_category

const (
	TableName = "categories"

	ColName = "name"
)
