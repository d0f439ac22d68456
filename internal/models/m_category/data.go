package m_category

import "cloud.google.com/go/spanner"

func UpsertMutation(name string) *spanner.Mutation {
	return spanner.InsertOrUpdate(TableName, []string{ColName}, []interface{}{name})
}
