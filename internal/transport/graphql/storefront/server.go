package storefront

import (
	"context"

	"github.com/graphql-go/graphql"
)

// Request is a decoded GraphQL HTTP body.
type Request struct {
	Query         string                 `json:"query"`
	Variables     map[string]interface{} `json:"variables"`
	OperationName string                 `json:"operationName"`
}

// Outcome summarizes an execution for the transport.
type Outcome struct {
	// Unavailable is set when a resolver could not reach the database.
	Unavailable bool
}

// Executor runs requests against a built schema.
type Executor struct {
	schema graphql.Schema
}

func NewExecutor(schema graphql.Schema) *Executor {
	return &Executor{schema: schema}
}

func (e *Executor) Do(ctx context.Context, req Request) (*graphql.Result, Outcome) {
	ctx, st := withState(ctx)
	res := graphql.Do(graphql.Params{
		Schema:         e.schema,
		RequestString:  req.Query,
		VariableValues: req.Variables,
		OperationName:  req.OperationName,
		Context:        ctx,
	})
	return res, Outcome{Unavailable: st.isUnavailable()}
}
