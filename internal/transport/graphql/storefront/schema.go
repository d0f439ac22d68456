package storefront

import (
	"context"
	"errors"
	"log/slog"

	"github.com/graphql-go/graphql"

	catalog "github.com/murkotick/storefront-service/internal/app/catalog/domain"
	orderdomain "github.com/murkotick/storefront-service/internal/app/order/domain"
	"github.com/murkotick/storefront-service/internal/app/order/usecases/create_order"
)

const (
	msgOrderPlaced = "Order placed successfully!"
	msgOrderFailed = "Failed to place order."
)

// CategoryReader serves the category queries.
type CategoryReader interface {
	ListCategories(ctx context.Context) ([]catalog.Category, error)
	GetCategoryByName(ctx context.Context, name string) (*catalog.Category, error)
}

// ProductReader serves the product query.
type ProductReader interface {
	FindByID(ctx context.Context, id string) (*catalog.Product, error)
}

// OrderPlacer runs the createOrder use case.
type OrderPlacer interface {
	Execute(ctx context.Context, req create_order.Request) create_order.Result
}

// Deps wires the schema to the application layer.
type Deps struct {
	Categories      CategoryReader
	Products        ProductReader
	Orders          OrderPlacer
	DefaultCurrency string
	Logger          *slog.Logger
}

type resolvers struct {
	deps Deps
	log  *slog.Logger
}

// NewSchema builds the storefront schema.
func NewSchema(deps Deps) (graphql.Schema, error) {
	if deps.Categories == nil || deps.Products == nil || deps.Orders == nil {
		return graphql.Schema{}, errors.New("storefront: categories, products and orders are required")
	}
	if deps.DefaultCurrency == "" {
		deps.DefaultCurrency = "USD"
	}
	log := deps.Logger
	if log == nil {
		log = slog.Default()
	}
	r := &resolvers{deps: deps, log: log}
	o := buildObjects(deps.DefaultCurrency)

	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"categories": &graphql.Field{
				Type:    graphql.NewList(o.category),
				Resolve: r.categories,
			},
			"category": &graphql.Field{
				Type: o.category,
				Args: graphql.FieldConfigArgument{
					"title": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.category,
			},
			"product": &graphql.Field{
				Type: o.product,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.product,
			},
		},
	})

	orderArgs := graphql.FieldConfigArgument{
		"products": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(o.productInput)))},
		"total":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Float)},
	}
	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"createOrder": &graphql.Field{Type: o.orderResult, Args: orderArgs, Resolve: r.createOrder},
			"placeOrder":  &graphql.Field{Type: o.orderResult, Args: orderArgs, Resolve: r.createOrder},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{Query: query, Mutation: mutation})
}

func (r *resolvers) categories(p graphql.ResolveParams) (interface{}, error) {
	cats, err := r.deps.Categories.ListCategories(p.Context)
	if err != nil {
		r.log.ErrorContext(p.Context, "list categories", "error", err)
		return nil, mapError(p.Context, err)
	}
	return categoryPtrs(cats), nil
}

func (r *resolvers) category(p graphql.ResolveParams) (interface{}, error) {
	title, _ := p.Args["title"].(string)
	cat, err := r.deps.Categories.GetCategoryByName(p.Context, title)
	if err != nil {
		r.log.ErrorContext(p.Context, "get category", "category", title, "error", err)
		return nil, mapError(p.Context, err)
	}
	return cat, nil
}

// product answers null together with a NOT_FOUND error for unknown ids.
func (r *resolvers) product(p graphql.ResolveParams) (interface{}, error) {
	id, _ := p.Args["id"].(string)
	prod, err := r.deps.Products.FindByID(p.Context, id)
	if err != nil {
		r.log.ErrorContext(p.Context, "find product", "product_id", id, "error", err)
		return nil, mapError(p.Context, err)
	}
	if prod == nil {
		return nil, notFound("product", id)
	}
	return prod, nil
}

func (r *resolvers) createOrder(p graphql.ResolveParams) (interface{}, error) {
	req, err := parseOrderArgs(p.Args)
	if err != nil {
		return orderPayload(false, err.Error(), ""), nil
	}

	res := r.deps.Orders.Execute(p.Context, req)
	switch {
	case res.Success():
		return orderPayload(true, msgOrderPlaced, res.OrderID), nil
	case res.State == orderdomain.StateRejected && res.Err != nil:
		return orderPayload(false, res.Err.Error(), ""), nil
	default:
		return orderPayload(false, msgOrderFailed, ""), nil
	}
}

func orderPayload(success bool, message, orderID string) map[string]interface{} {
	out := map[string]interface{}{
		"success": success,
		"message": message,
		"orderId": nil,
	}
	if orderID != "" {
		out["orderId"] = orderID
	}
	return out
}
