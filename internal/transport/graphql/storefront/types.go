package storefront

import (
	"github.com/graphql-go/graphql"

	catalog "github.com/murkotick/storefront-service/internal/app/catalog/domain"
)

// objects holds the output types of one schema.
type objects struct {
	attributeItem *graphql.Object
	attributeSet  *graphql.Object
	price         *graphql.Object
	product       *graphql.Object
	category      *graphql.Object
	orderResult   *graphql.Object
	productInput  *graphql.InputObject
}

func buildObjects(defaultCurrency string) *objects {
	o := &objects{}

	o.attributeItem = graphql.NewObject(graphql.ObjectConfig{
		Name: "AttributeItem",
		Fields: graphql.Fields{
			"display_value": &graphql.Field{Type: graphql.String, Resolve: fromItem(func(i *catalog.AttributeItem) interface{} { return i.DisplayValue })},
			"value":         &graphql.Field{Type: graphql.String, Resolve: fromItem(func(i *catalog.AttributeItem) interface{} { return i.Value })},
		},
	})

	o.attributeSet = graphql.NewObject(graphql.ObjectConfig{
		Name: "AttributeSet",
		Fields: graphql.Fields{
			"id":    &graphql.Field{Type: graphql.String, Resolve: fromSet(func(s *catalog.AttributeSet) interface{} { return s.ID })},
			"name":  &graphql.Field{Type: graphql.String, Resolve: fromSet(func(s *catalog.AttributeSet) interface{} { return s.Name })},
			"type":  &graphql.Field{Type: graphql.String, Resolve: fromSet(func(s *catalog.AttributeSet) interface{} { return s.Type })},
			"items": &graphql.Field{Type: graphql.NewList(o.attributeItem), Resolve: fromSet(func(s *catalog.AttributeSet) interface{} { return itemPtrs(s.Items) })},
		},
	})

	o.price = graphql.NewObject(graphql.ObjectConfig{
		Name: "Price",
		Fields: graphql.Fields{
			"amount":          &graphql.Field{Type: graphql.Float, Resolve: fromPrice(func(p *catalog.Price) interface{} { return p.Amount.Float64() })},
			"currency_label":  &graphql.Field{Type: graphql.String, Resolve: fromPrice(func(p *catalog.Price) interface{} { return p.CurrencyLabel })},
			"currency_symbol": &graphql.Field{Type: graphql.String, Resolve: fromPrice(func(p *catalog.Price) interface{} { return p.CurrencySymbol })},
		},
	})

	o.product = graphql.NewObject(graphql.ObjectConfig{
		Name: "Product",
		Fields: graphql.Fields{
			"id":          &graphql.Field{Type: graphql.NewNonNull(graphql.String), Resolve: fromProduct(func(p *catalog.Product) interface{} { return p.ID })},
			"name":        &graphql.Field{Type: graphql.String, Resolve: fromProduct(func(p *catalog.Product) interface{} { return p.Name })},
			"in_stock":    &graphql.Field{Type: graphql.Boolean, Resolve: fromProduct(func(p *catalog.Product) interface{} { return p.InStock })},
			"gallery":     &graphql.Field{Type: graphql.NewList(graphql.String), Resolve: fromProduct(func(p *catalog.Product) interface{} { return nonNil(p.Gallery) })},
			"description": &graphql.Field{Type: graphql.String, Resolve: fromProduct(func(p *catalog.Product) interface{} { return p.Description })},
			"brand":       &graphql.Field{Type: graphql.String, Resolve: fromProduct(func(p *catalog.Product) interface{} { return p.Brand })},
			"category":    &graphql.Field{Type: graphql.String, Resolve: fromProduct(func(p *catalog.Product) interface{} { return p.Category })},
			"attributes":  &graphql.Field{Type: graphql.NewList(o.attributeSet), Resolve: fromProduct(func(p *catalog.Product) interface{} { return setPtrs(p.Attributes) })},
			"prices":      &graphql.Field{Type: graphql.NewList(o.price), Resolve: fromProduct(func(p *catalog.Product) interface{} { return pricePtrs(p.Prices) })},
			"price": &graphql.Field{
				Type:        o.price,
				Description: "The price in the given currency, else the default currency, else the first price.",
				Args: graphql.FieldConfigArgument{
					"currency": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(rp graphql.ResolveParams) (interface{}, error) {
					p, ok := rp.Source.(*catalog.Product)
					if !ok {
						return nil, nil
					}
					currency, _ := rp.Args["currency"].(string)
					if price := p.PriceFor(currency, defaultCurrency); price != nil {
						return price, nil
					}
					return nil, nil
				},
			},
		},
	})

	o.category = graphql.NewObject(graphql.ObjectConfig{
		Name: "Category",
		Fields: graphql.Fields{
			"name": &graphql.Field{Type: graphql.String, Resolve: fromCategory(func(c *catalog.Category) interface{} { return c.Name })},
			"products": &graphql.Field{Type: graphql.NewList(o.product), Resolve: fromCategory(func(c *catalog.Category) interface{} {
				if c.Products == nil {
					return []*catalog.Product{}
				}
				return c.Products
			})},
		},
	})

	o.orderResult = graphql.NewObject(graphql.ObjectConfig{
		Name: "OrderResult",
		Fields: graphql.Fields{
			"success": &graphql.Field{Type: graphql.Boolean},
			"message": &graphql.Field{Type: graphql.String},
			"orderId": &graphql.Field{Type: graphql.String},
		},
	})

	attributeInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "AttributeInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"name":  &graphql.InputObjectFieldConfig{Type: graphql.String},
			"value": &graphql.InputObjectFieldConfig{Type: graphql.String},
		},
	})

	o.productInput = graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "ProductInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"productId":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"quantity":   &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
			"price":      &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Float)},
			"attributes": &graphql.InputObjectFieldConfig{Type: graphql.NewList(attributeInput)},
		},
	})

	return o
}
