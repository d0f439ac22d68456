package storefront

import (
	"github.com/graphql-go/graphql"

	catalog "github.com/murkotick/storefront-service/internal/app/catalog/domain"
)

func fromProduct(fn func(*catalog.Product) interface{}) graphql.FieldResolveFn {
	return func(rp graphql.ResolveParams) (interface{}, error) {
		if p, ok := rp.Source.(*catalog.Product); ok && p != nil {
			return fn(p), nil
		}
		return nil, nil
	}
}

func fromCategory(fn func(*catalog.Category) interface{}) graphql.FieldResolveFn {
	return func(rp graphql.ResolveParams) (interface{}, error) {
		if c, ok := rp.Source.(*catalog.Category); ok && c != nil {
			return fn(c), nil
		}
		return nil, nil
	}
}

func fromPrice(fn func(*catalog.Price) interface{}) graphql.FieldResolveFn {
	return func(rp graphql.ResolveParams) (interface{}, error) {
		if p, ok := rp.Source.(*catalog.Price); ok && p != nil && p.Amount != nil {
			return fn(p), nil
		}
		return nil, nil
	}
}

func fromSet(fn func(*catalog.AttributeSet) interface{}) graphql.FieldResolveFn {
	return func(rp graphql.ResolveParams) (interface{}, error) {
		if s, ok := rp.Source.(*catalog.AttributeSet); ok && s != nil {
			return fn(s), nil
		}
		return nil, nil
	}
}

func fromItem(fn func(*catalog.AttributeItem) interface{}) graphql.FieldResolveFn {
	return func(rp graphql.ResolveParams) (interface{}, error) {
		if i, ok := rp.Source.(*catalog.AttributeItem); ok && i != nil {
			return fn(i), nil
		}
		return nil, nil
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func pricePtrs(in []catalog.Price) []*catalog.Price {
	out := make([]*catalog.Price, len(in))
	for i := range in {
		out[i] = &in[i]
	}
	return out
}

func setPtrs(in []catalog.AttributeSet) []*catalog.AttributeSet {
	out := make([]*catalog.AttributeSet, len(in))
	for i := range in {
		out[i] = &in[i]
	}
	return out
}

func itemPtrs(in []catalog.AttributeItem) []*catalog.AttributeItem {
	out := make([]*catalog.AttributeItem, len(in))
	for i := range in {
		out[i] = &in[i]
	}
	return out
}

func categoryPtrs(in []catalog.Category) []*catalog.Category {
	out := make([]*catalog.Category, len(in))
	for i := range in {
		out[i] = &in[i]
	}
	return out
}
