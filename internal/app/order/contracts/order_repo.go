package contracts

import (
	"cloud.google.com/go/spanner"

	"github.com/murkotick/storefront-service/internal/app/order/domain"
)

// OrderRepo is the write-side repository for orders. Methods return
// mutations; they never apply them.
type OrderRepo interface {
	InsertMut(o *domain.Order) *spanner.Mutation
	// InsertItemMuts returns one mutation per order line.
	InsertItemMuts(o *domain.Order) ([]*spanner.Mutation, error)
}
