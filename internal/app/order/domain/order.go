package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/murkotick/storefront-service/internal/pkg/money"
)

// TxState tracks an order through its placement transaction.
type TxState string

const (
	// StateRejected: validation failed, no transaction was opened.
	StateRejected   TxState = "rejected"
	StatePending    TxState = "pending"
	StateCommitted  TxState = "committed"
	StateRolledBack TxState = "rolled_back"
)

// SelectedAttribute is one attribute choice the buyer made, e.g. Size=M.
type SelectedAttribute struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// OrderItem is one order line. Price is the unit price the client submitted,
// recorded as-is so later catalog price changes do not alter the order.
type OrderItem struct {
	ProductID  string
	Quantity   int64
	Price      *money.Money
	Attributes []SelectedAttribute
}

// AttributesJSON serializes the selected attributes as
// [{"name":"Size","value":"M"}], or [] when there are none.
func (i OrderItem) AttributesJSON() (string, error) {
	attrs := i.Attributes
	if attrs == nil {
		attrs = []SelectedAttribute{}
	}
	b, err := json.Marshal(attrs)
	if err != nil {
		return "", fmt.Errorf("marshal attributes of %q: %w", i.ProductID, err)
	}
	return string(b), nil
}

func (i OrderItem) validate() error {
	if strings.TrimSpace(i.ProductID) == "" {
		return ErrEmptyProductID
	}
	if i.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	if i.Price == nil {
		return ErrMissingPrice
	}
	if i.Price.IsNegative() {
		return ErrNegativePrice
	}
	return nil
}

// Order is the aggregate written by the placement transaction.
type Order struct {
	id        string
	total     *money.Money
	items     []OrderItem
	createdAt time.Time
	state     TxState
}

// NewOrder validates the submission and returns a Pending order.
func NewOrder(id string, total *money.Money, items []OrderItem, now time.Time) (*Order, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrEmptyOrderID
	}
	if total == nil {
		return nil, ErrMissingTotal
	}
	if total.IsNegative() {
		return nil, ErrNegativeTotal
	}
	if len(items) == 0 {
		return nil, ErrNoItems
	}
	for n, it := range items {
		if err := it.validate(); err != nil {
			return nil, fmt.Errorf("item %d: %w", n+1, err)
		}
	}

	copied := make([]OrderItem, len(items))
	copy(copied, items)
	return &Order{
		id:        id,
		total:     total,
		items:     copied,
		createdAt: now.UTC(),
		state:     StatePending,
	}, nil
}

func (o *Order) ID() string           { return o.id }
func (o *Order) Total() *money.Money  { return o.total }
func (o *Order) Items() []OrderItem   { return o.items }
func (o *Order) CreatedAt() time.Time { return o.createdAt }
func (o *Order) State() TxState       { return o.state }

// ItemsTotal sums price * quantity over every line. Informational only: the
// submitted total is what gets stored.
func (o *Order) ItemsTotal() *money.Money {
	sum := money.Zero()
	for _, it := range o.items {
		sum = sum.Add(it.Price.MultiplyInt(it.Quantity))
	}
	return sum
}

func (o *Order) MarkCommitted() error {
	return o.transition(StateCommitted)
}

func (o *Order) MarkRolledBack() error {
	return o.transition(StateRolledBack)
}

func (o *Order) transition(to TxState) error {
	if o.state != StatePending {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, o.state, to)
	}
	o.state = to
	return nil
}
