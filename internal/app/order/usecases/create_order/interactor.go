package create_order

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/murkotick/storefront-service/internal/app/order/contracts"
	"github.com/murkotick/storefront-service/internal/app/order/domain"
	"github.com/murkotick/storefront-service/internal/app/order/events"
	"github.com/murkotick/storefront-service/internal/pkg/clock"
	commitplan "github.com/murkotick/storefront-service/internal/pkg/committer"
	"github.com/murkotick/storefront-service/internal/pkg/money"
)

// Item is one submitted order line.
type Item struct {
	ProductID  string
	Quantity   int64
	Price      *money.Money
	Attributes []domain.SelectedAttribute
}

// Request is the application-level place-order request.
type Request struct {
	Items []Item
	Total *money.Money
}

// Result reports the outcome. Err is set whenever State is not Committed.
type Result struct {
	OrderID string
	State   domain.TxState
	Err     error
}

func (r Result) Success() bool {
	return r.State == domain.StateCommitted
}

// Interactor places orders. The header row, every line and the
// order.placed outbox event are written in one commit.
type Interactor struct {
	OrderRepo  contracts.OrderRepo
	OutboxRepo contracts.OutboxRepo
	Committer  contracts.Committer
	Clock      clock.Clock
	Logger     *slog.Logger

	newID func() string
}

func NewInteractor(orderRepo contracts.OrderRepo, outboxRepo contracts.OutboxRepo, committer contracts.Committer, clk clock.Clock, logger *slog.Logger) *Interactor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Interactor{
		OrderRepo:  orderRepo,
		OutboxRepo: outboxRepo,
		Committer:  committer,
		Clock:      clk,
		Logger:     logger,
		newID:      func() string { return uuid.New().String() },
	}
}

// Execute never retries and carries no idempotency key: two identical
// requests place two orders.
func (it *Interactor) Execute(ctx context.Context, req Request) Result {
	now := it.Clock.Now()

	// 1. Build and validate the aggregate
	items := make([]domain.OrderItem, 0, len(req.Items))
	for _, in := range req.Items {
		items = append(items, domain.OrderItem{
			ProductID:  in.ProductID,
			Quantity:   in.Quantity,
			Price:      in.Price,
			Attributes: in.Attributes,
		})
	}
	order, err := domain.NewOrder(it.newID(), req.Total, items, now)
	if err != nil {
		it.Logger.InfoContext(ctx, "order rejected", "error", err)
		return Result{State: domain.StateRejected, Err: err}
	}

	if it.Logger.Enabled(ctx, slog.LevelDebug) && !order.ItemsTotal().Equals(order.Total()) {
		it.Logger.DebugContext(ctx, "submitted total differs from line sum",
			"order_id", order.ID(), "total", order.Total().String(), "line_sum", order.ItemsTotal().String())
	}

	// 2. Build commit plan
	plan, err := it.buildPlan(order, now)
	if err != nil {
		return it.rollback(ctx, order, err)
	}

	// 3. Apply atomically
	if err := it.Committer.Apply(ctx, plan); err != nil {
		return it.rollback(ctx, order, err)
	}

	// The rows are durable from here on, so the result reports the commit
	// even if the aggregate refuses the transition.
	it.advance(ctx, order, order.MarkCommitted)
	it.Logger.InfoContext(ctx, "order placed",
		"order_id", order.ID(), "items", len(order.Items()), "total", order.Total().String())
	return Result{OrderID: order.ID(), State: domain.StateCommitted}
}

func (it *Interactor) buildPlan(order *domain.Order, now time.Time) (*commitplan.Plan, error) {
	plan := commitplan.NewPlan()
	plan.Add(it.OrderRepo.InsertMut(order))

	itemMuts, err := it.OrderRepo.InsertItemMuts(order)
	if err != nil {
		return nil, err
	}
	plan.AddAll(itemMuts...)

	payload, err := events.MarshalPayload(events.NewOrderPlaced(order))
	if err != nil {
		return nil, err
	}
	plan.Add(it.OutboxRepo.InsertMut(&contracts.OutboxEvent{
		EventID:      it.newID(),
		EventType:    events.OrderPlacedType,
		AggregateID:  order.ID(),
		PayloadJSON:  payload,
		Status:       "pending",
		CreatedAtUTC: now,
	}))
	return plan, nil
}

func (it *Interactor) rollback(ctx context.Context, order *domain.Order, cause error) Result {
	it.advance(ctx, order, order.MarkRolledBack)
	it.Logger.ErrorContext(ctx, "order transaction rolled back", "order_id", order.ID(), "error", cause)
	return Result{State: domain.StateRolledBack, Err: cause}
}

// advance applies one state transition; a refused transition is logged.
func (it *Interactor) advance(ctx context.Context, order *domain.Order, mark func() error) {
	if err := mark(); err != nil {
		it.Logger.ErrorContext(ctx, "order state transition failed",
			"order_id", order.ID(), "state", string(order.State()), "error", err)
	}
}
