package create_order

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/storefront-service/internal/app/order/domain"
	"github.com/murkotick/storefront-service/internal/app/order/repo"
	"github.com/murkotick/storefront-service/internal/pkg/clock"
	commitplan "github.com/murkotick/storefront-service/internal/pkg/committer"
	"github.com/murkotick/storefront-service/internal/pkg/logging"
	"github.com/murkotick/storefront-service/internal/pkg/money"
)

type recordingCommitter struct {
	plans []*commitplan.Plan
	err   error
}

func (c *recordingCommitter) Apply(_ context.Context, p *commitplan.Plan) error {
	c.plans = append(c.plans, p)
	return c.err
}

func newInteractor(cm *recordingCommitter) *Interactor {
	clk := clock.NewFake(time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC))
	return NewInteractor(repo.NewOrderRepo(), repo.NewOutboxRepo(), cm, clk, logging.Discard())
}

func sampleRequest() Request {
	return Request{
		Items: []Item{{
			ProductID:  "P1",
			Quantity:   2,
			Price:      money.FromFloat(19.99),
			Attributes: []domain.SelectedAttribute{{Name: "Size", Value: "M"}},
		}},
		Total: money.FromFloat(39.98),
	}
}

func TestExecute_CommitsHeaderItemsAndEventInOnePlan(t *testing.T) {
	cm := &recordingCommitter{}
	it := newInteractor(cm)

	req := sampleRequest()
	req.Items = append(req.Items, Item{ProductID: "P2", Quantity: 1, Price: money.FromFloat(5)})

	res := it.Execute(context.Background(), req)
	require.NoError(t, res.Err)
	assert.True(t, res.Success())
	assert.Equal(t, domain.StateCommitted, res.State)
	assert.NotEmpty(t, res.OrderID)

	require.Len(t, cm.plans, 1, "a single atomic commit")
	// header + 2 lines + outbox event
	assert.Equal(t, 4, cm.plans[0].Len())
}

func TestExecute_CommitFailureRollsBack(t *testing.T) {
	cm := &recordingCommitter{err: errors.New("spanner: constraint violation")}
	it := newInteractor(cm)

	res := it.Execute(context.Background(), sampleRequest())
	assert.False(t, res.Success())
	assert.Equal(t, domain.StateRolledBack, res.State)
	assert.Empty(t, res.OrderID)
	assert.EqualError(t, res.Err, "spanner: constraint violation")
	assert.Len(t, cm.plans, 1, "no retries")
}

func TestExecute_TransitionsLogNothingOnTheHappyPaths(t *testing.T) {
	var logs bytes.Buffer
	clk := clock.NewFake(time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC))
	ok := NewInteractor(repo.NewOrderRepo(), repo.NewOutboxRepo(), &recordingCommitter{}, clk,
		logging.NewWithWriter(&logs, "debug", "text"))
	failing := NewInteractor(repo.NewOrderRepo(), repo.NewOutboxRepo(),
		&recordingCommitter{err: errors.New("spanner: aborted")}, clk,
		logging.NewWithWriter(&logs, "debug", "text"))

	assert.Equal(t, domain.StateCommitted, ok.Execute(context.Background(), sampleRequest()).State)
	assert.Equal(t, domain.StateRolledBack, failing.Execute(context.Background(), sampleRequest()).State)
	assert.NotContains(t, logs.String(), "order state transition failed")
}

func TestAdvance_LogsRefusedTransition(t *testing.T) {
	var logs bytes.Buffer
	it := NewInteractor(repo.NewOrderRepo(), repo.NewOutboxRepo(), &recordingCommitter{},
		clock.NewFake(time.Now()), logging.NewWithWriter(&logs, "info", "text"))

	order, err := domain.NewOrder("o-1", money.FromFloat(1), []domain.OrderItem{
		{ProductID: "P1", Quantity: 1, Price: money.FromFloat(1)},
	}, time.Now())
	require.NoError(t, err)

	it.advance(context.Background(), order, order.MarkCommitted)
	assert.Empty(t, logs.String())

	it.advance(context.Background(), order, order.MarkRolledBack)
	assert.Contains(t, logs.String(), "order state transition failed")
	assert.Contains(t, logs.String(), "order_id=o-1")
	assert.Equal(t, domain.StateCommitted, order.State())
}

func TestExecute_ValidationRejectsWithoutTransaction(t *testing.T) {
	cm := &recordingCommitter{}
	it := newInteractor(cm)

	req := sampleRequest()
	req.Items[0].Quantity = 0

	res := it.Execute(context.Background(), req)
	assert.False(t, res.Success())
	assert.Equal(t, domain.StateRejected, res.State)
	assert.ErrorIs(t, res.Err, domain.ErrInvalidQuantity)
	assert.Empty(t, cm.plans)
}

func TestExecute_EmptyOrderRejected(t *testing.T) {
	cm := &recordingCommitter{}
	res := newInteractor(cm).Execute(context.Background(), Request{Total: money.Zero()})
	assert.ErrorIs(t, res.Err, domain.ErrNoItems)
	assert.Empty(t, cm.plans)
}

func TestExecute_NotIdempotent(t *testing.T) {
	cm := &recordingCommitter{}
	it := newInteractor(cm)

	first := it.Execute(context.Background(), sampleRequest())
	second := it.Execute(context.Background(), sampleRequest())

	require.True(t, first.Success())
	require.True(t, second.Success())
	assert.NotEqual(t, first.OrderID, second.OrderID)
	assert.Len(t, cm.plans, 2)
}
