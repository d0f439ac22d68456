package outbox

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/storefront-service/internal/pkg/clock"
	"github.com/murkotick/storefront-service/internal/pkg/committer"
	"github.com/murkotick/storefront-service/internal/pkg/logging"
)

type fakeSource struct {
	events []PendingEvent
	limits []int
	err    error
}

func (f *fakeSource) Pending(_ context.Context, limit int) ([]PendingEvent, error) {
	f.limits = append(f.limits, limit)
	if f.err != nil {
		return nil, f.err
	}
	if len(f.events) > limit {
		return f.events[:limit], nil
	}
	return f.events, nil
}

type fakePublisher struct {
	sent []Message
	err  error
}

func (f *fakePublisher) Publish(_ context.Context, msgs ...Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msgs...)
	return nil
}

func (f *fakePublisher) Close() error { return nil }

type fakeCommitter struct {
	plans []*committer.Plan
	err   error
}

func (f *fakeCommitter) Apply(_ context.Context, plan *committer.Plan) error {
	f.plans = append(f.plans, plan)
	return f.err
}

func newRelay(src *fakeSource, pub *fakePublisher, com *fakeCommitter) *Relay {
	return &Relay{
		Source:    src,
		Publisher: pub,
		Committer: com,
		Clock:     clock.NewFake(time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)),
		Logger:    logging.Discard(),
		BatchSize: 10,
		Interval:  time.Millisecond,
	}
}

func pending(ids ...string) []PendingEvent {
	out := make([]PendingEvent, 0, len(ids))
	for _, id := range ids {
		out = append(out, PendingEvent{
			EventID:     "evt-" + id,
			EventType:   "order.placed",
			AggregateID: "order-" + id,
			Payload:     `{"order_id":"order-` + id + `"}`,
		})
	}
	return out
}

func TestRelay_RunOnce_PublishesAndMarks(t *testing.T) {
	src := &fakeSource{events: pending("1", "2")}
	pub := &fakePublisher{}
	com := &fakeCommitter{}

	n, err := newRelay(src, pub, com).RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []int{10}, src.limits)

	require.Len(t, pub.sent, 2)
	assert.Equal(t, "order-1", pub.sent[0].Key)
	assert.Equal(t, "order.placed", pub.sent[0].EventType)
	assert.Equal(t, "evt-1", pub.sent[0].EventID)
	assert.JSONEq(t, `{"order_id":"order-1"}`, string(pub.sent[0].Value))

	require.Len(t, com.plans, 1)
	assert.Equal(t, 2, com.plans[0].Len())
}

func TestRelay_RunOnce_NothingPending(t *testing.T) {
	pub := &fakePublisher{}
	com := &fakeCommitter{}

	n, err := newRelay(&fakeSource{}, pub, com).RunOnce(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Empty(t, pub.sent)
	assert.Empty(t, com.plans)
}

func TestRelay_RunOnce_PublishFailureMarksNothing(t *testing.T) {
	pub := &fakePublisher{err: errors.New("broker down")}
	com := &fakeCommitter{}

	_, err := newRelay(&fakeSource{events: pending("1")}, pub, com).RunOnce(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broker down")
	assert.Empty(t, com.plans)
}

func TestRelay_RunOnce_MarkFailureIsReported(t *testing.T) {
	com := &fakeCommitter{err: errors.New("aborted")}

	_, err := newRelay(&fakeSource{events: pending("1")}, &fakePublisher{}, com).RunOnce(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mark published")
}

func TestRelay_RunOnce_SourceFailure(t *testing.T) {
	src := &fakeSource{err: errors.New("unavailable")}
	_, err := newRelay(src, &fakePublisher{}, &fakeCommitter{}).RunOnce(context.Background())
	require.Error(t, err)
}

func TestRelay_Run_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	src := &fakeSource{}
	r := newRelay(src, &fakePublisher{}, &fakeCommitter{})

	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("relay did not stop")
	}
}

func TestNewKafkaPublisher_Validates(t *testing.T) {
	_, err := NewKafkaPublisher(nil, "orders.placed")
	require.Error(t, err)

	_, err = NewKafkaPublisher([]string{"localhost:9092"}, "")
	require.Error(t, err)

	p, err := NewKafkaPublisher([]string{"localhost:9092"}, "orders.placed")
	require.NoError(t, err)
	assert.NoError(t, p.Publish(context.Background()))
	assert.NoError(t, p.Close())
}

func TestToKafka_KeysByAggregateAndCarriesHeaders(t *testing.T) {
	msgs := toKafka([]Message{{Key: "order-1", Value: []byte("{}"), EventType: "order.placed", EventID: "evt-1"}})
	require.Len(t, msgs, 1)
	assert.Equal(t, []byte("order-1"), msgs[0].Key)
	require.Len(t, msgs[0].Headers, 2)
	assert.Equal(t, "event_type", msgs[0].Headers[0].Key)
	assert.Equal(t, []byte("order.placed"), msgs[0].Headers[0].Value)
}
