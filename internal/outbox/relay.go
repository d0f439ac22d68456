package outbox

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/murkotick/storefront-service/internal/models/m_outbox"
	"github.com/murkotick/storefront-service/internal/pkg/clock"
	"github.com/murkotick/storefront-service/internal/pkg/committer"
)

// Committer applies the status updates of a delivered batch.
type Committer interface {
	Apply(ctx context.Context, plan *committer.Plan) error
}

// Relay moves pending outbox events to the broker. Delivery is at least once:
// a batch is marked published only after the broker acknowledged all of it.
type Relay struct {
	Source    Source
	Publisher Publisher
	Committer Committer
	Clock     clock.Clock
	Logger    *slog.Logger
	BatchSize int
	Interval  time.Duration
}

// RunOnce relays a single batch and reports how many events were published.
func (r *Relay) RunOnce(ctx context.Context) (int, error) {
	events, err := r.Source.Pending(ctx, r.batchSize())
	if err != nil {
		return 0, err
	}
	if len(events) == 0 {
		return 0, nil
	}

	msgs := make([]Message, 0, len(events))
	for _, e := range events {
		msgs = append(msgs, Message{
			Key:       e.AggregateID,
			Value:     []byte(e.Payload),
			EventType: e.EventType,
			EventID:   e.EventID,
		})
	}
	if err := r.Publisher.Publish(ctx, msgs...); err != nil {
		return 0, fmt.Errorf("outbox: publish %d events: %w", len(msgs), err)
	}

	now := r.Clock.Now()
	plan := committer.NewPlan()
	for _, e := range events {
		plan.Add(m_outbox.MarkPublishedMutation(e.EventID, now))
	}
	if err := r.Committer.Apply(ctx, plan); err != nil {
		return 0, fmt.Errorf("outbox: mark published: %w", err)
	}
	return len(events), nil
}

// Run polls until ctx is cancelled. A full batch is followed immediately by
// another poll.
func (r *Relay) Run(ctx context.Context) error {
	log := r.logger()
	interval := r.Interval
	if interval <= 0 {
		interval = time.Second
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for ctx.Err() == nil {
		n, err := r.RunOnce(ctx)
		switch {
		case err != nil && ctx.Err() != nil:
			return nil
		case err != nil:
			log.ErrorContext(ctx, "outbox relay batch failed", "error", err)
		case n > 0:
			log.InfoContext(ctx, "outbox events published", "count", n)
		}
		if err == nil && n == r.batchSize() {
			continue
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
	return nil
}

func (r *Relay) batchSize() int {
	if r.BatchSize <= 0 {
		return 100
	}
	return r.BatchSize
}

func (r *Relay) logger() *slog.Logger {
	if r.Logger == nil {
		return slog.Default()
	}
	return r.Logger
}
