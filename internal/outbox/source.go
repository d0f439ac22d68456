package outbox

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/murkotick/storefront-service/internal/models/m_outbox"
)

// PendingEvent is an outbox row not yet delivered.
type PendingEvent struct {
	EventID     string
	EventType   string
	AggregateID string
	Payload     string
	CreatedAt   time.Time
}

// Source lists pending events, oldest first.
type Source interface {
	Pending(ctx context.Context, limit int) ([]PendingEvent, error)
}

type SpannerSource struct {
	Client *spanner.Client
}

func (s *SpannerSource) Pending(ctx context.Context, limit int) ([]PendingEvent, error) {
	iter := s.Client.Single().Query(ctx, m_outbox.PendingStatement(limit))
	defer iter.Stop()

	var out []PendingEvent
	for {
		row, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("outbox: query pending: %w", err)
		}
		var e PendingEvent
		if err := row.Columns(&e.EventID, &e.EventType, &e.AggregateID, &e.Payload, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("outbox: scan pending: %w", err)
		}
		out = append(out, e)
	}
	return out, nil
}
