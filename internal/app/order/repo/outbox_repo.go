package repo

import (
	"cloud.google.com/go/spanner"

	"github.com/murkotick/storefront-service/internal/app/order/contracts"
	"github.com/murkotick/storefront-service/internal/models/m_outbox"
)

// OutboxRepo is the Spanner implementation of contracts.OutboxRepo.
type OutboxRepo struct{}

func NewOutboxRepo() *OutboxRepo {
	return &OutboxRepo{}
}

func (r *OutboxRepo) InsertMut(e *contracts.OutboxEvent) *spanner.Mutation {
	if e == nil {
		return nil
	}
	status := e.Status
	if status == "" {
		status = m_outbox.StatusPending
	}
	return m_outbox.InsertMutation(m_outbox.BuildInsertMap(
		e.EventID,
		e.EventType,
		e.AggregateID,
		e.PayloadJSON,
		status,
		e.CreatedAtUTC,
	))
}
