package contracts

import (
	"time"

	"cloud.google.com/go/spanner"
)

// OutboxRepo builds transactional outbox mutations.
type OutboxRepo interface {
	InsertMut(e *OutboxEvent) *spanner.Mutation
}

// OutboxEvent is an integration event persisted in the same commit as the
// state change it describes.
type OutboxEvent struct {
	EventID      string
	EventType    string
	AggregateID  string
	PayloadJSON  string
	Status       string
	CreatedAtUTC time.Time
}
