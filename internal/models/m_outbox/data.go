package m_outbox

import (
	"time"

	"cloud.google.com/go/spanner"
)

// BuildInsertMap constructs the column map of a new, unprocessed outbox event.
func BuildInsertMap(eventID, eventType, aggregateID, payload, status string, createdAt time.Time) map[string]interface{} {
	return map[string]interface{}{
		ColEventID:     eventID,
		ColEventType:   eventType,
		ColAggregateID: aggregateID,
		ColPayload:     payload,
		ColStatus:      status,
		ColCreatedAt:   createdAt,
		ColProcessedAt: nil,
	}
}

func InsertMutation(values map[string]interface{}) *spanner.Mutation {
	return spanner.InsertMap(TableName, values)
}

// MarkPublishedMutation flags an event as delivered to the broker.
func MarkPublishedMutation(eventID string, processedAt time.Time) *spanner.Mutation {
	return spanner.UpdateMap(TableName, map[string]interface{}{
		ColEventID:     eventID,
		ColStatus:      StatusPublished,
		ColProcessedAt: processedAt,
	})
}

// PendingStatement selects up to limit unpublished events, oldest first.
func PendingStatement(limit int) spanner.Statement {
	return spanner.Statement{
		SQL: `SELECT event_id, event_type, aggregate_id, payload, created_at
		      FROM outbox_events
		      WHERE status = @status
		      ORDER BY created_at, event_id
		      LIMIT @limit`,
		Params: map[string]interface{}{"status": StatusPending, "limit": int64(limit)},
	}
}
