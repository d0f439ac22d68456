package e2e

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/iterator"
)

type outboxEvent struct {
	EventID     string
	EventType   string
	AggregateID string
	Payload     string
	Status      string
	CreatedAt   time.Time
	ProcessedAt spanner.NullTime
}

type orderRow struct {
	OrderID   string
	Total     big.Rat
	CreatedAt time.Time
}

type orderItemRow struct {
	LineNo         int64
	ProductID      string
	Quantity       int64
	Price          big.Rat
	AttributesJSON string
}

func queryAll[T any](ctx context.Context, client *spanner.Client, stmt spanner.Statement, scan func(*spanner.Row) (T, error)) ([]T, error) {
	iter := client.Single().Query(ctx, stmt)
	defer iter.Stop()

	out := make([]T, 0)
	for {
		row, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		v, err := scan(row)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
}

func mustFetchOutboxEvents(ctx context.Context, t *testing.T, aggregateID string) []outboxEvent {
	t.Helper()
	items, err := queryAll(ctx, spClient, spanner.Statement{
		SQL: `SELECT event_id, event_type, aggregate_id, payload, status, created_at, processed_at
		      FROM outbox_events
		      WHERE aggregate_id = @id
		      ORDER BY created_at ASC, event_id ASC`,
		Params: map[string]any{"id": aggregateID},
	}, func(row *spanner.Row) (outboxEvent, error) {
		var e outboxEvent
		err := row.Columns(&e.EventID, &e.EventType, &e.AggregateID, &e.Payload, &e.Status, &e.CreatedAt, &e.ProcessedAt)
		return e, err
	})
	require.NoError(t, err)
	return items
}

func mustFetchOrder(ctx context.Context, t *testing.T, orderID string) (*orderRow, []orderItemRow) {
	t.Helper()
	orders, err := queryAll(ctx, spClient, spanner.Statement{
		SQL:    `SELECT order_id, total_amount, created_at FROM orders WHERE order_id = @id`,
		Params: map[string]any{"id": orderID},
	}, func(row *spanner.Row) (orderRow, error) {
		var o orderRow
		err := row.Columns(&o.OrderID, &o.Total, &o.CreatedAt)
		return o, err
	})
	require.NoError(t, err)

	items, err := queryAll(ctx, spClient, spanner.Statement{
		SQL: `SELECT line_no, product_id, quantity, price_at_purchase, attributes_json
		      FROM order_items WHERE order_id = @id ORDER BY line_no`,
		Params: map[string]any{"id": orderID},
	}, func(row *spanner.Row) (orderItemRow, error) {
		var it orderItemRow
		err := row.Columns(&it.LineNo, &it.ProductID, &it.Quantity, &it.Price, &it.AttributesJSON)
		return it, err
	})
	require.NoError(t, err)

	if len(orders) == 0 {
		return nil, items
	}
	return &orders[0], items
}

// mustCount returns the number of rows in table.
func mustCount(ctx context.Context, t *testing.T, table string) int64 {
	t.Helper()
	counts, err := queryAll(ctx, spClient, spanner.Statement{SQL: "SELECT COUNT(*) FROM " + table},
		func(row *spanner.Row) (int64, error) {
			var n int64
			err := row.Columns(&n)
			return n, err
		})
	require.NoError(t, err)
	require.Len(t, counts, 1)
	return counts[0]
}
