package committer

import (
	"context"
	"testing"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlan_IgnoresNilMutations(t *testing.T) {
	p := NewPlan()
	require.True(t, p.IsEmpty())

	p.Add(nil)
	p.AddAll(nil, spanner.Insert("orders", []string{"order_id"}, []interface{}{"o-1"}), nil)

	assert.Equal(t, 1, p.Len())
	assert.False(t, p.IsEmpty())
	assert.Len(t, p.Mutations(), 1)
}

func TestAdapter_EmptyPlanIsNoop(t *testing.T) {
	a := NewAdapter(nil)
	assert.NoError(t, a.Apply(context.Background(), nil))
	assert.NoError(t, a.Apply(context.Background(), NewPlan()))
}

func TestAdapter_NilClient(t *testing.T) {
	a := NewAdapter(nil)
	p := NewPlan()
	p.Add(spanner.Insert("orders", []string{"order_id"}, []interface{}{"o-1"}))

	err := a.Apply(context.Background(), p)
	assert.ErrorIs(t, err, ErrNoClient)
}
