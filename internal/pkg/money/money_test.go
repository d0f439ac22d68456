package money

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromFloat_KeepsWrittenDecimal(t *testing.T) {
	m := FromFloat(19.99)
	assert.True(t, m.Rat().Cmp(big.NewRat(1999, 100)) == 0)
	assert.Equal(t, "19.99", m.String())

	total := FromFloat(39.98)
	assert.True(t, m.MultiplyInt(2).Equals(total))
}

func TestFromFloat_RoundsToNumericScale(t *testing.T) {
	m := FromFloat(0.1 + 0.2)
	assert.Equal(t, "0.3", m.Decimal().String())
}

func TestParse(t *testing.T) {
	m, err := Parse("50.5")
	require.NoError(t, err)
	assert.True(t, m.Equals(New(101, 2)))

	_, err = Parse("fifty")
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestPredicates(t *testing.T) {
	assert.True(t, Zero().IsZero())
	assert.True(t, New(-1, 100).IsNegative())
	assert.False(t, New(1, 100).IsNegative())
	assert.False(t, New(1, 1).Equals(nil))
	assert.True(t, FromRat(nil).IsZero())
}

func TestJSONRoundTrip(t *testing.T) {
	in := New(14464, 100)
	b, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `"144.64"`, string(b))

	var out Money
	require.NoError(t, json.Unmarshal(b, &out))
	assert.True(t, in.Equals(&out))
}
