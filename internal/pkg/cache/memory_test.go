package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/storefront-service/internal/pkg/clock"
)

func TestMemoryStore_ExpiresAfterTTL(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewFake(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))
	s := NewMemoryStore(clk)

	require.NoError(t, s.Set(ctx, "all_categories", []byte(`["clothes","tech"]`), DefaultTTL))

	clk.Advance(DefaultTTL - time.Second)
	v, ok, err := s.Get(ctx, "all_categories")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `["clothes","tech"]`, string(v))

	clk.Advance(time.Second)
	_, ok, err = s.Get(ctx, "all_categories")
	require.NoError(t, err)
	assert.False(t, ok, "entry must not outlive its TTL")
	assert.Equal(t, 0, s.Len())
}

func TestMemoryStore_DeleteAndClear(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(clock.NewFake(time.Now()))

	require.NoError(t, s.Set(ctx, "category_tech", []byte("a"), time.Minute))
	require.NoError(t, s.Set(ctx, "product_p1", []byte("b"), time.Minute))
	require.NoError(t, s.Set(ctx, "product_p2", []byte("c"), time.Minute))

	require.NoError(t, s.Delete(ctx, "category_tech"))
	_, ok, _ := s.Get(ctx, "category_tech")
	assert.False(t, ok)

	require.NoError(t, s.Clear(ctx))
	assert.Equal(t, 0, s.Len())
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(nil)

	orig := []byte("abc")
	require.NoError(t, s.Set(ctx, "k", orig, time.Minute))
	orig[0] = 'x'

	v, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "abc", string(v))

	v[1] = 'y'
	again, _, _ := s.Get(ctx, "k")
	assert.Equal(t, "abc", string(again))
}

func TestJSONHelpers(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(nil)

	type entry struct {
		Name string `json:"name"`
	}
	require.NoError(t, SetJSON(ctx, s, "k", []entry{{Name: "tech"}}, 0))

	got, ok, err := GetJSON[[]entry](ctx, s, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []entry{{Name: "tech"}}, got)

	_, ok, err = GetJSON[[]entry](ctx, s, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "bad", []byte("{"), time.Minute))
	_, _, err = GetJSON[[]entry](ctx, s, "bad")
	assert.Error(t, err)
}

func TestNop(t *testing.T) {
	ctx := context.Background()
	var s Store = Nop{}
	require.NoError(t, s.Set(ctx, "k", []byte("v"), time.Minute))
	_, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStore_SetIfGenerationRefusedAfterInvalidation(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(nil)

	gen, err := s.Generation(ctx)
	require.NoError(t, err)
	ok, err := s.SetIfGeneration(ctx, "category_tech", []byte("fresh"), time.Minute, gen)
	require.NoError(t, err)
	assert.True(t, ok)

	gen, err = s.Generation(ctx)
	require.NoError(t, err)
	require.NoError(t, s.Clear(ctx))
	ok, err = s.SetIfGeneration(ctx, "category_tech", []byte("stale"), time.Minute, gen)
	require.NoError(t, err)
	assert.False(t, ok, "write computed before Clear must be dropped")
	_, found, _ := s.Get(ctx, "category_tech")
	assert.False(t, found)

	gen, err = s.Generation(ctx)
	require.NoError(t, err)
	require.NoError(t, s.Delete(ctx, "product_p1"))
	ok, err = s.SetIfGeneration(ctx, "product_p1", []byte("stale"), time.Minute, gen)
	require.NoError(t, err)
	assert.False(t, ok, "write computed before Delete must be dropped")
}
