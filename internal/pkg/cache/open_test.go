package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	ctx := context.Background()

	s, closeFn, err := Open(ctx, OpenOptions{Backend: BackendMemory})
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, s)
	assert.NoError(t, closeFn())

	s, _, err = Open(ctx, OpenOptions{Backend: BackendNone})
	require.NoError(t, err)
	assert.IsType(t, Nop{}, s)

	_, closeFn, err = Open(ctx, OpenOptions{Backend: BackendRedis})
	require.Error(t, err)
	assert.NotNil(t, closeFn)

	_, _, err = Open(ctx, OpenOptions{Backend: "memcached"})
	require.Error(t, err)
}
