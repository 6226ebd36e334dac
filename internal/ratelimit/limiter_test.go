package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaitAllowsWithinRate(t *testing.T) {
	limiter := New("test", 100)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	for i := 0; i < 5; i++ {
		require.NoError(t, limiter.Wait(ctx))
	}
}

func TestWaitHonorsCancelledContext(t *testing.T) {
	limiter := New("test", 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Drain the initial burst so the next Wait has to block
	_ = limiter.Wait(context.Background())

	err := limiter.Wait(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limit wait for test")
}

func TestName(t *testing.T) {
	assert.Equal(t, "NobelAPI", New("NobelAPI", 1).Name())
}
