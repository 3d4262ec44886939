package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func Test_MinInterval_PacesCalls(t *testing.T) {
	gate := NewMinInterval(20 * time.Millisecond)
	ctx := context.Background()

	begin := time.Now()
	for i := 0; i < 3; i++ {
		require.NoError(t, gate.Wait(ctx))
	}

	// The first call passes immediately, the next two wait one interval each.
	require.GreaterOrEqual(t, time.Since(begin), 40*time.Millisecond)
}

func Test_MinInterval_CanceledContext(t *testing.T) {
	gate := NewMinInterval(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())

	require.NoError(t, gate.Wait(ctx))

	cancel()
	require.Error(t, gate.Wait(ctx))
}

func Test_Unlimited(t *testing.T) {
	gate := NewUnlimited()
	require.NoError(t, gate.Wait(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.Error(t, gate.Wait(ctx))
}
