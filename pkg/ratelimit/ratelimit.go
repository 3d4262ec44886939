package ratelimit

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Gate paces a sequence of calls against an upstream rate limit. Wait blocks
// until the next call is allowed or the context is canceled.
type Gate interface {
	Wait(ctx context.Context) error
}

type limiterGate struct {
	limiter *rate.Limiter
}

// NewMinInterval returns a Gate that allows at most one call per interval.
// A non-positive interval disables pacing.
func NewMinInterval(interval time.Duration) Gate {
	if interval <= 0 {
		return NewUnlimited()
	}

	return &limiterGate{limiter: rate.NewLimiter(rate.Every(interval), 1)}
}

func (g *limiterGate) Wait(ctx context.Context) error {
	return g.limiter.Wait(ctx)
}

type unlimitedGate struct{}

// NewUnlimited returns a Gate that never blocks. Used in tests.
func NewUnlimited() Gate {
	return unlimitedGate{}
}

func (unlimitedGate) Wait(ctx context.Context) error {
	return ctx.Err()
}
