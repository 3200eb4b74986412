package platform

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// Retry invokes op with a fixed delay between attempts until it succeeds or
// attempts are exhausted, then fails with the last encountered error. There
// is deliberately no exponential growth; the monitor endpoints expect a flat
// cadence. Callers choose whether a call is worth retrying at all.
func Retry(ctx context.Context, attempts int, delay time.Duration, op func() error) error {
	if attempts < 1 {
		attempts = 1
	}
	bo := backoff.WithMaxRetries(backoff.NewConstantBackOff(delay), uint64(attempts-1))
	return backoff.Retry(op, backoff.WithContext(bo, ctx))
}

// withRetry wraps a client call with the configured fixed-count retry policy.
func (c *Client) withRetry(ctx context.Context, op func() error) error {
	return Retry(ctx, c.retryAttempts, c.retryDelay, op)
}
