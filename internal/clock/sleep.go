// Package clock provides context-aware time utilities for the
// ingester loops.
package clock

import (
	"context"
	"time"
)

// SleepWithContext blocks for d or until ctx is done, whichever comes
// first. Non-positive durations return immediately with the context's
// current error, so callers can pass computed backoffs unchecked.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
