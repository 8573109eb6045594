// Package Async holds helpers for retrying and scheduling work in the background.
package Async

import (
	"context"
	"time"
)

// Sleep for d, or until ctx is done, in which case ctx.Err() is returned.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
