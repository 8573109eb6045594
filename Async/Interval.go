package Async

import (
	"context"
	"sync"
	"time"
)

// FixedDelay always returns d.
func FixedDelay(d time.Duration) func() time.Duration {
	return func() time.Duration {
		return d
	}
}

// RegisterInterval runs callback in the background over and over, waiting delay() after each run finishes before
// starting the next one. callback gets ctx, it isn't interrupted by stop.
//
// Calling stop ends the scheduling and blocks until the run in progress, if any, returns. No run starts after stop
// returns. stop may be called more than once. Canceling ctx also ends the scheduling.
func RegisterInterval(ctx context.Context, callback func(context.Context), delay func() time.Duration) (stop func()) {
	sched, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for sched.Err() == nil {
			callback(ctx)
			if Sleep(sched, delay()) != nil {
				return
			}
		}
	}()
	var once sync.Once
	return func() {
		once.Do(cancel)
		<-done
	}
}
