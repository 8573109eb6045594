package Async

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	Go_DS "github.com/g-m-twostay/go-ds"
)

var discard = log.New(io.Discard)

// RetryConfig controls how Retry invokes an operation.
type RetryConfig struct {
	// MaxTrials is the maximum number of invocations, must be positive.
	MaxTrials int
	// Delay to sleep between two trials. Ignored when Backoff is set.
	Delay time.Duration
	// Backoff computes the delay from the 0-based index of the trial that just failed.
	Backoff func(lastTrial int) time.Duration
	// CollectErrors makes Retry keep every error in RetryResult.Errors.
	CollectErrors bool
	// Logger receives a debug line per failed trial and a warning when all trials fail. nil disables logging.
	Logger *log.Logger
}

func (c RetryConfig) Validate() error {
	if c.MaxTrials < 1 {
		return Go_DS.NewIllegalArgumentError("MaxTrials must be positive, got %d.", c.MaxTrials)
	}
	if c.Delay < 0 {
		return Go_DS.NewIllegalArgumentError("Delay must not be negative, got %v.", c.Delay)
	}
	return nil
}

func (c RetryConfig) delay(lastTrial int) time.Duration {
	if c.Backoff != nil {
		return c.Backoff(lastTrial)
	}
	return c.Delay
}

func (c RetryConfig) logger() *log.Logger {
	if c.Logger == nil {
		return discard
	}
	return c.Logger
}

// RetryResult reports how a Retry call went. Value is meaningful only if Succeeded.
type RetryResult[T any] struct {
	Succeeded bool
	Value     T
	Trials    int
	Errors    []error
}

// Retry invokes op until it succeeds or cfg.MaxTrials invocations failed, sleeping between trials.
// A failing op isn't an error of Retry, it's reported in the result. The returned error is non-nil only if cfg is
// invalid or ctx is done while waiting for the next trial.
func Retry[T any](ctx context.Context, cfg RetryConfig, op func(context.Context) (T, error)) (RetryResult[T], error) {
	var res RetryResult[T]
	if err := cfg.Validate(); err != nil {
		return res, err
	}
	l := cfg.logger()
	for {
		v, err := op(ctx)
		res.Trials++
		if err == nil {
			res.Succeeded, res.Value = true, v
			return res, nil
		}
		if cfg.CollectErrors {
			res.Errors = append(res.Errors, err)
		}
		if res.Trials >= cfg.MaxTrials {
			l.Warn("all trials failed", "trials", res.Trials, "err", err)
			return res, nil
		}
		d := cfg.delay(res.Trials - 1)
		l.Debug("trial failed", "trial", res.Trials, "retryIn", d, "err", err)
		if err := Sleep(ctx, d); err != nil {
			return res, fmt.Errorf("retry stopped after %d trials: %w", res.Trials, err)
		}
	}
}

// MakeRetriable wraps op so that every call retries it according to cfg.
func MakeRetriable[T any](op func(context.Context) (T, error), cfg RetryConfig) func(context.Context) (RetryResult[T], error) {
	return func(ctx context.Context) (RetryResult[T], error) {
		return Retry(ctx, cfg, op)
	}
}
