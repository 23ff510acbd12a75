// Package txretry re-runs a unit of work while a classifier says the failure
// is transient, sleeping on the exponential schedule of a retry.Strategy.
package txretry

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/wb-go/wbf/retry"
)

// ErrExhausted wraps the last error once every attempt has failed with a
// retriable error.
var ErrExhausted = errors.New("retry attempts exhausted")

// Classifier reports whether err is worth another attempt.
type Classifier func(err error) bool

// Sleeper waits for d or until ctx is done.
type Sleeper func(ctx context.Context, d time.Duration) error

type Retrier struct {
	strategy retry.Strategy
	classify Classifier
	sleep    Sleeper
	onRetry  func(attempt int, delay time.Duration, err error)
}

type Option func(*Retrier)

func WithSleeper(s Sleeper) Option {
	return func(r *Retrier) {
		if s != nil {
			r.sleep = s
		}
	}
}

// WithOnRetry registers a hook called before each backoff sleep.
func WithOnRetry(fn func(attempt int, delay time.Duration, err error)) Option {
	return func(r *Retrier) {
		r.onRetry = fn
	}
}

func New(strategy retry.Strategy, classify Classifier, opts ...Option) *Retrier {
	r := &Retrier{
		strategy: strategy,
		classify: classify,
		sleep:    SleepContext,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Do calls fn with attempt numbers starting at 1. A non-retriable error is
// returned as is on first occurrence.
func (r *Retrier) Do(ctx context.Context, fn func(ctx context.Context, attempt int) error) error {
	attempts := r.Attempts()

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		lastErr = fn(ctx, attempt)
		if lastErr == nil {
			return nil
		}
		if r.classify == nil || !r.classify(lastErr) {
			return lastErr
		}
		if attempt == attempts {
			break
		}

		delay := r.Delay(attempt)
		if r.onRetry != nil {
			r.onRetry(attempt, delay, lastErr)
		}
		if err := r.sleep(ctx, delay); err != nil {
			return fmt.Errorf("%w: %w", err, lastErr)
		}
	}

	return fmt.Errorf("%w after %d attempts: %w", ErrExhausted, attempts, lastErr)
}

func (r *Retrier) Attempts() int {
	if n := int(r.strategy.Attempts); n > 0 {
		return n
	}
	return 1
}

// Delay is Delay * Backoff^(attempt-1).
func (r *Retrier) Delay(attempt int) time.Duration {
	backoff := float64(r.strategy.Backoff)
	if backoff < 1 {
		backoff = 1
	}
	return time.Duration(float64(r.strategy.Delay) * math.Pow(backoff, float64(attempt-1)))
}

func SleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
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
