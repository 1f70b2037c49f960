package transport

import (
	"context"
	"math"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// RetryPolicy controls Retry.
type RetryPolicy struct {
	// MaxRetries is the number of attempts made after the first one.
	MaxRetries int

	// BaseDelay is the wait before the first retry. Each later wait doubles
	// it; no jitter is applied.
	BaseDelay time.Duration

	// Retryable reports whether a failure may be retried. Failures it
	// rejects are returned immediately. Nil retries every failure.
	Retryable func(error) bool

	// Notify, if set, is called before each wait with the failure and the
	// delay about to be slept.
	Notify func(err error, delay time.Duration)

	// Timer replaces the real timer used between attempts.
	Timer backoff.Timer
}

// Retry calls op until it succeeds, fails with a non-retryable error, or
// MaxRetries retries have been spent, waiting BaseDelay * 2^n before retry
// n. It returns op's last error, or ctx's error if ctx ends first.
func Retry(ctx context.Context, p RetryPolicy, op func() error) error {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = p.BaseDelay
	exp.RandomizationFactor = 0
	exp.Multiplier = 2
	exp.MaxInterval = time.Duration(math.MaxInt64)
	exp.MaxElapsedTime = 0

	maxRetries := p.MaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}
	b := backoff.WithContext(backoff.WithMaxRetries(exp, uint64(maxRetries)), ctx)

	operation := func() error {
		err := op()
		if err != nil && p.Retryable != nil && !p.Retryable(err) {
			return backoff.Permanent(err)
		}
		return err
	}

	var notify backoff.Notify
	if p.Notify != nil {
		notify = backoff.Notify(p.Notify)
	}

	return backoff.RetryNotifyWithTimer(operation, b, notify, p.Timer)
}
