/*
Copyright © 2025 Stackaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package infra

import (
	"context"
	"fmt"
	"time"

	"github.com/juju/clock"
	"github.com/juju/retry"
)

const (
	defaultRetryDelay    = 2 * time.Second
	defaultMaxRetryDelay = 30 * time.Second
)

// RetryPolicy bounds the retries of a lookup made while the program runs.
// Delays double after every failed attempt up to MaxDelay.
type RetryPolicy struct {
	Attempts int
	Delay    time.Duration
	MaxDelay time.Duration
	Clock    clock.Clock
}

// NewRetryPolicy returns a policy making at most attempts calls
func NewRetryPolicy(attempts int) RetryPolicy {
	return RetryPolicy{
		Attempts: attempts,
		Delay:    defaultRetryDelay,
		MaxDelay: defaultMaxRetryDelay,
		Clock:    clock.WallClock,
	}
}

// Call runs fn until it succeeds, the attempts are exhausted or ctx is done.
// On failure the error of the last attempt is returned.
func (p RetryPolicy) Call(ctx context.Context, fn func() error, notify func(err error, attempt int)) error {
	attempts := p.Attempts
	if attempts < 1 {
		attempts = 1
	}
	delay := p.Delay
	if delay <= 0 {
		delay = defaultRetryDelay
	}
	clk := p.Clock
	if clk == nil {
		clk = clock.WallClock
	}

	err := retry.Call(retry.CallArgs{
		Func:        fn,
		NotifyFunc:  notify,
		Attempts:    attempts,
		Delay:       delay,
		MaxDelay:    p.MaxDelay,
		BackoffFunc: retry.DoubleDelay,
		Clock:       clk,
		Stop:        ctx.Done(),
	})
	if err == nil {
		return nil
	}
	if retry.IsAttemptsExceeded(err) || retry.IsRetryStopped(err) {
		if last := retry.LastError(err); last != nil {
			return fmt.Errorf("gave up after %d attempt(s): %w", attempts, last)
		}
	}
	return err
}
