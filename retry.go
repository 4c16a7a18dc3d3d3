package client

import (
	"context"
	"time"

	backoff "github.com/cenkalti/backoff/v4"

	sdkerrors "github.com/genai-factory/genai-factory/client/internal/errors"
)

// retryPolicy re-runs an operation on recoverable failures. The zero-ish
// default (MaxAttempts=1) keeps the documented one-request-per-call contract.
type retryPolicy struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
}

func (p retryPolicy) do(ctx context.Context, fn func(context.Context) error) error {
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = p.InitialDelay
	if exp.InitialInterval <= 0 {
		exp.InitialInterval = 100 * time.Millisecond
	}
	exp.Multiplier = 2
	exp.MaxInterval = p.MaxDelay
	if exp.MaxInterval <= 0 {
		exp.MaxInterval = 5 * time.Second
	}
	exp.Reset()

	var err error
	for attempt := 1; ; attempt++ {
		err = fn(ctx)
		if err == nil {
			return nil
		}
		if attempt >= attempts || sdkerrors.Classify(err) == sdkerrors.Irrecoverable {
			return err
		}
		select {
		case <-time.After(exp.NextBackOff()):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
