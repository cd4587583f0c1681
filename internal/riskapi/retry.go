package riskapi

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// RetryClient is a decorator that retries transient submission failures
// with exponential backoff and jitter.
type RetryClient struct {
	inner  Client
	config RetryConfig
}

// WithRetry wraps a Client with retry logic.
func WithRetry(c Client, cfg RetryConfig) Client {
	return &RetryClient{inner: c, config: cfg}
}

func (r *RetryClient) Analyze(ctx context.Context, sub Submission) (*Verdict, error) {
	var lastErr error
	invalidRetried := false

	for attempt := range r.config.MaxAttempts {
		v, err := r.inner.Analyze(ctx, sub)
		if err == nil {
			return v, nil
		}
		lastErr = err

		if !shouldRetry(err, &invalidRetried) {
			return nil, err
		}
		if attempt == r.config.MaxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(r.backoff(attempt)):
		}
	}

	return nil, lastErr
}

func (r *RetryClient) Health(ctx context.Context) error {
	return r.inner.Health(ctx)
}

// shouldRetry determines whether an Analyze error is worth another attempt.
func shouldRetry(err error, invalidRetried *bool) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	// A rejected submission is malformed; resending cannot help.
	var rej *ErrRejected
	if errors.As(err, &rej) {
		return false
	}

	// A schema-invalid verdict gets one retry in case it was a fluke.
	var inv *ErrInvalidResponse
	if errors.As(err, &inv) {
		if *invalidRetried {
			return false
		}
		*invalidRetried = true
		return true
	}

	// Unavailable and anything else (transport errors) are transient.
	return true
}

// backoff computes the wait before the next attempt.
func (r *RetryClient) backoff(attempt int) time.Duration {
	wait := float64(r.config.InitialWait) * math.Pow(r.config.Multiplier, float64(attempt))
	if wait > float64(r.config.MaxWait) {
		wait = float64(r.config.MaxWait)
	}

	// ±20% jitter.
	wait += wait * 0.2 * (2*rand.Float64() - 1)
	if wait < 0 {
		wait = 0
	}
	return time.Duration(wait)
}
