package version

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"
)

// RetryConfig configures retries of transient release API failures.
type RetryConfig struct {
	MaxAttempts int           // attempts including the first
	BaseDelay   time.Duration // delay before the first retry
	MaxDelay    time.Duration // cap on any single delay
}

// DefaultRetryConfig makes 3 attempts with delays of about 500ms and 1s.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		BaseDelay:   500 * time.Millisecond,
		MaxDelay:    2 * time.Second,
	}
}

// WithRetry sets the retry policy.
func WithRetry(cfg RetryConfig) Option {
	return func(c *Client) {
		c.retry = cfg
	}
}

// transientError marks a failure worth retrying. after is the server's
// Retry-After hint, zero when absent.
type transientError struct {
	err   error
	after time.Duration
}

func (e *transientError) Error() string { return e.err.Error() }
func (e *transientError) Unwrap() error { return e.err }

// isTransientStatus reports whether a status code is worth retrying.
func isTransientStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

// parseRetryAfter parses a Retry-After header in seconds.
func parseRetryAfter(header string) time.Duration {
	seconds, err := strconv.Atoi(header)
	if err != nil || seconds < 0 {
		return 0
	}
	return time.Duration(seconds) * time.Second
}

// withRetry runs op until it succeeds, fails permanently, or the attempts
// run out.
func withRetry[T any](ctx context.Context, cfg RetryConfig, op func() (T, error)) (T, error) {
	var (
		result T
		err    error
	)
	attempts := max(cfg.MaxAttempts, 1)

	for attempt := range attempts {
		result, err = op()
		if err == nil {
			return result, nil
		}

		var te *transientError
		if !errors.As(err, &te) {
			return result, err
		}
		if attempt == attempts-1 {
			break
		}

		delay := backoff(attempt, cfg.BaseDelay, cfg.MaxDelay)
		if te.after > 0 {
			delay = min(te.after, cfg.MaxDelay)
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return result, ctx.Err()
		case <-timer.C:
		}
	}

	return result, fmt.Errorf("after %d attempts: %w", attempts, err)
}

// backoff doubles base per attempt up to maxDelay, with jitter in
// [delay/2, delay).
func backoff(attempt int, base, maxDelay time.Duration) time.Duration {
	delay := base << attempt
	if delay > maxDelay || delay <= 0 {
		delay = maxDelay
	}
	half := delay / 2
	if half <= 0 {
		return delay
	}
	return half + rand.N(half) //nolint:gosec // G404: jitter does not need crypto randomness
}
