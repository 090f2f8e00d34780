package version

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastRetry() RetryConfig {
	return RetryConfig{MaxAttempts: 3, BaseDelay: time.Millisecond, MaxDelay: 5 * time.Millisecond}
}

func TestLatestRelease_RetriesServerErrors(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) < 3 {
			w.Header().Set("Retry-After", "1")
			http.Error(w, "unavailable", http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"tag_name":"v1.0.0"}`))
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL), WithHTTPClient(srv.Client()), WithRetry(fastRetry()))
	release, err := client.LatestRelease(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "v1.0.0", release.TagName)
	assert.Equal(t, int32(3), calls.Load())
}

func TestLatestRelease_GivesUpAfterMaxAttempts(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		http.Error(w, "slow down", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL), WithHTTPClient(srv.Client()), WithRetry(fastRetry()))
	_, err := client.LatestRelease(context.Background())

	require.ErrorIs(t, err, ErrGitHubAPIFailed)
	assert.Contains(t, err.Error(), "after 3 attempts")
	assert.Equal(t, int32(3), calls.Load())
}

func TestLatestRelease_ClientErrorsAreNotRetried(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		http.NotFound(w, nil)
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL), WithHTTPClient(srv.Client()), WithRetry(fastRetry()))
	_, err := client.LatestRelease(context.Background())

	require.ErrorIs(t, err, ErrGitHubAPIFailed)
	assert.Equal(t, int32(1), calls.Load())
}

func TestWithRetry_StopsOnCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cfg := RetryConfig{MaxAttempts: 5, BaseDelay: time.Hour, MaxDelay: time.Hour}

	_, err := withRetry(ctx, cfg, func() (int, error) {
		cancel()
		return 0, &transientError{err: errors.New("boom")}
	})

	require.ErrorIs(t, err, context.Canceled)
}

func TestBackoff(t *testing.T) {
	t.Parallel()

	for attempt := range 6 {
		d := backoff(attempt, 100*time.Millisecond, time.Second)
		assert.GreaterOrEqual(t, d, 50*time.Millisecond)
		assert.Less(t, d, time.Second)
	}
	assert.Equal(t, time.Duration(0), backoff(0, 0, 0))
}

func TestParseRetryAfter(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 3*time.Second, parseRetryAfter("3"))
	assert.Zero(t, parseRetryAfter(""))
	assert.Zero(t, parseRetryAfter("Wed, 21 Oct 2015 07:28:00 GMT"))
	assert.Zero(t, parseRetryAfter("-1"))
}
