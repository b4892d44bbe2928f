package tmdb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/lepinkainen/smarterboxd/internal/ratelimit"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...Option) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	base := []Option{
		WithBaseURL(server.URL),
		WithRateLimiter(ratelimit.New("test", 0)),
	}
	return NewClient("test-api-key", append(base, opts...)...)
}

// instantRetries records requested backoff delays instead of sleeping.
func instantRetries(t *testing.T) *[]time.Duration {
	t.Helper()

	var delays []time.Duration
	orig := sleep
	sleep = func(_ context.Context, d time.Duration) error {
		delays = append(delays, d)
		return nil
	}
	t.Cleanup(func() { sleep = orig })
	return &delays
}
