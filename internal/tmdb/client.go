// Package tmdb provides a client for TheMovieDB API.
package tmdb

import (
	"net/http"
	"strings"
	"time"

	"github.com/lepinkainen/smarterboxd/internal/ratelimit"
)

const (
	defaultBaseURL           = "https://api.themoviedb.org/3"
	defaultSmallImageBaseURL = "https://image.tmdb.org/t/p/w200" // lists and grids
	defaultLargeImageBaseURL = "https://image.tmdb.org/t/p/w500" // detail view
	defaultMaxAttempts       = 3
	defaultMaxWidth          = 500
	defaultRatePerSecond     = 4 // TMDB allows ~40 requests per 10 seconds
	defaultTimeout           = 10 * time.Second
)

// HTTPDoer is an interface for making HTTP requests.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client is a TMDB API client.
type Client struct {
	apiKey            string
	baseURL           string
	smallImageBaseURL string
	largeImageBaseURL string
	httpClient        HTTPDoer
	rateLimiter       *ratelimit.Limiter
	retryAttempts     int
	timeout           time.Duration
}

// NewClient creates a new TMDB API client.
func NewClient(apiKey string, opts ...Option) *Client {
	client := &Client{
		apiKey:            apiKey,
		baseURL:           defaultBaseURL,
		smallImageBaseURL: defaultSmallImageBaseURL,
		largeImageBaseURL: defaultLargeImageBaseURL,
		httpClient:        &http.Client{},
		rateLimiter:       ratelimit.New("TMDB", defaultRatePerSecond),
		retryAttempts:     defaultMaxAttempts,
		timeout:           defaultTimeout,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Option is a functional option for configuring the Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c HTTPDoer) Option {
	return func(client *Client) {
		if c != nil {
			client.httpClient = c
		}
	}
}

// WithBaseURL sets a custom base URL for the TMDB API.
func WithBaseURL(base string) Option {
	return func(client *Client) {
		if base != "" {
			client.baseURL = strings.TrimSuffix(base, "/")
		}
	}
}

// WithImageBaseURLs sets the small and large poster base URLs.
// Empty values keep the defaults.
func WithImageBaseURLs(small, large string) Option {
	return func(client *Client) {
		if small != "" {
			client.smallImageBaseURL = strings.TrimSuffix(small, "/")
		}
		if large != "" {
			client.largeImageBaseURL = strings.TrimSuffix(large, "/")
		}
	}
}

// WithRetryAttempts sets the number of attempts for failed requests.
func WithRetryAttempts(attempts int) Option {
	return func(client *Client) {
		if attempts > 0 {
			client.retryAttempts = attempts
		}
	}
}

// WithRateLimiter sets a custom rate limiter for the client.
func WithRateLimiter(limiter *ratelimit.Limiter) Option {
	return func(client *Client) {
		if limiter != nil {
			client.rateLimiter = limiter
		}
	}
}

// WithTimeout bounds every single outbound request.
func WithTimeout(timeout time.Duration) Option {
	return func(client *Client) {
		if timeout > 0 {
			client.timeout = timeout
		}
	}
}
