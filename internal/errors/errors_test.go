package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"
	"time"
)

func TestRateLimitError(t *testing.T) {
	err := NewRateLimitError("slow down")

	if err.Error() != "slow down" {
		t.Fatalf("Error message = %q, want %q", err.Error(), "slow down")
	}

	if !IsRateLimitError(err) {
		t.Fatalf("IsRateLimitError returned false for RateLimitError")
	}

	wrapped := fmt.Errorf("search: %w", err)
	if !IsRateLimitError(wrapped) {
		t.Fatalf("IsRateLimitError returned false for wrapped RateLimitError")
	}
}

func TestRateLimitErrorWithRetry(t *testing.T) {
	err := NewRateLimitErrorWithRetry("too many requests", 2*time.Minute)

	expected := "too many requests (retry after 2m0s)"
	if err.Error() != expected {
		t.Fatalf("Error message = %q, want %q", err.Error(), expected)
	}

	if err.RetryAfter.Minutes() != 2.0 {
		t.Fatalf("RetryAfter = %v, want 2 minutes", err.RetryAfter)
	}
}

func TestStatusError(t *testing.T) {
	err := &StatusError{Service: "tmdb", StatusCode: 404, Body: `{"status_code":34}`}

	want := `tmdb: unexpected status 404: {"status_code":34}`
	if err.Error() != want {
		t.Fatalf("Error message = %q, want %q", err.Error(), want)
	}

	wrapped := fmt.Errorf("detail: %w", err)
	if !IsStatus(wrapped, 404) {
		t.Fatalf("IsStatus(404) returned false for wrapped StatusError")
	}
	if IsStatus(wrapped, 500) {
		t.Fatalf("IsStatus(500) returned true for a 404")
	}

	bare := &StatusError{Service: "tmdb", StatusCode: 502}
	if bare.Error() != "tmdb: unexpected status 502" {
		t.Fatalf("Error message = %q", bare.Error())
	}
}

func TestIsDecodeError(t *testing.T) {
	err := fmt.Errorf("%w: unexpected end of JSON input", ErrDecode)
	if !IsDecodeError(err) {
		t.Fatalf("IsDecodeError returned false for wrapped ErrDecode")
	}
	if IsDecodeError(stdErrors.New("connection reset")) {
		t.Fatalf("IsDecodeError returned true for unrelated error")
	}
}
