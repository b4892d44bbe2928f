package errors

import (
	stdErrors "errors"
	"fmt"
)

// ErrDecode marks a response body that could not be decoded into the expected shape.
var ErrDecode = stdErrors.New("malformed response")

// StatusError is returned when an API answers with a non-2xx status.
type StatusError struct {
	Service    string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("%s: unexpected status %d: %s", e.Service, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("%s: unexpected status %d", e.Service, e.StatusCode)
}

// IsStatus reports whether err is a StatusError with the given code.
func IsStatus(err error, code int) bool {
	var statusErr *StatusError
	if stdErrors.As(err, &statusErr) {
		return statusErr.StatusCode == code
	}
	return false
}

// IsDecodeError reports whether err wraps ErrDecode.
func IsDecodeError(err error) bool {
	return stdErrors.Is(err, ErrDecode)
}
