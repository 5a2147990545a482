package errors

import (
	stdErrors "errors"
	"fmt"
)

// TransportError represents a failed request to a remote API: the request
// could not be sent, or the server answered with a non-success status.
type TransportError struct {
	Op         string
	URL        string
	StatusCode int   // zero when no response was received
	Err        error // underlying network error, if any
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s %s: unexpected status %d", e.Op, e.URL, e.StatusCode)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s %s: %v", e.Op, e.URL, e.Err)
	}
	return fmt.Sprintf("%s %s: request failed", e.Op, e.URL)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// NewTransportError creates a TransportError for a request that never got a response
func NewTransportError(op, url string, err error) *TransportError {
	return &TransportError{Op: op, URL: url, Err: err}
}

// NewStatusError creates a TransportError for a non-success HTTP status
func NewStatusError(op, url string, statusCode int) *TransportError {
	return &TransportError{Op: op, URL: url, StatusCode: statusCode}
}

// IsTransportError checks if error is a TransportError
func IsTransportError(err error) bool {
	var transportErr *TransportError
	return stdErrors.As(err, &transportErr)
}
