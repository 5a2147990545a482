package errors

import (
	"errors"
	"fmt"
)

// ParseError represents a response body that could not be decoded.
type ParseError struct {
	Source string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("decoding %s response: %v", e.Source, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a ParseError wrapping the decoder failure.
func NewParseError(source string, err error) *ParseError {
	return &ParseError{Source: source, Err: err}
}

// IsParseError reports whether err is a ParseError (even when wrapped).
func IsParseError(err error) bool {
	var parseErr *ParseError
	return errors.As(err, &parseErr)
}
