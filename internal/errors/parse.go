package errors

import "fmt"

// ParseError represents a malformed API response body
type ParseError struct {
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError wrapping the underlying decode error
func NewParseError(message string, err error) *ParseError {
	return &ParseError{Message: message, Err: err}
}
