package errors

import "fmt"

// FetchError represents a failed API request (network failure or non-2xx response)
type FetchError struct {
	StatusCode int
	Message    string
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch failed with status %d: %s", e.StatusCode, e.Message)
	}
	return e.Message
}

// NewFetchError creates a new FetchError with the given status code and message
func NewFetchError(statusCode int, message string) *FetchError {
	return &FetchError{StatusCode: statusCode, Message: message}
}
