package errors

import "fmt"

// MalformedRecordError represents a laureate entry that cannot be transformed.
// It is recoverable: callers log it and skip the offending record.
type MalformedRecordError struct {
	Reason string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed laureate record: %s", e.Reason)
}

// NewMalformedRecordError creates a new MalformedRecordError with the given reason
func NewMalformedRecordError(reason string) *MalformedRecordError {
	return &MalformedRecordError{Reason: reason}
}
