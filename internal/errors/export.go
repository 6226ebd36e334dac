package errors

import "fmt"

// ExportError represents a failed write to an output destination
type ExportError struct {
	Destination string
	Err         error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export to %s failed: %v", e.Destination, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}

// NewExportError creates a new ExportError for the given destination
func NewExportError(destination string, err error) *ExportError {
	return &ExportError{Destination: destination, Err: err}
}
