package errors

import "errors"

// IsMalformedRecordError checks if an error is (or wraps) a MalformedRecordError
func IsMalformedRecordError(err error) bool {
	var target *MalformedRecordError
	return errors.As(err, &target)
}

// IsFetchError checks if an error is (or wraps) a FetchError
func IsFetchError(err error) bool {
	var target *FetchError
	return errors.As(err, &target)
}

// IsExportError checks if an error is (or wraps) an ExportError
func IsExportError(err error) bool {
	var target *ExportError
	return errors.As(err, &target)
}
