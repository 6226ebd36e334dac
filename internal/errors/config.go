package errors

// ConfigError represents an invalid configuration detected before any work starts
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	return e.Message
}

// NewConfigError creates a new ConfigError with the given message
func NewConfigError(message string) *ConfigError {
	return &ConfigError{Message: message}
}
