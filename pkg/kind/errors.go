package kind

import "fmt"

// ConfigError is the single error kind surfaced by this package. Every
// classification or validation failure carries a human-readable message and
// propagates unchanged to the caller.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	return e.Message
}

func errorf(format string, args ...any) *ConfigError {
	return &ConfigError{Message: fmt.Sprintf(format, args...)}
}
