package casefy

import (
	"errors"
	"fmt"
)

var (
	// ErrConfig indicates missing or unsupported case styles.
	ErrConfig = errors.New("configuration error")

	// ErrData indicates a problem found while walking the input value.
	ErrData = errors.New("data error")

	// ErrCycle indicates a mapping or sequence contains itself.
	ErrCycle = errors.New("cyclic value")

	// ErrMaxDepth indicates nesting exceeded the configured depth ceiling.
	ErrMaxDepth = errors.New("max depth exceeded")
)

const (
	SideSource = "source"
	SideTarget = "target"
)

// ConfigError represents a programmer facing configuration problem.
type ConfigError struct {
	// Side is "source", "target" or empty when both styles are missing
	Side string
	// Style is the unsupported style name
	Style   string
	Message string
	Cause   error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	return "configuration error: " + e.Message
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

// DataError represents a recoverable problem found while walking data.
type DataError struct {
	Path    string
	Depth   int
	Message string
	Cause   error
}

// Error returns a human-readable error message.
func (e *DataError) Error() string {
	msg := "data error"
	if e.Path != "" {
		msg += " at " + e.Path
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *DataError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *DataError) Is(target error) bool {
	return target == ErrData
}

func missingStyleError() error {
	return &ConfigError{Message: `both "from" and "to" case styles must be specified`}
}

func unsupportedStyleError(side, style string, cause error) error {
	return &ConfigError{
		Side:    side,
		Style:   style,
		Message: fmt.Sprintf("unsupported %v case style: %v", side, style),
		Cause:   cause,
	}
}
