// Package errors provides the error types used across the fieldfusion
// library. Messy business data never produces an error anywhere in the
// reconciliation core; these types exist for programmer contract
// violations such as invalid configuration or structurally malformed
// input documents handed to the pipeline.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Is reports whether any error in err's tree matches target.
var Is = errors.Is

// As finds the first error in err's tree that matches target.
var As = errors.As

// Common sentinel errors.
var (
	// ErrInvalidConfig indicates that reliability weights, thresholds,
	// or length limits are out of their documented ranges.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidInput indicates that a caller handed the pipeline
	// structurally malformed input (not noisy field data).
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound indicates that a requested resource was not found.
	ErrNotFound = errors.New("not found")
)

// ConfigError represents an out-of-range or missing configuration value.
type ConfigError struct {
	Key     string
	Value   any
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("config %s=%v: %s", e.Key, e.Value, e.Message)
	}
	return fmt.Sprintf("config: %s", e.Message)
}

// Is implements errors.Is support.
func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}

// NewConfigError creates a new ConfigError.
func NewConfigError(key string, value any, message string) *ConfigError {
	return &ConfigError{Key: key, Value: value, Message: message}
}

// DocumentError represents a structurally invalid input document,
// for example an unknown origin code in a CLI input file.
type DocumentError struct {
	Index   int
	Message string
	Err     error
}

// Error implements the error interface.
func (e *DocumentError) Error() string {
	return fmt.Sprintf("document %d: %s", e.Index, e.Message)
}

// Unwrap implements errors.Unwrap.
func (e *DocumentError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support.
func (e *DocumentError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewDocumentError creates a new DocumentError.
func NewDocumentError(index int, message string, err error) *DocumentError {
	return &DocumentError{Index: index, Message: message, Err: err}
}
