package coords

import (
	"errors"
	"fmt"
	"strings"
)

// ConfigErrorCode categorizes classification failures.
type ConfigErrorCode string

const (
	// ErrCodeUnknownField indicates a field name matching no coordinate.
	ErrCodeUnknownField ConfigErrorCode = "UNKNOWN_FIELD"

	// ErrCodeAmbiguousFields indicates colliding coordinate spellings,
	// e.g. both x and px, or both z and eta.
	ErrCodeAmbiguousFields ConfigErrorCode = "AMBIGUOUS_FIELDS"

	// ErrCodeIncompleteAxis indicates a partially specified axis,
	// e.g. x without y, or a temporal field without a longitudinal one.
	ErrCodeIncompleteAxis ConfigErrorCode = "INCOMPLETE_AXIS"
)

// ConfigurationError is raised at construction time when field names
// match no known coordinate kind or match ambiguously. The message
// always names the offending fields; classification never guesses.
type ConfigurationError struct {
	// Code identifies the failure category.
	Code ConfigErrorCode

	// Message is a human-readable description.
	Message string

	// Fields lists the offending field names, sorted.
	Fields []string
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	if len(e.Fields) > 0 {
		return fmt.Sprintf("%s: %s (fields: %s)", e.Code, e.Message, strings.Join(e.Fields, ", "))
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsConfigurationError returns true if the error is a classification
// failure. Uses errors.As to handle wrapped errors.
func IsConfigurationError(err error) bool {
	var ce *ConfigurationError
	return errors.As(err, &ce)
}

func newAmbiguousError(fields []string) *ConfigurationError {
	return &ConfigurationError{
		Code:    ErrCodeAmbiguousFields,
		Message: "fields name the same coordinate axis more than once",
		Fields:  fields,
	}
}

func newUnknownError(fields []string) *ConfigurationError {
	return &ConfigurationError{
		Code:    ErrCodeUnknownField,
		Message: "fields match no known coordinate",
		Fields:  fields,
	}
}

func newIncompleteError(msg string, fields []string) *ConfigurationError {
	return &ConfigurationError{
		Code:    ErrCodeIncompleteAxis,
		Message: msg,
		Fields:  fields,
	}
}
