package apperrors

import (
	"errors"
	"fmt"
)

// ErrUnknownVariant is the sentinel matched by every UnknownVariantError.
// Use errors.Is(err, ErrUnknownVariant) when the offending tag is not needed.
var ErrUnknownVariant = errors.New("unknown parrot variant")

// UnknownVariantError is returned when a variant selector does not name one
// of the recognised parrot variants. It is the only error the speed
// calculation itself can produce.
type UnknownVariantError struct {
	// Tag is the selector that failed to match, as the caller supplied it.
	Tag string
}

// Error returns a formatted message naming the unrecognised tag.
//
// Returns:
//   - string: The error message string.
func (e UnknownVariantError) Error() string {
	return fmt.Sprintf("%s %q", ErrUnknownVariant.Error(), e.Tag)
}

// Is reports whether target is ErrUnknownVariant, so that errors.Is matches
// any UnknownVariantError regardless of its tag.
func (e UnknownVariantError) Is(target error) bool {
	return target == ErrUnknownVariant
}

// NewUnknownVariantError creates an UnknownVariantError for the given tag.
func NewUnknownVariantError(tag string) error {
	return UnknownVariantError{Tag: tag}
}

// ConfigError represents an invalid runtime option, such as an unparseable
// log level. It indicates that a calculator cannot be built from the options.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// ValidationError represents an input validation failure. It identifies which
// field failed validation and provides a human-readable explanation.
type ValidationError struct {
	// Field is the name of the field that failed validation.
	Field string
	// Message explains the validation failure.
	Message string
}

// Error returns a formatted message describing the validation failure.
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}
