package optionrow

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions.
var (
	// ErrCancelled indicates the user backed out of a list (pressed back, etc.).
	// This is a normal flow control error, not an infrastructure failure.
	ErrCancelled = errors.New("operation cancelled by user")

	// ErrNoOptions is returned when a list is shown with nothing to choose from.
	ErrNoOptions = errors.New("no options to show")

	// ErrUnknownKey indicates a key that does not identify any option.
	ErrUnknownKey = errors.New("unknown item key")
)

// InfrastructureError represents a failure of the rendering backend itself
// (window creation failed, font missing, etc.) rather than of the caller's
// data. These are typically fatal for the screen being shown.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "create_window", "load_font")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("optionrow: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("optionrow: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// NewInfrastructureError creates a new infrastructure error.
func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

// IsInfrastructureError checks if an error is an infrastructure error.
func IsInfrastructureError(err error) bool {
	var infraErr *InfrastructureError
	return errors.As(err, &infraErr)
}

// IsCancelled checks if an error indicates user cancellation.
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}
