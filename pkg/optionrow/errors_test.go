package optionrow

import (
	"errors"
	"fmt"
	"testing"
)

func TestInfrastructureError(t *testing.T) {
	cause := errors.New("no display")
	err := fmt.Errorf("show list: %w", NewInfrastructureError("create_window", cause))

	if !IsInfrastructureError(err) {
		t.Fatalf("expected infrastructure error, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected cause to unwrap")
	}
	if got, want := NewInfrastructureError("render", nil).Error(), "optionrow: render"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
	if IsCancelled(err) {
		t.Fatalf("infrastructure error reported as cancellation")
	}
}

func TestIsCancelled(t *testing.T) {
	if !IsCancelled(fmt.Errorf("language screen: %w", ErrCancelled)) {
		t.Fatalf("wrapped ErrCancelled not detected")
	}
	if IsInfrastructureError(ErrCancelled) {
		t.Fatalf("ErrCancelled reported as infrastructure error")
	}
}
