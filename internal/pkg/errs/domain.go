package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrOrderState is the sentinel for illegal order or shipment state changes
	// and for missing order-level arguments.
	ErrOrderState = errors.New("order state is invalid")
	// ErrContainer is the sentinel for container misuse and capacity violations.
	ErrContainer = errors.New("container is invalid")
	// ErrPosition is the sentinel for negative coordinates and items placed
	// outside of, or overlapping inside, a container.
	ErrPosition = errors.New("position is invalid")
)

// OrderStateError reports an operation that the current order or shipment
// state does not allow. Reference names the offending entity when known.
type OrderStateError struct {
	Reference string
	Reason    string
	Cause     error
}

// NewOrderStateError creates an OrderStateError without a cause.
func NewOrderStateError(reference, reason string) *OrderStateError {
	return &OrderStateError{Reference: reference, Reason: reason}
}

// NewOrderStateErrorWithCause creates an OrderStateError wrapping cause.
func NewOrderStateErrorWithCause(reference, reason string, cause error) *OrderStateError {
	return &OrderStateError{Reference: reference, Reason: reason, Cause: cause}
}

func (e *OrderStateError) Error() string {
	return format(ErrOrderState, e.Reference, e.Reason, e.Cause)
}

func (e *OrderStateError) Unwrap() error {
	return ErrOrderState
}

// ContainerError reports a rejected container operation or a container
// whose packed items exceed its capacity.
type ContainerError struct {
	Reference string
	Reason    string
	Cause     error
}

// NewContainerError creates a ContainerError without a cause.
func NewContainerError(reference, reason string) *ContainerError {
	return &ContainerError{Reference: reference, Reason: reason}
}

// NewContainerErrorWithCause creates a ContainerError wrapping cause.
func NewContainerErrorWithCause(reference, reason string, cause error) *ContainerError {
	return &ContainerError{Reference: reference, Reason: reason, Cause: cause}
}

func (e *ContainerError) Error() string {
	return format(ErrContainer, e.Reference, e.Reason, e.Cause)
}

func (e *ContainerError) Unwrap() error {
	return ErrContainer
}

// PositionError reports a negative coordinate or a packed item that does not
// fit where it was placed.
type PositionError struct {
	Reference string
	Reason    string
	Cause     error
}

// NewPositionError creates a PositionError without a cause.
func NewPositionError(reference, reason string) *PositionError {
	return &PositionError{Reference: reference, Reason: reason}
}

// NewPositionErrorWithCause creates a PositionError wrapping cause.
func NewPositionErrorWithCause(reference, reason string, cause error) *PositionError {
	return &PositionError{Reference: reference, Reason: reason, Cause: cause}
}

func (e *PositionError) Error() string {
	return format(ErrPosition, e.Reference, e.Reason, e.Cause)
}

func (e *PositionError) Unwrap() error {
	return ErrPosition
}

func format(kind error, reference, reason string, cause error) string {
	msg := fmt.Sprintf("%s: %s", kind, sanitize(reason))
	if reference != "" {
		msg = fmt.Sprintf("%s (reference: %s)", msg, sanitize(reference))
	}
	if cause != nil {
		msg = fmt.Sprintf("%s (cause: %v)", msg, cause)
	}
	return msg
}
