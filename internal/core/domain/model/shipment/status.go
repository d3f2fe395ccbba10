package shipment

import (
	"fmt"
	"strings"

	"fulfillment/internal/pkg/errs"
)

// Status is the lifecycle state of a shipment.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// AwaitsTreatment is the initial status of a new shipment.
	AwaitsTreatment

	// InTreatment is the only status in which containers can be added or removed.
	InTreatment

	// Closed means every container was validated and the shipment is sealed.
	Closed

	// Shipped means the shipment has left the warehouse.
	Shipped

	// Received is the terminal success state.
	Received

	// Cancelled is the terminal failure state.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:         "UNKNOWN",
		AwaitsTreatment: "AWAITS_TREATMENT",
		InTreatment:     "IN_TREATMENT",
		Closed:          "CLOSED",
		Shipped:         "SHIPPED",
		Received:        "RECEIVED",
		Cancelled:       "CANCELLED",
	}
}

// getTransitions returns, for each status, the statuses it may move to.
func getTransitions() map[Status][]Status {
	//nolint:exhaustive // Received and Unknown have no outgoing transitions
	return map[Status][]Status{
		AwaitsTreatment: {InTreatment, Cancelled},
		InTreatment:     {Closed, Cancelled},
		Closed:          {Shipped, Cancelled},
		Shipped:         {Received, Cancelled},
		Cancelled:       {Cancelled},
	}
}

// Statuses lists every valid status in lifecycle order.
func Statuses() []Status {
	return []Status{AwaitsTreatment, InTreatment, Closed, Shipped, Received, Cancelled}
}

// ParseStatus converts a name such as "IN_TREATMENT" into a Status.
// Matching ignores case and surrounding spaces.
func ParseStatus(s string) (Status, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for _, status := range Statuses() {
		if status.String() == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of the lifecycle states.
//
// Returns:
//   - nil if the status is valid
//   - error with details if the status is Unknown or out of range
//
// Used on statuses coming from persistence and API requests.
func (s Status) Validate() error {
	if s <= Unknown || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the status name, "UNKNOWN" for invalid values.
//
// Example:
//
//	fmt.Println(shipment.InTreatment) // Output: "IN_TREATMENT"
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsEditable reports whether containers may be added or removed.
func (s Status) IsEditable() bool {
	return s == InTreatment
}

// IsDelivered reports whether the shipment reached SHIPPED or RECEIVED,
// meaning its items no longer count as remaining to send.
func (s Status) IsDelivered() bool {
	return s == Shipped || s == Received
}

// CanTransitionTo checks the transition table without extra conditions.
//
// Legal transitions:
//   - AWAITS_TREATMENT -> IN_TREATMENT
//   - IN_TREATMENT -> CLOSED
//   - CLOSED -> SHIPPED
//   - SHIPPED -> RECEIVED
//   - any status except RECEIVED -> CANCELLED
//
// Returns:
//   - nil if the transition is legal
//   - *errs.OrderStateError naming both statuses otherwise
//
// Example:
//
//	if err := shipment.Closed.CanTransitionTo(shipment.InTreatment); err != nil {
//	    // order state is invalid: CLOSED -> IN_TREATMENT is not allowed
//	}
func (s Status) CanTransitionTo(next Status) error {
	for _, allowed := range getTransitions()[s] {
		if allowed == next {
			return nil
		}
	}
	return errs.NewOrderStateError("", fmt.Sprintf("%s -> %s is not allowed", s, next))
}
