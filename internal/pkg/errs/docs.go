// Package errs provides standardized error types for the fulfillment application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes generic value errors:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a value falls outside its allowed range
//   - ObjectNotFoundError: For when an object cannot be found
//
// and the three fulfillment error kinds:
//   - OrderStateError: illegal status transitions, missing order arguments,
//     mutations of a closed order or of a shipment outside treatment
//   - ContainerError: missing container arguments, mutations of a closed
//     container, exceeded capacity
//   - PositionError: negative coordinates, items outside the container bounds
//     or overlapping another item
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is classifies it
package errs
