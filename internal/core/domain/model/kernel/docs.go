// Package kernel holds the value objects shared by the fulfillment domain
// model: identifiers, positions and sizes inside containers, and display
// colours.
//
// The package includes:
//   - UUID: identifier for shipments and other entities without a business key
//   - Position: non-negative (x, y, z) point inside a container
//   - Dimensions: positive depth, height and length of an item or container
//   - Color: RGB colour used when rendering packed items
//
// All types are immutable. Their zero values are invalid and fail Validate,
// so callers can tell a missing argument from a real one.
package kernel
