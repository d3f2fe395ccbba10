// Package services provides domain services that work across several orders
// or need a view of an order that does not belong on the aggregate itself.
//
// The package includes:
//   - ChartBuilder: builds the chart documents reported for one order and
//     for a set of orders
package services
