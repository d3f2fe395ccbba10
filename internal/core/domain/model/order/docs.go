// Package order provides the Order aggregate root of the fulfillment domain.
//
// An Order owns its items, its shipments (and through them every container
// and packed item), its customer and its destination. It answers the
// aggregate questions of the domain:
//   - which items remain to be sent
//   - whether the order is closed (nothing remains to be sent)
//   - what the order costs (received shipments only)
//
// and drives the close workflow, which validates every shipment and then
// cancels every shipment that was not received.
//
// Each Order carries its own mutex. Every exported method holds it for its
// whole duration, so an Order and everything it owns form a single unit of
// mutual exclusion. Shipments and containers returned by getters are meant
// for reading; change them through the Order methods.
package order
