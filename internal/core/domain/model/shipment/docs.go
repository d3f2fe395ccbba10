// Package shipment provides the Shipment entity and the Status state machine
// that drives it from preparation to delivery.
//
// State transitions:
//
//	AWAITS_TREATMENT ──> IN_TREATMENT ──> CLOSED ──> SHIPPED ──> RECEIVED
//	        │                 │              │          │
//	        └─────────────────┴──────────────┴──────────┴──> CANCELLED
//
// CANCELLED is reachable from every state except RECEIVED. Containers can be
// added and removed only while IN_TREATMENT, and reaching CLOSED requires at
// least one container and a successful validation of every container.
package shipment
