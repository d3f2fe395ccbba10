package ports

import (
	"context"
	"time"
)

// EventType names a change notification.
type EventType string

const (
	OrderImported         EventType = "order.imported"
	OrderClosed           EventType = "order.closed"
	ShipmentStatusChanged EventType = "shipment.status_changed"
)

// OrderEvent notifies other services of an order change.
// ShipmentID and Status are set for shipment events only.
type OrderEvent struct {
	Type       EventType
	OrderID    int
	ShipmentID string
	Status     string
	OccurredAt time.Time
}

// EventPublisher delivers order events.
type EventPublisher interface {
	Publish(ctx context.Context, event OrderEvent) error
}
