package order

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/packing"
	"fulfillment/internal/core/domain/model/party"
	"fulfillment/internal/core/domain/model/shipment"
)

// Snapshot is a detached copy of the whole order subtree. Nothing in it
// points back into the order, so it can be read without the order lock.
type Snapshot struct {
	ID          int
	Date        time.Time
	HasDate     bool
	Destination *party.Person
	Customer    *party.Customer
	Items       []packing.Item
	Shipments   []ShipmentSnapshot
}

// ShipmentSnapshot is a shipment as seen by Order.Snapshot.
type ShipmentSnapshot struct {
	ID         kernel.UUID
	Status     shipment.Status
	Cost       float64
	Containers []ContainerSnapshot
}

// ContainerSnapshot is a container as seen by Order.Snapshot.
type ContainerSnapshot struct {
	Reference      string
	FillColor      kernel.Color
	EdgeColor      kernel.Color
	Closed         bool
	OccupiedVolume int
	Items          []packing.PackedItem
}

// Snapshot copies the order, its shipments, containers and packed items in
// one pass under the order lock.
func (o *Order) Snapshot() Snapshot {
	o.mu.Lock()
	defer o.mu.Unlock()

	snap := Snapshot{
		ID:        o.id,
		Date:      o.date,
		HasDate:   !o.date.IsZero(),
		Items:     make([]packing.Item, 0, len(o.items)),
		Shipments: make([]ShipmentSnapshot, 0, len(o.shipments)),
	}
	if o.destination != nil {
		dest := *o.destination
		snap.Destination = &dest
	}
	if o.customer != nil {
		customer := *o.customer
		snap.Customer = &customer
	}
	for _, item := range o.items {
		snap.Items = append(snap.Items, *item)
	}

	for _, s := range o.shipments {
		ss := ShipmentSnapshot{
			ID:         s.ID(),
			Status:     s.Status(),
			Cost:       s.Cost(),
			Containers: make([]ContainerSnapshot, 0, s.NumberOfContainers()),
		}
		for _, c := range s.Containers() {
			ss.Containers = append(ss.Containers, ContainerSnapshot{
				Reference:      c.Reference(),
				FillColor:      c.FillColor(),
				EdgeColor:      c.EdgeColor(),
				Closed:         c.IsClosed(),
				OccupiedVolume: c.OccupiedVolume(),
				Items:          c.PackedItems(),
			})
		}
		snap.Shipments = append(snap.Shipments, ss)
	}

	return snap
}
