package order_test

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/packing"
	"fulfillment/internal/core/domain/model/party"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newItem(t *testing.T, reference string) *packing.Item {
	t.Helper()
	item, err := packing.NewItem(reference, "item "+reference, 1, 1, 1)
	require.NoError(t, err)
	return item
}

func newOrderWithItems(t *testing.T, references ...string) *order.Order {
	t.Helper()
	o := order.NewOrder()
	require.NoError(t, o.SetID(1))
	for _, ref := range references {
		added, err := o.Add(newItem(t, ref))
		require.NoError(t, err)
		require.True(t, added)
	}
	return o
}

func closedContainer(t *testing.T, reference string, items ...string) *packing.Container {
	t.Helper()
	c, err := packing.NewContainer(reference, kernel.Blue(), kernel.Black())
	require.NoError(t, err)
	for i, ref := range items {
		_, err := c.AddItem(newItem(t, ref), kernel.MustNewPosition(i, 0, 0), kernel.Blue())
		require.NoError(t, err)
	}
	require.NoError(t, c.Close())
	return c
}

// attachShipment attaches a shipment packing items in one container and
// walks it to status.
func attachShipment(t *testing.T, o *order.Order, status shipment.Status, items ...string) *shipment.Shipment {
	t.Helper()
	s, err := shipment.NewShipment(kernel.NewUUID())
	require.NoError(t, err)
	added, err := o.AddShipment(s)
	require.NoError(t, err)
	require.True(t, added)

	if status == shipment.AwaitsTreatment {
		return s
	}
	if status == shipment.Cancelled {
		require.NoError(t, o.ChangeShipmentStatus(s.ID(), shipment.Cancelled))
		return s
	}

	require.NoError(t, o.ChangeShipmentStatus(s.ID(), shipment.InTreatment))
	if len(items) > 0 {
		_, err = o.AddContainerToShipment(s.ID(), closedContainer(t, "C-"+s.ID().String(), items...))
		require.NoError(t, err)
	}
	for _, next := range []shipment.Status{shipment.Closed, shipment.Shipped, shipment.Received} {
		if s.Status() == status {
			break
		}
		require.NoError(t, o.ChangeShipmentStatus(s.ID(), next))
	}
	require.Equal(t, status, s.Status())
	return s
}

func TestNewOrder(t *testing.T) {
	o := order.NewOrder()

	require.NoError(t, o.Validate())
	assert.Equal(t, order.UnsetID, o.ID())
	assert.Equal(t, 0, o.NumberOfItems())
	assert.Empty(t, o.Shipments())
	assert.Nil(t, o.Customer())
	_, ok := o.Date()
	assert.False(t, ok)
	_, ok = o.Destination()
	assert.False(t, ok)
}

func TestOrder_Validate_ZeroValue(t *testing.T) {
	var nilOrder *order.Order

	require.ErrorIs(t, nilOrder.Validate(), order.ErrOrderIsNotConstructed)
	assert.ErrorIs(t, (&order.Order{}).Validate(), order.ErrOrderIsNotConstructed)
}

func TestOrder_SetID(t *testing.T) {
	t.Run("set once", func(t *testing.T) {
		o := order.NewOrder()

		require.NoError(t, o.SetID(7))
		require.NoError(t, o.SetID(7))
		require.ErrorIs(t, o.SetID(8), errs.ErrOrderState)
		assert.Equal(t, 7, o.ID())
	})

	t.Run("negative", func(t *testing.T) {
		o := order.NewOrder()

		require.ErrorIs(t, o.SetID(-5), errs.ErrValueIsOutOfRange)
		assert.Equal(t, order.UnsetID, o.ID())
	})
}

func TestOrder_SetDate(t *testing.T) {
	tests := []struct {
		name             string
		day, month, year int
		wantErr          bool
	}{
		{name: "regular", day: 15, month: 3, year: 2024},
		{name: "leap day", day: 29, month: 2, year: 2024},
		{name: "not a leap year", day: 29, month: 2, year: 2023, wantErr: true},
		{name: "month 13", day: 1, month: 13, year: 2024, wantErr: true},
		{name: "day 0", day: 0, month: 1, year: 2024, wantErr: true},
		{name: "year 0", day: 1, month: 1, year: 0, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := order.NewOrder()

			err := o.SetDate(tt.day, tt.month, tt.year)

			date, ok := o.Date()
			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
				assert.False(t, ok)
				return
			}
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, time.Date(tt.year, time.Month(tt.month), tt.day, 0, 0, 0, 0, time.UTC), date)
		})
	}
}

func TestOrder_Parties(t *testing.T) {
	o := order.NewOrder()
	addr := party.NewAddress("Main St", "Springfield", "USA", "IL", 742)

	t.Run("destination", func(t *testing.T) {
		p, err := party.NewPerson("Homer", addr)
		require.NoError(t, err)

		require.NoError(t, o.SetDestination(p))
		got, ok := o.Destination()
		require.True(t, ok)
		assert.Equal(t, "Homer", got.Name())

		require.ErrorIs(t, o.SetDestination(party.Person{}), errs.ErrOrderState)
	})

	t.Run("customer", func(t *testing.T) {
		c, err := party.NewCustomer(party.NewSequenceGenerator(3), "Marge", addr, addr)
		require.NoError(t, err)

		require.NoError(t, o.SetCustomer(c))
		assert.Equal(t, 3, o.Customer().ID())

		require.ErrorIs(t, o.SetCustomer(nil), errs.ErrOrderState)
		assert.Equal(t, 3, o.Customer().ID())
	})
}

func TestOrder_Add(t *testing.T) {
	t.Run("nil item", func(t *testing.T) {
		_, err := order.NewOrder().Add(nil)

		assert.ErrorIs(t, err, errs.ErrOrderState)
	})

	t.Run("duplicate reference is a no-op", func(t *testing.T) {
		o := newOrderWithItems(t, "A")

		added, err := o.Add(newItem(t, "A"))

		require.NoError(t, err)
		assert.False(t, added)
		assert.Equal(t, 1, o.NumberOfItems())
	})

	t.Run("find item", func(t *testing.T) {
		o := newOrderWithItems(t, "A", "B")

		item, ok := o.FindItem("B")
		require.True(t, ok)
		assert.Equal(t, "B", item.Reference())
		_, ok = o.FindItem("C")
		assert.False(t, ok)
	})
}

func TestOrder_AddShipment(t *testing.T) {
	t.Run("nil shipment", func(t *testing.T) {
		_, err := newOrderWithItems(t, "A").AddShipment(nil)

		assert.ErrorIs(t, err, errs.ErrOrderState)
	})

	t.Run("duplicate id is a no-op", func(t *testing.T) {
		o := newOrderWithItems(t, "A")
		s := attachShipment(t, o, shipment.AwaitsTreatment)

		added, err := o.AddShipment(s)

		require.NoError(t, err)
		assert.False(t, added)
		assert.Len(t, o.Shipments(), 1)
	})

	t.Run("closed order", func(t *testing.T) {
		o := newOrderWithItems(t, "A")
		attachShipment(t, o, shipment.Received, "A")
		require.True(t, o.IsClosed())

		s, err := shipment.NewShipment(kernel.NewUUID())
		require.NoError(t, err)
		_, err = o.AddShipment(s)

		require.ErrorIs(t, err, errs.ErrOrderState)
		assert.Len(t, o.Shipments(), 1)
	})

	t.Run("order without items is closed", func(t *testing.T) {
		s, err := shipment.NewShipment(kernel.NewUUID())
		require.NoError(t, err)

		_, err = order.NewOrder().AddShipment(s)

		assert.ErrorIs(t, err, errs.ErrOrderState)
	})
}

func TestOrder_RemoveShipment(t *testing.T) {
	o := newOrderWithItems(t, "A")
	s := attachShipment(t, o, shipment.InTreatment)

	removed, err := o.RemoveShipment(s)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = o.RemoveShipment(s)
	require.NoError(t, err)
	assert.False(t, removed)

	_, err = o.RemoveShipment(nil)
	assert.ErrorIs(t, err, errs.ErrOrderState)
}

func TestOrder_ShipmentHelpers(t *testing.T) {
	t.Run("unknown shipment", func(t *testing.T) {
		o := newOrderWithItems(t, "A")
		id := kernel.NewUUID()

		require.ErrorIs(t, o.ChangeShipmentStatus(id, shipment.InTreatment), errs.ErrObjectNotFound)
		_, err := o.AddContainerToShipment(id, closedContainer(t, "C1", "A"))
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		_, err = o.RemoveContainerFromShipment(id, "C1")
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("container with foreign item", func(t *testing.T) {
		o := newOrderWithItems(t, "A")
		s := attachShipment(t, o, shipment.InTreatment)

		_, err := o.AddContainerToShipment(s.ID(), closedContainer(t, "C1", "Z"))

		require.ErrorIs(t, err, errs.ErrContainer)
		assert.Equal(t, 0, s.NumberOfContainers())
	})

	t.Run("add then remove container", func(t *testing.T) {
		o := newOrderWithItems(t, "A")
		s := attachShipment(t, o, shipment.InTreatment)

		added, err := o.AddContainerToShipment(s.ID(), closedContainer(t, "C1", "A"))
		require.NoError(t, err)
		require.True(t, added)

		removed, err := o.RemoveContainerFromShipment(s.ID(), "C1")
		require.NoError(t, err)
		assert.True(t, removed)

		found, ok := o.FindShipment(s.ID())
		require.True(t, ok)
		assert.Equal(t, 0, found.NumberOfContainers())
	})
}

func TestOrder_RemainingItems(t *testing.T) {
	t.Run("one received, one unpacked", func(t *testing.T) {
		o := newOrderWithItems(t, "A", "B")
		attachShipment(t, o, shipment.Received, "A")

		assert.Equal(t, 1, o.NumberOfRemainingItemsToSend())
		remaining := o.RemainingItemsToSend()
		require.Len(t, remaining, 1)
		assert.Equal(t, "B", remaining[0].Reference())
		assert.False(t, o.IsClosed())
	})

	t.Run("only shipped and received count as sent", func(t *testing.T) {
		o := newOrderWithItems(t, "A", "B", "C", "D", "E")
		attachShipment(t, o, shipment.InTreatment, "A")
		attachShipment(t, o, shipment.Closed, "B")
		attachShipment(t, o, shipment.Shipped, "C")
		attachShipment(t, o, shipment.Received, "D")

		assert.Equal(t, 3, o.NumberOfRemainingItemsToSend())
	})

	t.Run("item packed in cancelled and received shipments is sent", func(t *testing.T) {
		o := newOrderWithItems(t, "A")
		s := attachShipment(t, o, shipment.Closed, "A")
		require.NoError(t, o.ChangeShipmentStatus(s.ID(), shipment.Cancelled))
		attachShipment(t, o, shipment.Received, "A")

		assert.Equal(t, 0, o.NumberOfRemainingItemsToSend())
		assert.True(t, o.IsClosed())
	})
}

func TestOrder_Cost(t *testing.T) {
	o := newOrderWithItems(t, "A", "B", "C")
	received := attachShipment(t, o, shipment.Received, "A")
	attachShipment(t, o, shipment.Shipped, "B")
	attachShipment(t, o, shipment.Closed, "C")

	assert.InDelta(t, shipment.CostPerContainer, o.Cost(), 0.0001)
	assert.InDelta(t, received.Cost(), o.Cost(), 0.0001)
}

func TestOrder_Close(t *testing.T) {
	t.Run("cancels every shipment that was not received", func(t *testing.T) {
		o := newOrderWithItems(t, "A", "B")
		received := attachShipment(t, o, shipment.Received, "A")
		inTreatment := attachShipment(t, o, shipment.InTreatment)

		require.NoError(t, o.Close())

		assert.Equal(t, shipment.Received, received.Status())
		assert.Equal(t, shipment.Cancelled, inTreatment.Status())
	})

	t.Run("already cancelled shipments stay cancelled", func(t *testing.T) {
		o := newOrderWithItems(t, "A")
		cancelled := attachShipment(t, o, shipment.Cancelled)

		require.NoError(t, o.Close())
		assert.Equal(t, shipment.Cancelled, cancelled.Status())
	})
}

func TestOrder_Clean(t *testing.T) {
	o := newOrderWithItems(t, "A", "B")
	attachShipment(t, o, shipment.Cancelled)
	attachShipment(t, o, shipment.Cancelled)
	kept := attachShipment(t, o, shipment.InTreatment)

	assert.Equal(t, 2, o.Clean())
	assert.Equal(t, 0, o.Clean())
	shipments := o.Shipments()
	require.Len(t, shipments, 1)
	assert.True(t, kept.IsEqual(shipments[0]))
}

func TestOrder_Summary(t *testing.T) {
	o := newOrderWithItems(t, "A", "B")
	attachShipment(t, o, shipment.Received, "A")

	summary := o.Summary()

	assert.Equal(t, 1, summary.ID)
	assert.Equal(t, 2, summary.Items)
	assert.Equal(t, 1, summary.RemainingItems)
	assert.False(t, summary.Closed)
	assert.InDelta(t, shipment.CostPerContainer, summary.Cost, 0.0001)
	require.Len(t, summary.Shipments, 1)
	assert.Equal(t, shipment.Received, summary.Shipments[0].Status)
}

func TestOrder_Snapshot(t *testing.T) {
	o := newOrderWithItems(t, "A", "B", "C")
	require.NoError(t, o.SetDate(2, 1, 2025))
	shipped := attachShipment(t, o, shipment.Shipped, "A", "B")
	attachShipment(t, o, shipment.InTreatment)

	snap := o.Snapshot()

	assert.Equal(t, 1, snap.ID)
	assert.True(t, snap.HasDate)
	assert.Equal(t, time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC), snap.Date)
	assert.Nil(t, snap.Destination)
	assert.Nil(t, snap.Customer)
	require.Len(t, snap.Items, 3)
	assert.Equal(t, "C", snap.Items[2].Reference())

	require.Len(t, snap.Shipments, 2)
	first := snap.Shipments[0]
	assert.True(t, first.ID.IsEqual(shipped.ID()))
	assert.Equal(t, shipment.Shipped, first.Status)
	require.Len(t, first.Containers, 1)
	assert.True(t, first.Containers[0].Closed)
	assert.Equal(t, 2, first.Containers[0].OccupiedVolume)
	assert.Equal(t, "#0000ff", first.Containers[0].FillColor.String())
	require.Len(t, first.Containers[0].Items, 2)
	assert.Equal(t, "B", first.Containers[0].Items[1].Reference())
	assert.Empty(t, snap.Shipments[1].Containers)

	t.Run("detached from later changes", func(t *testing.T) {
		require.NoError(t, o.ChangeShipmentStatus(shipped.ID(), shipment.Received))
		_, err := o.Add(newItem(t, "D"))
		require.NoError(t, err)

		assert.Equal(t, shipment.Shipped, snap.Shipments[0].Status)
		assert.Len(t, snap.Items, 3)
	})

	t.Run("order without date", func(t *testing.T) {
		snap := order.NewOrder().Snapshot()

		assert.Equal(t, order.UnsetID, snap.ID)
		assert.False(t, snap.HasDate)
		assert.Empty(t, snap.Shipments)
	})
}

func TestRestoreOrder(t *testing.T) {
	addr := party.NewAddress("Main St", "Springfield", "USA", "IL", 742)
	dest, err := party.NewPerson("Homer", addr)
	require.NoError(t, err)
	customer, err := party.RestoreCustomer(4, "Marge", addr, addr)
	require.NoError(t, err)
	date := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

	t.Run("restores everything", func(t *testing.T) {
		s, err := shipment.RestoreShipment(kernel.NewUUID(), shipment.Received,
			[]*packing.Container{closedContainer(t, "C1", "A")})
		require.NoError(t, err)

		o, err := order.RestoreOrder(9, date, &dest, customer,
			[]*packing.Item{newItem(t, "A")}, []*shipment.Shipment{s})

		require.NoError(t, err)
		assert.Equal(t, 9, o.ID())
		got, ok := o.Date()
		assert.True(t, ok)
		assert.Equal(t, date, got)
		assert.Equal(t, 4, o.Customer().ID())
		assert.True(t, o.IsClosed())
	})

	t.Run("unset id and no parties", func(t *testing.T) {
		o, err := order.RestoreOrder(order.UnsetID, time.Time{}, nil, nil, nil, nil)

		require.NoError(t, err)
		assert.Equal(t, order.UnsetID, o.ID())
	})

	t.Run("duplicate items", func(t *testing.T) {
		_, err := order.RestoreOrder(1, date, nil, nil,
			[]*packing.Item{newItem(t, "A"), newItem(t, "A")}, nil)

		assert.ErrorIs(t, err, errs.ErrOrderState)
	})
}

func TestOrder_ConcurrentSafety(t *testing.T) {
	o := newOrderWithItems(t, "A")

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(3)
		go func() {
			defer wg.Done()
			_, _ = o.Add(newItem(t, fmt.Sprintf("ITEM%d", i)))
		}()
		go func() {
			defer wg.Done()
			s, err := shipment.NewShipment(kernel.NewUUID())
			if err == nil {
				_, _ = o.AddShipment(s)
			}
		}()
		go func() {
			defer wg.Done()
			_ = o.Summary()
			_ = o.Snapshot()
			_ = o.NumberOfRemainingItemsToSend()
		}()
	}
	wg.Wait()

	assert.Equal(t, 51, o.NumberOfItems())
	assert.Len(t, o.Shipments(), 50)
}
