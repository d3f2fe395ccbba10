package shipment_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/packing"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/pkg/errs"
)

func newClosedContainer(t *testing.T, reference string, items ...string) *packing.Container {
	t.Helper()
	c, err := packing.NewContainer(reference, kernel.Blue(), kernel.Black())
	require.NoError(t, err)
	for i, ref := range items {
		item, err := packing.NewItem(ref, "", 1, 1, 1)
		require.NoError(t, err)
		_, err = c.AddItem(item, kernel.MustNewPosition(i, 0, 0), kernel.Blue())
		require.NoError(t, err)
	}
	require.NoError(t, c.Close())
	return c
}

// newShipmentIn walks a fresh shipment through the legal path to status.
func newShipmentIn(t *testing.T, status shipment.Status) *shipment.Shipment {
	t.Helper()
	s, err := shipment.NewShipment(kernel.NewUUID())
	require.NoError(t, err)

	path := map[shipment.Status][]shipment.Status{
		shipment.AwaitsTreatment: nil,
		shipment.InTreatment:     {shipment.InTreatment},
		shipment.Closed:          {shipment.InTreatment, shipment.Closed},
		shipment.Shipped:         {shipment.InTreatment, shipment.Closed, shipment.Shipped},
		shipment.Received:        {shipment.InTreatment, shipment.Closed, shipment.Shipped, shipment.Received},
		shipment.Cancelled:       {shipment.Cancelled},
	}

	for _, next := range path[status] {
		if next == shipment.Closed {
			_, err := s.AddContainer(newClosedContainer(t, "C-"+s.ID().String(), "ITEM"))
			require.NoError(t, err)
		}
		require.NoError(t, s.ChangeStatus(next))
	}
	require.Equal(t, status, s.Status())
	return s
}

func TestNewShipment(t *testing.T) {
	t.Run("starts awaiting treatment and empty", func(t *testing.T) {
		id := kernel.NewUUID()
		s, err := shipment.NewShipment(id)

		require.NoError(t, err)
		require.NoError(t, s.Validate())
		assert.True(t, id.IsEqual(s.ID()))
		assert.Equal(t, shipment.AwaitsTreatment, s.Status())
		assert.Empty(t, s.Containers())
		assert.InDelta(t, 0.0, s.Cost(), 0.0001)
	})

	t.Run("rejects zero id", func(t *testing.T) {
		_, err := shipment.NewShipment(kernel.UUID{})

		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("nil shipment is invalid", func(t *testing.T) {
		var s *shipment.Shipment

		assert.ErrorIs(t, s.Validate(), shipment.ErrShipmentIsNotConstructed)
	})
}

func TestShipment_ChangeStatus_IllegalPairsKeepStatus(t *testing.T) {
	legal := legalTransitions()

	for _, from := range shipment.Statuses() {
		for _, to := range shipment.Statuses() {
			if legal[[2]shipment.Status{from, to}] {
				continue
			}
			t.Run(from.String()+"->"+to.String(), func(t *testing.T) {
				s := newShipmentIn(t, from)

				err := s.ChangeStatus(to)

				var stateErr *errs.OrderStateError
				require.ErrorAs(t, err, &stateErr)
				assert.Equal(t, s.ID().String(), stateErr.Reference)
				assert.Equal(t, from, s.Status())
			})
		}
	}
}

func TestShipment_ChangeStatus_FullLifecycle(t *testing.T) {
	s := newShipmentIn(t, shipment.AwaitsTreatment)

	require.NoError(t, s.ChangeStatus(shipment.InTreatment))
	added, err := s.AddContainer(newClosedContainer(t, "C1", "ITEM1"))
	require.NoError(t, err)
	require.True(t, added)
	require.NoError(t, s.ChangeStatus(shipment.Closed))
	require.NoError(t, s.ChangeStatus(shipment.Shipped))
	require.NoError(t, s.ChangeStatus(shipment.Received))

	require.ErrorIs(t, s.ChangeStatus(shipment.InTreatment), errs.ErrOrderState)
	assert.Equal(t, shipment.Received, s.Status())
}

func TestShipment_ChangeStatus_CloseRequiresContainers(t *testing.T) {
	s := newShipmentIn(t, shipment.InTreatment)

	err := s.ChangeStatus(shipment.Closed)

	require.ErrorIs(t, err, errs.ErrOrderState)
	assert.Equal(t, shipment.InTreatment, s.Status())
}

func TestShipment_AddContainer_RejectsUnclosableContainer(t *testing.T) {
	items := make([]packing.PackedItem, 0, 2)
	for i := range 2 {
		item, err := packing.NewItem(fmt.Sprintf("I%d", i), "", 1, 1, 1)
		require.NoError(t, err)
		p, err := packing.NewPackedItem(item, kernel.MustNewPosition(0, 0, 0), kernel.Red(), kernel.Red())
		require.NoError(t, err)
		items = append(items, p)
	}

	overlapping, err := packing.RestoreContainer("BAD", kernel.Red(), kernel.Red(), items, false)
	require.NoError(t, err)
	require.ErrorIs(t, overlapping.Close(), errs.ErrPosition)

	s := newShipmentIn(t, shipment.InTreatment)
	_, err = s.AddContainer(overlapping)

	require.ErrorIs(t, err, errs.ErrContainer)
	assert.Equal(t, 0, s.NumberOfContainers())
}

func TestShipment_AddContainer(t *testing.T) {
	t.Run("status is checked before the argument", func(t *testing.T) {
		for _, status := range shipment.Statuses() {
			if status == shipment.InTreatment {
				continue
			}
			s := newShipmentIn(t, status)
			before := s.NumberOfContainers()

			_, err := s.AddContainer(nil)

			require.ErrorIs(t, err, errs.ErrOrderState, status.String())
			assert.Equal(t, before, s.NumberOfContainers())
		}
	})

	t.Run("nil container", func(t *testing.T) {
		_, err := newShipmentIn(t, shipment.InTreatment).AddContainer(nil)

		assert.ErrorIs(t, err, errs.ErrContainer)
	})

	t.Run("open container", func(t *testing.T) {
		c, err := packing.NewContainer("C1", kernel.Blue(), kernel.Black())
		require.NoError(t, err)

		_, err = newShipmentIn(t, shipment.InTreatment).AddContainer(c)

		assert.ErrorIs(t, err, errs.ErrContainer)
	})

	t.Run("duplicate reference is not inserted", func(t *testing.T) {
		s := newShipmentIn(t, shipment.InTreatment)
		_, err := s.AddContainer(newClosedContainer(t, "C1"))
		require.NoError(t, err)

		added, err := s.AddContainer(newClosedContainer(t, "C1", "X"))

		require.NoError(t, err)
		assert.False(t, added)
		assert.Equal(t, 1, s.NumberOfContainers())
	})
}

func TestShipment_RemoveContainer(t *testing.T) {
	t.Run("removes present container", func(t *testing.T) {
		s := newShipmentIn(t, shipment.InTreatment)
		c := newClosedContainer(t, "C1")
		_, err := s.AddContainer(c)
		require.NoError(t, err)

		removed, err := s.RemoveContainer(c)

		require.NoError(t, err)
		assert.True(t, removed)
		assert.False(t, s.ExistsContainer("C1"))
	})

	t.Run("missing container is not removed", func(t *testing.T) {
		removed, err := newShipmentIn(t, shipment.InTreatment).RemoveContainer(newClosedContainer(t, "C1"))

		require.NoError(t, err)
		assert.False(t, removed)
	})

	t.Run("not editable", func(t *testing.T) {
		s := newShipmentIn(t, shipment.Closed)
		c := s.Containers()[0]

		_, err := s.RemoveContainer(c)

		require.ErrorIs(t, err, errs.ErrOrderState)
		assert.Equal(t, 1, s.NumberOfContainers())
	})
}

func TestShipment_Queries(t *testing.T) {
	s := newShipmentIn(t, shipment.InTreatment)
	_, err := s.AddContainer(newClosedContainer(t, "C1", "A", "B"))
	require.NoError(t, err)
	_, err = s.AddContainer(newClosedContainer(t, "C2", "C"))
	require.NoError(t, err)

	c, ok := s.FindContainer("C2")
	require.True(t, ok)
	assert.Equal(t, "C2", c.Reference())
	_, ok = s.FindContainer("C3")
	assert.False(t, ok)

	assert.True(t, s.ContainsItem("B"))
	assert.False(t, s.ContainsItem("Z"))
	require.NoError(t, s.Validate())

	summary := s.Summary()
	assert.Equal(t, s.ID().String(), summary.ID)
	assert.Equal(t, shipment.InTreatment, summary.Status)
	assert.Equal(t, 2, summary.Containers)
	assert.Equal(t, 3, summary.Items)
	assert.InDelta(t, 2*shipment.CostPerContainer, summary.Cost, 0.0001)
}

func TestRestoreShipment(t *testing.T) {
	t.Run("restores status and containers", func(t *testing.T) {
		id := kernel.NewUUID()
		s, err := shipment.RestoreShipment(id, shipment.Shipped, []*packing.Container{newClosedContainer(t, "C1", "A")})

		require.NoError(t, err)
		assert.Equal(t, shipment.Shipped, s.Status())
		assert.True(t, s.ContainsItem("A"))
	})

	t.Run("delivered shipment without containers", func(t *testing.T) {
		_, err := shipment.RestoreShipment(kernel.NewUUID(), shipment.Received, nil)

		assert.ErrorIs(t, err, errs.ErrOrderState)
	})

	t.Run("cancelled shipment without containers", func(t *testing.T) {
		_, err := shipment.RestoreShipment(kernel.NewUUID(), shipment.Cancelled, nil)

		assert.NoError(t, err)
	})

	t.Run("invalid status and duplicate container", func(t *testing.T) {
		_, err := shipment.RestoreShipment(kernel.NewUUID(), shipment.Unknown,
			[]*packing.Container{newClosedContainer(t, "C1"), newClosedContainer(t, "C1")})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.ErrorIs(t, err, errs.ErrContainer)
	})
}

func TestShipment_RemoveContainerByReference(t *testing.T) {
	s := newShipmentIn(t, shipment.InTreatment)
	_, err := s.AddContainer(newClosedContainer(t, "C1"))
	require.NoError(t, err)

	removed, err := s.RemoveContainerByReference("C2")
	require.NoError(t, err)
	assert.False(t, removed)

	removed, err = s.RemoveContainerByReference("C1")
	require.NoError(t, err)
	assert.True(t, removed)

	_, err = newShipmentIn(t, shipment.AwaitsTreatment).RemoveContainerByReference("C1")
	assert.ErrorIs(t, err, errs.ErrOrderState)
}
