package services_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/packing"
	"fulfillment/internal/core/domain/model/party"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrder(t *testing.T, customer *party.Customer, items ...string) *order.Order {
	t.Helper()
	o := order.NewOrder()
	for _, ref := range items {
		item, err := packing.NewItem(ref, "", 1, 1, 1)
		require.NoError(t, err)
		_, err = o.Add(item)
		require.NoError(t, err)
	}
	if customer != nil {
		require.NoError(t, o.SetCustomer(customer))
	}
	return o
}

// receive packs the given items of o into one container of a new shipment
// and walks the shipment to RECEIVED.
func receive(t *testing.T, o *order.Order, items ...string) {
	t.Helper()
	s, err := shipment.NewShipment(kernel.NewUUID())
	require.NoError(t, err)
	_, err = o.AddShipment(s)
	require.NoError(t, err)
	require.NoError(t, o.ChangeShipmentStatus(s.ID(), shipment.InTreatment))

	c, err := packing.NewContainer("C-"+s.ID().String(), kernel.Blue(), kernel.Black())
	require.NoError(t, err)
	for i, ref := range items {
		item, ok := o.FindItem(ref)
		require.True(t, ok)
		_, err = c.AddItem(item, kernel.MustNewPosition(i, 0, 0), kernel.Blue())
		require.NoError(t, err)
	}
	require.NoError(t, c.Close())
	_, err = o.AddContainerToShipment(s.ID(), c)
	require.NoError(t, err)

	for _, next := range []shipment.Status{shipment.Closed, shipment.Shipped, shipment.Received} {
		require.NoError(t, o.ChangeShipmentStatus(s.ID(), next))
	}
}

func customer(t *testing.T, id int, name string) *party.Customer {
	t.Helper()
	c, err := party.RestoreCustomer(id, name, party.Address{}, party.Address{})
	require.NoError(t, err)
	return c
}

func TestChartBuilder_ItemsSentChart(t *testing.T) {
	builder := services.NewChartBuilder()

	t.Run("half sent", func(t *testing.T) {
		o := newOrder(t, nil, "A", "B")
		receive(t, o, "A")

		chart, err := builder.ItemsSentChart(o)

		require.NoError(t, err)
		assert.Equal(t, services.ChartPie, chart.Type)
		assert.Equal(t, []string{"Items not sent", "Items sent"}, chart.Labels)
		require.Len(t, chart.Datasets, 1)
		assert.InDeltaSlice(t, []float64{0.5, 0.5}, chart.Datasets[0].Data, 0.0001)
	})

	t.Run("order without items is fully sent", func(t *testing.T) {
		chart, err := builder.ItemsSentChart(order.NewOrder())

		require.NoError(t, err)
		assert.InDeltaSlice(t, []float64{0, 1}, chart.Datasets[0].Data, 0.0001)
	})

	t.Run("nil order", func(t *testing.T) {
		_, err := builder.ItemsSentChart(nil)

		assert.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
	})
}

func TestChartBuilder_OrdersByStateChart(t *testing.T) {
	builder := services.NewChartBuilder()
	open := newOrder(t, nil, "A")
	closed := newOrder(t, nil, "A")
	receive(t, closed, "A")

	chart, err := builder.OrdersByStateChart([]*order.Order{open, closed, newOrder(t, nil, "B")})

	require.NoError(t, err)
	assert.Equal(t, services.ChartBar, chart.Type)
	assert.Equal(t, []string{"Open", "Closed"}, chart.Labels)
	assert.Equal(t, []float64{2, 1}, chart.Datasets[0].Data)

	_, err = builder.OrdersByStateChart([]*order.Order{nil})
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestChartBuilder_OrdersByCustomerChart(t *testing.T) {
	builder := services.NewChartBuilder()
	bart := customer(t, 2, "Bart")
	lisa := customer(t, 1, "Lisa")

	chart, err := builder.OrdersByCustomerChart([]*order.Order{
		newOrder(t, bart, "A"),
		newOrder(t, lisa, "A"),
		newOrder(t, bart, "A"),
		newOrder(t, nil, "A"),
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"Lisa", "Bart"}, chart.Labels)
	assert.Equal(t, []float64{1, 2}, chart.Datasets[0].Data)
	assert.Equal(t, "Orders by customer", chart.Title)
}
