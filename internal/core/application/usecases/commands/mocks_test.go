package commands_test

import (
	"context"
	"io"
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/packing"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id int) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByCustomer(ctx context.Context, customerID int) ([]*order.Order, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) Remove(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockOrderImporter struct{ mock.Mock }

func (m *MockOrderImporter) Import(ctx context.Context, document io.Reader) (*order.Order, error) {
	args := m.Called(ctx, document)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockOrderExporter struct{ mock.Mock }

func (m *MockOrderExporter) ExportOrder(ctx context.Context, o *order.Order) (string, error) {
	args := m.Called(ctx, o)
	return args.String(0), args.Error(1)
}

func (m *MockOrderExporter) ExportChart(ctx context.Context, name string, chart services.Chart) (string, error) {
	args := m.Called(ctx, name, chart)
	return args.String(0), args.Error(1)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, event ports.OrderEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func newItem(t *testing.T, reference string) *packing.Item {
	t.Helper()
	item, err := packing.NewItem(reference, "item "+reference, 1, 1, 1)
	require.NoError(t, err)
	return item
}

func newOrder(t *testing.T, id int, references ...string) *order.Order {
	t.Helper()
	o := order.NewOrder()
	require.NoError(t, o.SetID(id))
	for _, ref := range references {
		_, err := o.Add(newItem(t, ref))
		require.NoError(t, err)
	}
	return o
}

func addShipment(t *testing.T, o *order.Order, status shipment.Status) *shipment.Shipment {
	t.Helper()
	s, err := shipment.NewShipment(kernel.NewUUID())
	require.NoError(t, err)
	_, err = o.AddShipment(s)
	require.NoError(t, err)
	if status != shipment.AwaitsTreatment {
		require.NoError(t, o.ChangeShipmentStatus(s.ID(), status))
	}
	return s
}

// receiveAll packs every order item into one container and walks the
// shipment to RECEIVED.
func receiveAll(t *testing.T, o *order.Order) *shipment.Shipment {
	t.Helper()
	s := addShipment(t, o, shipment.InTreatment)
	c, err := packing.NewContainer("C1", kernel.White(), kernel.Black())
	require.NoError(t, err)
	for i, item := range o.Items() {
		_, err = c.AddItem(item, kernel.MustNewPosition(i, 0, 0), kernel.Red())
		require.NoError(t, err)
	}
	require.NoError(t, c.Close())
	_, err = o.AddContainerToShipment(s.ID(), c)
	require.NoError(t, err)
	for _, next := range []shipment.Status{shipment.Closed, shipment.Shipped, shipment.Received} {
		require.NoError(t, o.ChangeShipmentStatus(s.ID(), next))
	}
	return s
}

// newTx wires a repository into a single-use unit of work.
func newTx(repo *MockOrderRepository) (*MockOrderUoW, *MockOrderUoWFactory) {
	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	uow.On("OrderRepository").Return(repo).Maybe()
	return uow, factory
}
