package cmd

import (
	"context"
	"log/slog"

	"fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/out/jsonfile"
	"fulfillment/internal/adapters/out/memory"
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/application/workflow"
	"fulfillment/internal/core/domain/model/party"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	uowFactory commands.OrderUoWFactory
	orders     queries.OrderReader
	importer   ports.OrderImporter
	exporter   ports.OrderExporter
	publisher  ports.EventPublisher
	charts     services.ChartBuilder
	logger     *slog.Logger
}

// NewCompositionRoot wires the service against PostgreSQL. Customer numbers
// continue after the highest one already stored.
func NewCompositionRoot(
	ctx context.Context,
	configs Config,
	gormDB *gorm.DB,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) (CompositionRoot, error) {
	if logger == nil {
		logger = slog.Default()
	}
	uowFactory := postgres.NewGormUnitOfWorkFactory(gormDB)
	reader := orderrepo.NewGormOrderRepository(gormDB)

	maxCustomer, err := reader.MaxCustomerNumber(ctx)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		configs: configs,
		uowFactory: FuncOrderUoWFactory(func() commands.OrderUoW {
			return uowFactory.Create()
		}),
		orders:    reader,
		importer:  jsonfile.NewImporter(party.NewSequenceGenerator(maxCustomer + 1)),
		exporter:  jsonfile.NewExporter(configs.ExportDir),
		publisher: publisher,
		charts:    services.NewChartBuilder(),
		logger:    logger,
	}, nil
}

// NewMemoryCompositionRoot wires the use cases against a fresh in-memory
// registry. Events are not published.
func NewMemoryCompositionRoot(configs Config, logger *slog.Logger) CompositionRoot {
	if logger == nil {
		logger = slog.Default()
	}
	registry := memory.NewOrderRegistry()
	uowFactory := memory.NewUnitOfWorkFactory(registry)

	return CompositionRoot{
		configs: configs,
		uowFactory: FuncOrderUoWFactory(func() commands.OrderUoW {
			return uowFactory.Create()
		}),
		orders:   registry,
		importer: jsonfile.NewImporter(party.NewSequenceGenerator(1)),
		exporter: jsonfile.NewExporter(configs.ExportDir),
		charts:   services.NewChartBuilder(),
		logger:   logger,
	}
}

func (c *CompositionRoot) CreateImportOrderCommandHandler() commands.ImportOrderCommandHandler {
	return commands.NewImportOrderCommandHandler(c.uowFactory, c.importer, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() commands.CreateShipmentCommandHandler {
	return commands.NewCreateShipmentCommandHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateRemoveShipmentCommandHandler() commands.RemoveShipmentCommandHandler {
	return commands.NewRemoveShipmentCommandHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateChangeShipmentStatusCommandHandler() commands.ChangeShipmentStatusCommandHandler {
	return commands.NewChangeShipmentStatusCommandHandler(c.uowFactory, c.publisher, c.logger)
}

func (c *CompositionRoot) CreatePackContainerCommandHandler() commands.PackContainerCommandHandler {
	return commands.NewPackContainerCommandHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateCloseOrderCommandHandler() commands.CloseOrderCommandHandler {
	return commands.NewCloseOrderCommandHandler(c.uowFactory, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateCleanOrdersCommandHandler() commands.CleanOrdersCommandHandler {
	return commands.NewCleanOrdersCommandHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateExportOrderCommandHandler() commands.ExportOrderCommandHandler {
	return commands.NewExportOrderCommandHandler(c.uowFactory, c.exporter, c.charts)
}

func (c *CompositionRoot) CreateExportChartsCommandHandler() commands.ExportChartsCommandHandler {
	return commands.NewExportChartsCommandHandler(c.uowFactory, c.exporter, c.charts)
}

func (c *CompositionRoot) CreateGetOrderSummaryQueryHandler() queries.GetOrderSummaryQueryHandler {
	return queries.NewGetOrderSummaryQueryHandler(c.orders)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.orders)
}

func (c *CompositionRoot) CreateServer() *http.Server {
	return http.NewServer(http.Handlers{
		ImportOrder:          c.CreateImportOrderCommandHandler(),
		CreateShipment:       c.CreateCreateShipmentCommandHandler(),
		RemoveShipment:       c.CreateRemoveShipmentCommandHandler(),
		ChangeShipmentStatus: c.CreateChangeShipmentStatusCommandHandler(),
		PackContainer:        c.CreatePackContainerCommandHandler(),
		CloseOrder:           c.CreateCloseOrderCommandHandler(),
		ExportOrder:          c.CreateExportOrderCommandHandler(),
		ExportCharts:         c.CreateExportChartsCommandHandler(),
		GetOrderSummary:      c.CreateGetOrderSummaryQueryHandler(),
		GetOrders:            c.CreateGetOrdersQueryHandler(),
	}, c.logger)
}

func (c *CompositionRoot) CreateWorkflowDriver() *workflow.Driver {
	return workflow.NewDriver(workflow.Handlers{
		ImportOrder:          c.CreateImportOrderCommandHandler(),
		CreateShipment:       c.CreateCreateShipmentCommandHandler(),
		ChangeShipmentStatus: c.CreateChangeShipmentStatusCommandHandler(),
		PackContainer:        c.CreatePackContainerCommandHandler(),
		CloseOrder:           c.CreateCloseOrderCommandHandler(),
		ExportOrder:          c.CreateExportOrderCommandHandler(),
		GetOrderSummary:      c.CreateGetOrderSummaryQueryHandler(),
	}, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateCleanOrdersCommandHandler(),
		c.CreateExportChartsCommandHandler(),
		jobs.Schedules{
			OrderCleanup: c.configs.CleanupSchedule,
			ChartsExport: c.configs.ChartsSchedule,
		},
		c.logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
