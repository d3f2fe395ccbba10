package commands

import (
	"context"
	"fmt"

	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
)

const (
	OrdersByStateChartName    = "orders-by-state-chart"
	OrdersByCustomerChartName = "orders-by-customer-chart"
)

// ItemsSentChartName names the items-sent chart of one order.
func ItemsSentChartName(orderID int) string {
	return fmt.Sprintf("order-%d-items-chart", orderID)
}

// ExportOrderCommandHandler exports one order and its items-sent chart.
// The unit of work is only read from and is always rolled back.
type ExportOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	exporter   ports.OrderExporter
	charts     services.ChartBuilder
}

// NewExportOrderCommandHandler creates the handler.
func NewExportOrderCommandHandler(
	uowFactory OrderUoWFactory,
	exporter ports.OrderExporter,
	charts services.ChartBuilder,
) ExportOrderCommandHandler {
	return ExportOrderCommandHandler{
		uowFactory: uowFactory,
		exporter:   exporter,
		charts:     charts,
	}
}

// Handle returns the locations written by the exporter, order document first.
func (h ExportOrderCommandHandler) Handle(ctx context.Context, cmd ExportOrderCommand) ([]string, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	chart, err := h.charts.ItemsSentChart(o)
	if err != nil {
		return nil, err
	}

	orderPath, err := h.exporter.ExportOrder(ctx, o)
	if err != nil {
		return nil, err
	}

	chartPath, err := h.exporter.ExportChart(ctx, ItemsSentChartName(o.ID()), chart)
	if err != nil {
		return nil, err
	}

	return []string{orderPath, chartPath}, nil
}

// ExportChartsCommandHandler exports the orders-by-state and
// orders-by-customer charts.
type ExportChartsCommandHandler struct {
	uowFactory OrderUoWFactory
	exporter   ports.OrderExporter
	charts     services.ChartBuilder
}

// NewExportChartsCommandHandler creates the handler.
func NewExportChartsCommandHandler(
	uowFactory OrderUoWFactory,
	exporter ports.OrderExporter,
	charts services.ChartBuilder,
) ExportChartsCommandHandler {
	return ExportChartsCommandHandler{
		uowFactory: uowFactory,
		exporter:   exporter,
		charts:     charts,
	}
}

// Handle returns the locations of both charts.
func (h ExportChartsCommandHandler) Handle(ctx context.Context, cmd ExportChartsCommand) ([]string, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orders, err := uow.OrderRepository().GetAll(ctx)
	if err != nil {
		return nil, err
	}

	byState, err := h.charts.OrdersByStateChart(orders)
	if err != nil {
		return nil, err
	}

	byCustomer, err := h.charts.OrdersByCustomerChart(orders)
	if err != nil {
		return nil, err
	}

	statePath, err := h.exporter.ExportChart(ctx, OrdersByStateChartName, byState)
	if err != nil {
		return nil, err
	}

	customerPath, err := h.exporter.ExportChart(ctx, OrdersByCustomerChartName, byCustomer)
	if err != nil {
		return nil, err
	}

	return []string{statePath, customerPath}, nil
}
