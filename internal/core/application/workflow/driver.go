// Package workflow drives one order end to end through the application
// layer: import, ship and pack, walk shipment statuses, close and export.
//
// The driver only sequences commands and queries; every rule is enforced by
// the domain model behind them, so a failed step leaves the stored order as
// the previous step committed it.
package workflow

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/pkg/errs"
)

// ContainerPlan describes one container to pack.
type ContainerPlan struct {
	Reference string
	Fill      kernel.Color
	Edge      kernel.Color
	Items     []commands.Placement
}

// ShipmentPlan describes one shipment: the containers packed while it is in
// treatment and the statuses it then walks through, in order.
type ShipmentPlan struct {
	Containers  []ContainerPlan
	Transitions []shipment.Status
}

// Plan is what to do with an imported order.
type Plan struct {
	Shipments []ShipmentPlan
	Close     bool
	Export    bool
}

// Result reports what Run did.
type Result struct {
	OrderID     int
	ShipmentIDs []kernel.UUID
	Exported    []string
	Summary     queries.GetOrderSummaryQueryResponse
}

// Handlers are the use cases the driver sequences.
type Handlers struct {
	ImportOrder          commands.ImportOrderCommandHandler
	CreateShipment       commands.CreateShipmentCommandHandler
	ChangeShipmentStatus commands.ChangeShipmentStatusCommandHandler
	PackContainer        commands.PackContainerCommandHandler
	CloseOrder           commands.CloseOrderCommandHandler
	ExportOrder          commands.ExportOrderCommandHandler
	GetOrderSummary      queries.GetOrderSummaryQueryHandler
}

// Driver runs plans against the application layer.
type Driver struct {
	handlers Handlers
	logger   *slog.Logger
	newID    func() kernel.UUID
}

// NewDriver creates a Driver. A nil logger falls back to slog.Default.
func NewDriver(handlers Handlers, logger *slog.Logger) *Driver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Driver{
		handlers: handlers,
		logger:   logger.With("component", "workflow"),
		newID:    kernel.NewUUID,
	}
}

// Run imports the document and applies the plan.
//
// Steps, each committed on its own:
//  1. import the order
//  2. per shipment: create it, move it to IN_TREATMENT, pack and attach
//     its containers, then apply its transitions
//  3. close the order when plan.Close is set
//  4. export the order and its items chart when plan.Export is set
//
// The first failing step stops the run. Its error is returned wrapped with
// the step name and keeps its errs kind for errors.Is / errors.As.
func (d *Driver) Run(ctx context.Context, document io.Reader, plan Plan) (Result, error) {
	if document == nil {
		return Result{}, errs.NewValueIsRequiredError("document")
	}
	body, err := io.ReadAll(document)
	if err != nil {
		return Result{}, fmt.Errorf("read order document: %w", err)
	}

	importCmd, err := commands.NewImportOrderCommand(body)
	if err != nil {
		return Result{}, err
	}
	orderID, err := d.handlers.ImportOrder.Handle(ctx, importCmd)
	if err != nil {
		return Result{}, fmt.Errorf("import order: %w", err)
	}
	d.logger.InfoContext(ctx, "order imported", "order_id", orderID)

	result := Result{OrderID: orderID}
	for i, sp := range plan.Shipments {
		id, err := d.runShipment(ctx, orderID, sp)
		if err != nil {
			return result, fmt.Errorf("shipment %d: %w", i+1, err)
		}
		result.ShipmentIDs = append(result.ShipmentIDs, id)
	}

	if plan.Close {
		closeCmd, err := commands.NewCloseOrderCommand(orderID)
		if err != nil {
			return result, err
		}
		if err = d.handlers.CloseOrder.Handle(ctx, closeCmd); err != nil {
			return result, fmt.Errorf("close order: %w", err)
		}
		d.logger.InfoContext(ctx, "order closed", "order_id", orderID)
	}

	summaryQuery, err := queries.NewGetOrderSummaryQuery(orderID)
	if err != nil {
		return result, err
	}
	if result.Summary, err = d.handlers.GetOrderSummary.Handle(ctx, summaryQuery); err != nil {
		return result, fmt.Errorf("order summary: %w", err)
	}

	if plan.Export {
		exportCmd, err := commands.NewExportOrderCommand(orderID)
		if err != nil {
			return result, err
		}
		if result.Exported, err = d.handlers.ExportOrder.Handle(ctx, exportCmd); err != nil {
			return result, fmt.Errorf("export order: %w", err)
		}
		d.logger.InfoContext(ctx, "order exported", "order_id", orderID, "files", result.Exported)
	}

	return result, nil
}

func (d *Driver) runShipment(ctx context.Context, orderID int, plan ShipmentPlan) (kernel.UUID, error) {
	shipmentID := d.newID()

	createCmd, err := commands.NewCreateShipmentCommand(orderID, shipmentID)
	if err != nil {
		return kernel.UUID{}, err
	}
	if _, err = d.handlers.CreateShipment.Handle(ctx, createCmd); err != nil {
		return kernel.UUID{}, err
	}

	if err = d.changeStatus(ctx, orderID, shipmentID, shipment.InTreatment); err != nil {
		return kernel.UUID{}, err
	}

	for _, cp := range plan.Containers {
		packCmd, err := commands.NewPackContainerCommand(orderID, shipmentID, cp.Reference, cp.Fill, cp.Edge, cp.Items)
		if err != nil {
			return kernel.UUID{}, fmt.Errorf("container %s: %w", cp.Reference, err)
		}
		added, err := d.handlers.PackContainer.Handle(ctx, packCmd)
		if err != nil {
			return kernel.UUID{}, fmt.Errorf("container %s: %w", cp.Reference, err)
		}
		if !added {
			d.logger.WarnContext(ctx, "container already attached",
				"order_id", orderID, "shipment_id", shipmentID.String(), "container", cp.Reference)
		}
	}

	for _, status := range plan.Transitions {
		if err = d.changeStatus(ctx, orderID, shipmentID, status); err != nil {
			return kernel.UUID{}, err
		}
	}

	d.logger.DebugContext(ctx, "shipment processed",
		"order_id", orderID, "shipment_id", shipmentID.String(), "containers", len(plan.Containers))
	return shipmentID, nil
}

func (d *Driver) changeStatus(ctx context.Context, orderID int, shipmentID kernel.UUID, status shipment.Status) error {
	cmd, err := commands.NewChangeShipmentStatusCommand(orderID, shipmentID, status)
	if err != nil {
		return err
	}
	return d.handlers.ChangeShipmentStatus.Handle(ctx, cmd)
}
