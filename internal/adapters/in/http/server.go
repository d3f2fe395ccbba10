package http

import (
	"io"
	"log/slog"
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// Handlers are the use cases served over HTTP.
type Handlers struct {
	// Command handlers
	ImportOrder          commands.ImportOrderCommandHandler
	CreateShipment       commands.CreateShipmentCommandHandler
	RemoveShipment       commands.RemoveShipmentCommandHandler
	ChangeShipmentStatus commands.ChangeShipmentStatusCommandHandler
	PackContainer        commands.PackContainerCommandHandler
	CloseOrder           commands.CloseOrderCommandHandler
	ExportOrder          commands.ExportOrderCommandHandler
	ExportCharts         commands.ExportChartsCommandHandler

	// Query handlers
	GetOrderSummary queries.GetOrderSummaryQueryHandler
	GetOrders       queries.GetOrdersQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
	logger   *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		handlers: handlers,
		logger:   logger.With("component", "http"),
	}
}

// ImportOrder handles POST /api/v1/orders.
func (s *Server) ImportOrder(ctx echo.Context) error {
	body, err := io.ReadAll(ctx.Request().Body)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewImportOrderCommand(body)
	if err != nil {
		return s.fail(ctx, err, "import order")
	}

	orderID, err := s.handlers.ImportOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err, "import order")
	}

	return ctx.JSON(http.StatusCreated, OrderID{ID: orderID})
}

// GetOrders handles GET /api/v1/orders[?customerId=].
func (s *Server) GetOrders(ctx echo.Context) error {
	var customerID *int
	if err := runtime.BindQueryParameter("form", true, false, "customerId", ctx.QueryParams(), &customerID); err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid format for parameter customerId: "+err.Error())
	}

	query := queries.NewGetOrdersQuery()
	if customerID != nil {
		var err error
		if query, err = queries.NewGetCustomerOrdersQuery(*customerID); err != nil {
			return s.fail(ctx, err, "list orders")
		}
	}

	orders, err := s.handlers.GetOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "list orders")
	}

	response := make([]OrderListEntry, len(orders))
	for i, o := range orders {
		response[i] = OrderListEntry{
			ID:             o.ID,
			CustomerID:     o.CustomerID,
			CustomerName:   o.CustomerName,
			Items:          o.Items,
			RemainingItems: o.RemainingItems,
			Shipments:      o.Shipments,
			Closed:         o.Closed,
			Cost:           o.Cost,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := bindOrderID(ctx)
	if err != nil {
		return s.fail(ctx, err, "read order")
	}

	query, err := queries.NewGetOrderSummaryQuery(orderID)
	if err != nil {
		return s.fail(ctx, err, "read order")
	}

	summary, err := s.handlers.GetOrderSummary.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "read order")
	}

	response := OrderSummary{
		ID:             summary.ID,
		CustomerID:     summary.CustomerID,
		CustomerName:   summary.CustomerName,
		Items:          summary.Items,
		RemainingItems: summary.RemainingItems,
		Closed:         summary.Closed,
		Cost:           summary.Cost,
		Shipments:      make([]ShipmentSummary, len(summary.Shipments)),
	}
	if summary.Date != nil {
		response.Date = summary.Date.Format("2006-01-02")
	}
	for i, sh := range summary.Shipments {
		response.Shipments[i] = ShipmentSummary{
			ID:         sh.ID,
			Status:     sh.Status.String(),
			Containers: sh.Containers,
			Items:      sh.Items,
			Cost:       sh.Cost,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateShipment handles POST /api/v1/orders/{orderId}/shipments. The
// shipment id is generated unless the body names one.
func (s *Server) CreateShipment(ctx echo.Context) error {
	orderID, err := bindOrderID(ctx)
	if err != nil {
		return s.fail(ctx, err, "create shipment")
	}

	var body NewShipment
	if err = ctx.Bind(&body); err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	shipmentID := kernel.NewUUID()
	if body.ID != nil {
		if shipmentID, err = kernel.UUIDFromString(*body.ID); err != nil {
			return s.fail(ctx, err, "create shipment")
		}
	}

	cmd, err := commands.NewCreateShipmentCommand(orderID, shipmentID)
	if err != nil {
		return s.fail(ctx, err, "create shipment")
	}

	created, err := s.handlers.CreateShipment.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err, "create shipment")
	}
	if !created {
		return writeError(ctx, http.StatusConflict, "Shipment "+shipmentID.String()+" is already attached")
	}

	return ctx.JSON(http.StatusCreated, ShipmentID{ID: shipmentID.String()})
}

// RemoveShipment handles DELETE /api/v1/orders/{orderId}/shipments/{shipmentId}.
func (s *Server) RemoveShipment(ctx echo.Context) error {
	orderID, shipmentID, err := bindShipmentPath(ctx)
	if err != nil {
		return s.fail(ctx, err, "remove shipment")
	}

	cmd, err := commands.NewRemoveShipmentCommand(orderID, shipmentID)
	if err != nil {
		return s.fail(ctx, err, "remove shipment")
	}

	if err = s.handlers.RemoveShipment.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "remove shipment")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ChangeShipmentStatus handles PUT /api/v1/orders/{orderId}/shipments/{shipmentId}/status.
func (s *Server) ChangeShipmentStatus(ctx echo.Context) error {
	orderID, shipmentID, err := bindShipmentPath(ctx)
	if err != nil {
		return s.fail(ctx, err, "change shipment status")
	}

	var body StatusChange
	if err = ctx.Bind(&body); err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	status, err := shipment.ParseStatus(body.Status)
	if err != nil {
		return s.fail(ctx, err, "change shipment status")
	}

	cmd, err := commands.NewChangeShipmentStatusCommand(orderID, shipmentID, status)
	if err != nil {
		return s.fail(ctx, err, "change shipment status")
	}

	if err = s.handlers.ChangeShipmentStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "change shipment status")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// PackContainer handles POST /api/v1/orders/{orderId}/shipments/{shipmentId}/containers.
func (s *Server) PackContainer(ctx echo.Context) error {
	orderID, shipmentID, err := bindShipmentPath(ctx)
	if err != nil {
		return s.fail(ctx, err, "pack container")
	}

	var body NewContainer
	if err = ctx.Bind(&body); err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := packContainerCommand(orderID, shipmentID, body)
	if err != nil {
		return s.fail(ctx, err, "pack container")
	}

	added, err := s.handlers.PackContainer.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err, "pack container")
	}
	if !added {
		return writeError(ctx, http.StatusConflict, "Container "+body.Reference+" is already attached")
	}

	return ctx.NoContent(http.StatusCreated)
}

// CloseOrder handles POST /api/v1/orders/{orderId}/close.
func (s *Server) CloseOrder(ctx echo.Context) error {
	orderID, err := bindOrderID(ctx)
	if err != nil {
		return s.fail(ctx, err, "close order")
	}

	cmd, err := commands.NewCloseOrderCommand(orderID)
	if err != nil {
		return s.fail(ctx, err, "close order")
	}

	if err = s.handlers.CloseOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "close order")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ExportOrder handles POST /api/v1/orders/{orderId}/export.
func (s *Server) ExportOrder(ctx echo.Context) error {
	orderID, err := bindOrderID(ctx)
	if err != nil {
		return s.fail(ctx, err, "export order")
	}

	cmd, err := commands.NewExportOrderCommand(orderID)
	if err != nil {
		return s.fail(ctx, err, "export order")
	}

	files, err := s.handlers.ExportOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err, "export order")
	}

	return ctx.JSON(http.StatusOK, ExportedFiles{Files: files})
}

// ExportCharts handles POST /api/v1/charts/export.
func (s *Server) ExportCharts(ctx echo.Context) error {
	files, err := s.handlers.ExportCharts.Handle(ctx.Request().Context(), commands.NewExportChartsCommand())
	if err != nil {
		return s.fail(ctx, err, "export charts")
	}

	return ctx.JSON(http.StatusOK, ExportedFiles{Files: files})
}

func bindOrderID(ctx echo.Context) (int, error) {
	var orderID int
	err := runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderID,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("orderId", err)
	}
	return orderID, nil
}

func bindShipmentPath(ctx echo.Context) (int, kernel.UUID, error) {
	orderID, err := bindOrderID(ctx)
	if err != nil {
		return 0, kernel.UUID{}, err
	}

	var rawShipmentID string
	err = runtime.BindStyledParameterWithOptions("simple", "shipmentId", ctx.Param("shipmentId"), &rawShipmentID,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return 0, kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("shipmentId", err)
	}

	shipmentID, err := kernel.UUIDFromString(rawShipmentID)
	if err != nil {
		return 0, kernel.UUID{}, err
	}
	return orderID, shipmentID, nil
}

func packContainerCommand(orderID int, shipmentID kernel.UUID, body NewContainer) (commands.PackContainerCommand, error) {
	fill, err := kernel.ColorFromHex(body.Color)
	if err != nil {
		return commands.PackContainerCommand{}, err
	}
	edge, err := kernel.ColorFromHex(body.ColorEdge)
	if err != nil {
		return commands.PackContainerCommand{}, err
	}

	placements := make([]commands.Placement, 0, len(body.Items))
	for _, p := range body.Items {
		pos, err := kernel.NewPosition(p.Position.X, p.Position.Y, p.Position.Z)
		if err != nil {
			return commands.PackContainerCommand{}, err
		}
		color, err := kernel.ColorFromHex(p.Color)
		if err != nil {
			return commands.PackContainerCommand{}, err
		}
		placements = append(placements, commands.Placement{
			ItemReference: p.Reference,
			Position:      pos,
			Color:         color,
		})
	}

	return commands.NewPackContainerCommand(orderID, shipmentID, body.Reference, fill, edge, placements)
}
