package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// NewRouter builds the echo instance serving s. Requests under /api/v1 are
// validated against the embedded API description before they reach s.
func NewRouter(s *Server) (*echo.Echo, error) {
	doc, err := Spec()
	if err != nil {
		return nil, err
	}
	validate, err := requestValidator(doc)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/openapi.json", func(c echo.Context) error {
		return c.JSON(http.StatusOK, doc)
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api/v1", validate)
	api.POST("/orders", s.ImportOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/:orderId", s.GetOrder)
	api.POST("/orders/:orderId/shipments", s.CreateShipment)
	api.DELETE("/orders/:orderId/shipments/:shipmentId", s.RemoveShipment)
	api.PUT("/orders/:orderId/shipments/:shipmentId/status", s.ChangeShipmentStatus)
	api.POST("/orders/:orderId/shipments/:shipmentId/containers", s.PackContainer)
	api.POST("/orders/:orderId/close", s.CloseOrder)
	api.POST("/orders/:orderId/export", s.ExportOrder)
	api.POST("/charts/export", s.ExportCharts)

	return e, nil
}
