package http

import (
	"errors"
	"net/http"

	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusOf maps an application error to its HTTP status.
func statusOf(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, ports.ErrOrderAlreadyExists), errors.Is(err, errs.ErrOrderState):
		return http.StatusConflict
	case errors.Is(err, errs.ErrContainer), errors.Is(err, errs.ErrPosition):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeError(c echo.Context, code int, message string) error {
	return c.JSON(code, Error{Code: code, Message: message})
}

// fail answers with the status of err. Internal errors are logged and
// reported without details.
func (s *Server) fail(c echo.Context, err error, operation string) error {
	code := statusOf(err)
	if code == http.StatusInternalServerError {
		s.logger.ErrorContext(c.Request().Context(), "request failed",
			"operation", operation,
			"error", err,
		)
		return writeError(c, code, "Failed to "+operation)
	}
	return writeError(c, code, err.Error())
}
