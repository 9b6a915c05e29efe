package httpserver

import (
	"errors"
	"net/http"

	"github.com/asiedu/ecommerce-cart/internal/service"
	"github.com/labstack/echo/v4"
)

// APIResponse is the envelope every endpoint answers with.
type APIResponse struct {
	Status  int    `json:"status"`
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func respond(c echo.Context, status int, message string, data any) error {
	return c.JSON(status, APIResponse{
		Status:  status,
		Success: status < http.StatusBadRequest,
		Message: message,
		Data:    data,
	})
}

// classify maps a domain error to a status code and a caller-safe message.
// Expected domain outcomes keep their specific message; anything else is
// reported generically and the detail stays in server-side logs.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrInvalidQuantity),
		errors.Is(err, service.ErrInvalidFilter),
		errors.Is(err, service.ErrInvalidPagination),
		errors.Is(err, service.ErrDecrementExceedsQuantity),
		errors.Is(err, service.ErrStockExceeded),
		errors.Is(err, service.ErrValidation):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrProductNotFound),
		errors.Is(err, service.ErrCartItemNotFound):
		return http.StatusNotFound, err.Error()
	default:
		return http.StatusInternalServerError, "Something went wrong."
	}
}

func respondError(c echo.Context, err error) error {
	status, message := classify(err)
	return respond(c, status, message, nil)
}
