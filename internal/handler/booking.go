package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bookit/experience-booking/internal/service"
)

// Booker runs one booking attempt; satisfied by service.ReservationService.
type Booker interface {
	Book(ctx context.Context, req service.BookRequest) (*service.BookResult, error)
}

// BookingHandler accepts booking requests and maps engine outcomes onto the
// HTTP contract: 400 for bad input, 409 when the slot cannot satisfy the
// quantity, 500 for anything unexpected.
type BookingHandler struct {
	Service Booker
}

// NewBookingHandler returns a handler over the given booking engine.
func NewBookingHandler(b Booker) *BookingHandler {
	return &BookingHandler{Service: b}
}

// Create handles POST /v1/bookings.  A 409 means the request conflicted with
// concurrent state; clients should re-fetch availability before trying
// again rather than blindly retrying the same slot.
func (h *BookingHandler) Create(c echo.Context) error {
	var req service.BookRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request body"})
	}

	result, err := h.Service.Book(c.Request().Context(), req)
	if err != nil {
		var ve *service.ValidationError
		switch {
		case errors.As(err, &ve):
			return c.JSON(http.StatusBadRequest, echo.Map{"message": ve.Reason})
		case errors.Is(err, service.ErrCapacityUnavailable):
			return c.JSON(http.StatusConflict, echo.Map{
				"message": "selected slot does not have enough availability (sold out or insufficient capacity)",
			})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
		}
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "booking": result})
}
