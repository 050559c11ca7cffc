package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bookit/experience-booking/internal/model"
	"github.com/bookit/experience-booking/internal/repository"
	"github.com/bookit/experience-booking/internal/service"
)

// PromoValidator checks a promo code; satisfied by service.PromoService.
type PromoValidator interface {
	Validate(ctx context.Context, code string) (*model.Promo, error)
}

// PromoHandler exposes read-only promo code validation.
type PromoHandler struct {
	Service PromoValidator
}

// NewPromoHandler returns a handler over the given validator.
func NewPromoHandler(v PromoValidator) *PromoHandler {
	return &PromoHandler{Service: v}
}

// Validate handles POST /v1/promo/validate.  An unknown or expired code is a
// 200 response with valid=false and a distinct human-readable message, never
// an error status: the caller asked a question and got an answer.
func (h *PromoHandler) Validate(c echo.Context) error {
	var body struct {
		Code string `json:"code"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request body"})
	}
	if body.Code == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "promo code is required"})
	}

	p, err := h.Service.Validate(c.Request().Context(), body.Code)
	switch {
	case errors.Is(err, repository.ErrPromoNotFound):
		return c.JSON(http.StatusOK, echo.Map{"valid": false, "message": "Invalid promo code"})
	case errors.Is(err, service.ErrPromoExpired):
		return c.JSON(http.StatusOK, echo.Map{"valid": false, "message": "Promo code has expired"})
	case err != nil:
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"valid": true,
		"promo": echo.Map{"code": p.Code, "type": p.Type, "value": p.Value},
	})
}
