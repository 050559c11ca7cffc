// Package handler exposes the HTTP surface: catalog browsing, promo
// validation and booking creation.  Handlers translate engine outcomes into
// the API's error contract and never leak internal error detail.
package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Health is the liveness endpoint used by load balancers and monitoring.
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}
