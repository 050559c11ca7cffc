// Package router wires HTTP routes to their handlers.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/bookit/experience-booking/internal/handler"
)

// RegisterRoutes mounts all endpoints on the provided Echo instance.  cache
// wraps the read-mostly catalog routes; limiter wraps booking creation.
// Either middleware may be nil when its backing store is unavailable.
func RegisterRoutes(e *echo.Echo, exp *handler.ExperienceHandler, promo *handler.PromoHandler, booking *handler.BookingHandler, cache, limiter echo.MiddlewareFunc) {
	e.GET("/healthz", handler.Health)

	v1 := e.Group("/v1")

	catalog := v1.Group("/experiences")
	if cache != nil {
		catalog.Use(cache)
	}
	catalog.GET("", exp.List)
	catalog.GET("/:id", exp.Get)

	v1.POST("/promo/validate", promo.Validate)

	bookings := v1.Group("/bookings")
	if limiter != nil {
		bookings.Use(limiter)
	}
	bookings.POST("", booking.Create)
}
