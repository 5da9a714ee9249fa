package catalog

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers the catalog proxy routes.
func RegisterRoutes(e *echo.Echo, svc *Service) {
	h := &handler{
		catalogService: svc,
	}

	g := e.Group("/api")
	g.GET("/search", h.search)
	g.GET("/details", h.details)
}
