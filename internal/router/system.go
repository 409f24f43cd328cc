package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/person-api/internal/handler"
)

// registerSystemRoutes registers endpoints that are not part of the API
// itself and are left out of its document.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/status", h.Health.CheckHealth)

	r.GET(handler.OpenAPIDocumentPath, h.OpenAPI.ServeDocument)
	r.GET("/docs", func(c echo.Context) error {
		return c.Redirect(http.StatusFound, "/docs/index.html")
	})
	r.GET("/docs/*", h.OpenAPI.ServeUI)
}
