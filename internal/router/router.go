// Package router builds the Echo instance: global middleware, system
// routes and API routes, each API route registered together with its
// documentation.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/person-api/internal/docs"
	"github.com/deppfellow/person-api/internal/handler"
	"github.com/deppfellow/person-api/internal/middleware"
	"github.com/deppfellow/person-api/internal/server"
)

func NewRouter(s *server.Server, h *handler.Handlers, registry *docs.Registry) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true

	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
		middlewares.Global.Secure(),
		middlewares.Global.CORS(),
	)

	registerSystemRoutes(router, h)
	registerAPIRoutes(newRoutes(router, registry), h)

	return router
}
