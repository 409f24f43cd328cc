package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/deppfellow/person-api/internal/docs"
	"github.com/deppfellow/person-api/internal/server"
)

// OpenAPIDocumentPath is where the generated document is served.
const OpenAPIDocumentPath = "/openapi.json"

// OpenAPIHandler serves the generated API document and the Swagger UI.
type OpenAPIHandler struct {
	Handler
	registry *docs.Registry
	ui       http.Handler
}

func NewOpenAPIHandler(s *server.Server, registry *docs.Registry) *OpenAPIHandler {
	return &OpenAPIHandler{
		Handler:  NewHandler(s),
		registry: registry,
		ui:       httpSwagger.Handler(httpSwagger.URL(OpenAPIDocumentPath)),
	}
}

// ServeDocument writes the Swagger 2.0 document for every registered route.
func (h *OpenAPIHandler) ServeDocument(c echo.Context) error {
	document, err := h.registry.JSON()
	if err != nil {
		return fmt.Errorf("failed to render OpenAPI document: %w", err)
	}

	// Disable caching so the UI picks up a redeployed document.
	c.Response().Header().Set("Cache-Control", "no-cache")

	return c.JSONBlob(http.StatusOK, document)
}

// ServeUI serves the Swagger UI pointed at OpenAPIDocumentPath.
func (h *OpenAPIHandler) ServeUI(c echo.Context) error {
	h.ui.ServeHTTP(c.Response(), c.Request())
	return nil
}
