package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/person-api/internal/model"
	"github.com/deppfellow/person-api/internal/server"
)

type HomeHandler struct {
	Handler
}

func NewHomeHandler(s *server.Server) *HomeHandler {
	return &HomeHandler{
		Handler: NewHandler(s),
	}
}

func (h *HomeHandler) Home(c echo.Context, _ *model.HomeRequest) (map[string]string, error) {
	return map[string]string{"hello": "world"}, nil
}
