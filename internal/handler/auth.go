package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/person-api/internal/model"
	"github.com/deppfellow/person-api/internal/server"
	"github.com/deppfellow/person-api/internal/service"
)

type AuthHandler struct {
	Handler
	authService *service.AuthService
}

func NewAuthHandler(s *server.Server, authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		Handler:     NewHandler(s),
		authService: authService,
	}
}

func (h *AuthHandler) Login(c echo.Context, req *model.LoginRequest) (model.LoginOutput, error) {
	return h.authService.Login(c.Request().Context(), req), nil
}
