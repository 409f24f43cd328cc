package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/person-api/internal/model"
	"github.com/deppfellow/person-api/internal/server"
	"github.com/deppfellow/person-api/internal/service"
)

type ImageHandler struct {
	Handler
	imageService *service.ImageService
}

func NewImageHandler(s *server.Server, imageService *service.ImageService) *ImageHandler {
	return &ImageHandler{
		Handler:      NewHandler(s),
		imageService: imageService,
	}
}

func (h *ImageHandler) PostImage(c echo.Context, req *model.ImageUploadRequest) (model.ImageOutput, error) {
	return h.imageService.Describe(c.Request().Context(), req.Image)
}
