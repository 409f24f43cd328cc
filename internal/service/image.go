package service

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"

	"github.com/gabriel-vasile/mimetype"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/deppfellow/person-api/internal/model"
	"github.com/deppfellow/person-api/internal/server"
)

var kibibyte = decimal.NewFromInt(1024)

type ImageService struct {
	server *server.Server
}

func NewImageService(s *server.Server) *ImageService {
	return &ImageService{
		server: s,
	}
}

// Describe reads the whole upload and reports its name, declared content
// type and size in KiB rounded to two decimals.
func (s *ImageService) Describe(ctx context.Context, image *multipart.FileHeader) (model.ImageOutput, error) {
	f, err := image.Open()
	if err != nil {
		return model.ImageOutput{}, fmt.Errorf("failed to open upload: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return model.ImageOutput{}, fmt.Errorf("failed to read upload: %w", err)
	}

	declared := image.Header.Get("Content-Type")

	zerolog.Ctx(ctx).Debug().
		Str("filename", image.Filename).
		Str("declared_type", declared).
		Str("detected_type", mimetype.Detect(data).String()).
		Int("bytes", len(data)).
		Msg("image read")

	return model.ImageOutput{
		Filename: image.Filename,
		Format:   declared,
		SizeKB:   SizeKB(int64(len(data))),
	}, nil
}

// SizeKB converts a byte count to KiB rounded half away from zero to two
// decimals.
func SizeKB(bytes int64) float64 {
	return decimal.NewFromInt(bytes).Div(kibibyte).Round(2).InexactFloat64()
}
