package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/deppfellow/person-api/internal/model"
	"github.com/deppfellow/person-api/internal/server"
)

type ContactService struct {
	server *server.Server
}

func NewContactService(s *server.Server) *ContactService {
	return &ContactService{
		server: s,
	}
}

// Contact acknowledges a message and returns the caller's User-Agent, or
// nil when the header was absent.
func (s *ContactService) Contact(ctx context.Context, req *model.ContactRequest) *string {
	zerolog.Ctx(ctx).Info().
		Str("email", req.Email).
		Int("message_length", len(req.Message)).
		Bool("ads", req.Ads != "").
		Msg("contact message received")

	if req.UserAgent == "" {
		return nil
	}
	userAgent := req.UserAgent
	return &userAgent
}
