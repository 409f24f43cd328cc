package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/deppfellow/person-api/internal/model"
	"github.com/deppfellow/person-api/internal/server"
)

// AuthService handles logins. Credentials are not checked; the password is
// accepted and dropped.
type AuthService struct {
	server *server.Server
}

func NewAuthService(s *server.Server) *AuthService {
	return &AuthService{
		server: s,
	}
}

func (s *AuthService) Login(ctx context.Context, req *model.LoginRequest) model.LoginOutput {
	zerolog.Ctx(ctx).Info().Str("username", req.Username).Msg("login")

	return model.LoginOutput{Username: req.Username}
}
