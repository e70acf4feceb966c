package auth

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/vocab-backend/internal/domain"
)

// Login checks the credentials against the configured admin account and
// issues an access token. Any mismatch returns ErrUnauthorized.
func (s *Service) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	input.Username = strings.TrimSpace(input.Username)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	userOK := subtle.ConstantTimeCompare([]byte(input.Username), []byte(s.cfg.AdminUsername)) == 1
	// The hash is always compared so a wrong username costs the same as a wrong password.
	passErr := bcrypt.CompareHashAndPassword([]byte(s.cfg.AdminPasswordHash), []byte(input.Password))
	if !userOK || passErr != nil {
		s.log.WarnContext(ctx, "login rejected", slog.String("username", input.Username))
		return nil, domain.ErrUnauthorized
	}

	token, err := s.jwt.GenerateAccessToken(input.Username)
	if err != nil {
		return nil, fmt.Errorf("auth.Login issue token: %w", err)
	}

	s.log.InfoContext(ctx, "admin logged in", slog.String("username", input.Username))

	return &LoginResult{
		AccessToken: token,
		ExpiresIn:   int64(s.jwt.AccessTTL().Seconds()),
	}, nil
}
