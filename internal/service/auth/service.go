package auth

import (
	"log/slog"
	"time"

	"github.com/heartmarshall/vocab-backend/internal/config"
)

// jwtManager defines the token issuing interface needed by auth service.
type jwtManager interface {
	GenerateAccessToken(username string) (string, error)
	AccessTTL() time.Duration
}

// Service authenticates the single administrator account.
type Service struct {
	log *slog.Logger
	jwt jwtManager
	cfg config.AuthConfig
}

// NewService creates a new auth service instance.
func NewService(logger *slog.Logger, jwt jwtManager, cfg config.AuthConfig) *Service {
	return &Service{
		log: logger.With("service", "auth"),
		jwt: jwt,
		cfg: cfg,
	}
}
