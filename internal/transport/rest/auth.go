package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/vocab-backend/internal/service/auth"
)

type authService interface {
	Login(ctx context.Context, input auth.LoginInput) (*auth.LoginResult, error)
}

// AuthHandler serves auth REST endpoints.
type AuthHandler struct {
	svc  authService
	errs errorResponder
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc authService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		svc:  svc,
		errs: errorResponder{log: logger.With("handler", "auth"), notFound: "not found"},
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expiresIn"`
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.svc.Login(r.Context(), auth.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		h.errs.respond(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{Token: result.AccessToken, ExpiresIn: result.ExpiresIn})
}
