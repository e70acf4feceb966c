package app

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/vocab-backend/internal/auth"
	"github.com/heartmarshall/vocab-backend/internal/config"
	"github.com/heartmarshall/vocab-backend/internal/transport/middleware"
	"github.com/heartmarshall/vocab-backend/internal/transport/rest"
)

// Handlers groups the REST handlers mounted by NewRouter.
type Handlers struct {
	Words      *rest.WordHandler
	Categories *rest.CategoryHandler
	Study      *rest.StudyHandler
	Auth       *rest.AuthHandler
	Health     *rest.HealthHandler
}

// NewRouter builds the HTTP handler tree. Reads are public; writes require a
// bearer token. Login and example generation are rate limited per client IP.
//
// Auth runs before Logger so the access log carries the username, and Metrics
// wraps the mux directly so the matched route pattern is visible to it.
func NewRouter(
	cfg *config.Config,
	logger *slog.Logger,
	h Handlers,
	jwt *auth.JWTManager,
	limiter *middleware.RateLimiter,
) http.Handler {
	mux := http.NewServeMux()

	write := func(fn http.HandlerFunc) http.Handler { return middleware.RequireAuth(fn) }

	loginLimit := limiter.Limit("login", cfg.RateLimit.LoginPerMinute)
	generateLimit := limiter.Limit("generate", cfg.RateLimit.GeneratePerMinute)

	mux.HandleFunc("GET /{$}", rest.Index(Version))
	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)
	mux.Handle("GET /metrics", promhttp.Handler())

	mux.Handle("POST /api/auth/login", loginLimit(http.HandlerFunc(h.Auth.Login)))

	mux.HandleFunc("GET /api/words", h.Words.List)
	mux.HandleFunc("GET /api/words/{id}", h.Words.Get)
	mux.Handle("POST /api/words", write(h.Words.Create))
	mux.Handle("PUT /api/words/{id}", write(h.Words.Update))
	mux.Handle("DELETE /api/words/{id}", write(h.Words.Delete))
	mux.Handle("POST /api/words/generate-examples", middleware.RequireAuth(generateLimit(http.HandlerFunc(h.Words.GenerateExamples))))

	mux.HandleFunc("GET /api/categories", h.Categories.List)
	mux.HandleFunc("GET /api/categories/{id}", h.Categories.Get)
	mux.Handle("POST /api/categories", write(h.Categories.Create))
	mux.Handle("PUT /api/categories/{id}", write(h.Categories.Update))
	mux.Handle("DELETE /api/categories/{id}", write(h.Categories.Delete))

	mux.HandleFunc("GET /api/study/random", h.Study.Random)
	mux.HandleFunc("POST /api/study/record", h.Study.Record)
	mux.HandleFunc("GET /api/stats", h.Study.Stats)

	return middleware.Chain(
		middleware.RequestID(),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(jwt),
		middleware.Logger(logger),
		middleware.Metrics(),
	)(mux)
}
