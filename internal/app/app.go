package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/heartmarshall/vocab-backend/internal/adapter/llm/anthropic"
	"github.com/heartmarshall/vocab-backend/internal/adapter/llm/openai"
	"github.com/heartmarshall/vocab-backend/internal/adapter/postgres"
	categoryrepo "github.com/heartmarshall/vocab-backend/internal/adapter/postgres/category"
	"github.com/heartmarshall/vocab-backend/internal/adapter/postgres/studysession"
	wordrepo "github.com/heartmarshall/vocab-backend/internal/adapter/postgres/word"
	"github.com/heartmarshall/vocab-backend/internal/auth"
	"github.com/heartmarshall/vocab-backend/internal/config"
	"github.com/heartmarshall/vocab-backend/internal/domain"
	"github.com/heartmarshall/vocab-backend/internal/service/category"
	"github.com/heartmarshall/vocab-backend/internal/service/dictionary"
	"github.com/heartmarshall/vocab-backend/internal/service/examples"
	"github.com/heartmarshall/vocab-backend/internal/service/study"
	"github.com/heartmarshall/vocab-backend/internal/transport/middleware"
	"github.com/heartmarshall/vocab-backend/internal/transport/rest"

	authsvc "github.com/heartmarshall/vocab-backend/internal/service/auth"
)

type generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Run is the application entry point. It loads configuration, connects to
// the database, wires services and handlers, and serves HTTP until ctx is
// cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("llm_provider", cfg.LLM.Provider),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if !cfg.Database.SkipMigrate {
		applied, err := postgres.Migrate(ctx, pool)
		if err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied", slog.Int("count", applied))
	}

	// Repositories
	words := wordrepo.New(pool)
	categories := categoryrepo.New(pool)
	sessions := studysession.New(pool)
	txm := postgres.NewTxManager(pool)

	llm, err := newGenerator(cfg.LLM, logger)
	if err != nil {
		return err
	}

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	// Services
	dictionarySvc := dictionary.NewService(logger, words)
	categorySvc := category.NewService(logger, categories)
	studySvc := study.NewService(logger, words, sessions, txm, cfg.Study.ReviewAttempts)
	examplesSvc := examples.NewService(logger, llm, cfg.LLM.Timeout)
	authSvc := authsvc.NewService(logger, jwtManager, cfg.Auth)

	handlers := Handlers{
		Words:      rest.NewWordHandler(dictionarySvc, examplesSvc, logger),
		Categories: rest.NewCategoryHandler(categorySvc, logger),
		Study:      rest.NewStudyHandler(studySvc, logger),
		Auth:       rest.NewAuthHandler(authSvc, logger),
		Health: rest.NewHealthHandler(Version,
			rest.Check{Name: "database", Critical: true, Probe: pool.Ping},
			rest.Check{Name: "llm", Probe: llmConfigured(cfg.LLM)},
		),
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      NewRouter(cfg, logger, handlers, jwtManager, limiter),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	return serve(ctx, srv, cfg.Server, logger)
}

// serve runs srv until ctx is done, then shuts it down within the configured
// timeout.
func serve(ctx context.Context, srv *http.Server, cfg config.ServerConfig, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down", slog.Duration("timeout", cfg.ShutdownTimeout))
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		logger.Info("server stopped")
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen: %w", err)
	}
}

func newGenerator(cfg config.LLMConfig, logger *slog.Logger) (generator, error) {
	switch domain.LLMProvider(cfg.Provider) {
	case domain.LLMProviderAnthropic:
		return anthropic.New(cfg, logger), nil
	case domain.LLMProviderOpenAI:
		return openai.New(cfg, logger), nil
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}
}

// llmConfigured reports a missing API key as a non-critical failure. It does
// not call the provider, so probes stay free.
func llmConfigured(cfg config.LLMConfig) func(context.Context) error {
	return func(context.Context) error {
		if cfg.APIKey == "" {
			return errors.New("api key not configured")
		}
		return nil
	}
}
