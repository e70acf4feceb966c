package examples

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/heartmarshall/vocab-backend/internal/domain"
)

type generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Service asks a language model for example sentences and parses the reply.
type Service struct {
	llm     generator
	log     *slog.Logger
	timeout time.Duration
	group   singleflight.Group
}

// NewService creates an examples service. A non-positive timeout disables
// the per-call deadline.
func NewService(log *slog.Logger, llm generator, timeout time.Duration) *Service {
	return &Service{
		llm:     llm,
		log:     log.With("service", "examples"),
		timeout: timeout,
	}
}

// Generate returns example sentences for a word. Identical concurrent
// requests share one model call.
func (s *Service) Generate(ctx context.Context, input GenerateInput) ([]domain.GeneratedExample, error) {
	input.Trim()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	v, err, shared := s.group.Do(input.key(), func() (any, error) {
		return s.generate(context.WithoutCancel(ctx), input)
	})
	if err != nil {
		return nil, err
	}
	if shared {
		s.log.DebugContext(ctx, "example generation shared", slog.String("en", input.En))
	}

	// Each caller gets its own copy of a shared result.
	res := v.([]domain.GeneratedExample)
	out := make([]domain.GeneratedExample, len(res))
	copy(out, res)
	return out, nil
}

func (s *Service) generate(ctx context.Context, input GenerateInput) ([]domain.GeneratedExample, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	text, err := s.llm.Generate(ctx, buildPrompt(input.En, input.Ja))
	modelLatency.Observe(time.Since(start).Seconds())
	if err != nil {
		generationsTotal.WithLabelValues("model_error").Inc()
		s.log.WarnContext(ctx, "model call failed",
			slog.String("en", input.En), slog.String("error", err.Error()))
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("generate examples: %w: timed out after %s", domain.ErrLLMUnavailable, s.timeout)
		}
		return nil, fmt.Errorf("generate examples: %w: %w", domain.ErrLLMUnavailable, err)
	}

	if strings.TrimSpace(text) == "" {
		generationsTotal.WithLabelValues("empty").Inc()
		return nil, fmt.Errorf("generate examples for %q: empty reply: %w", input.En, domain.ErrNoExamples)
	}

	examples := Extract(text)
	if len(examples) == 0 {
		generationsTotal.WithLabelValues("empty").Inc()
		s.log.WarnContext(ctx, "model reply had no numbered sentences",
			slog.String("en", input.En), slog.Int("reply_len", len(text)))
		return nil, fmt.Errorf("generate examples for %q: %w", input.En, domain.ErrNoExamples)
	}

	generationsTotal.WithLabelValues("ok").Inc()
	return examples, nil
}
