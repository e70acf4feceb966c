package config

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/vocab-backend/internal/domain"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if strings.TrimSpace(c.Auth.AdminUsername) == "" {
		return fmt.Errorf("auth.admin_username is required")
	}
	if !strings.HasPrefix(c.Auth.AdminPasswordHash, "$2") {
		return fmt.Errorf("auth.admin_password_hash must be a bcrypt hash")
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0 (got %v)", c.Auth.AccessTokenTTL)
	}

	if err := c.LLM.validate(); err != nil {
		return fmt.Errorf("llm: %w", err)
	}

	if c.Study.ReviewAttempts < 1 {
		return fmt.Errorf("study.review_attempts must be >= 1 (got %d)", c.Study.ReviewAttempts)
	}

	if c.RateLimit.LoginPerMinute <= 0 || c.RateLimit.GeneratePerMinute <= 0 {
		return fmt.Errorf("rate_limit: per-minute limits must be > 0")
	}

	return nil
}

func (l *LLMConfig) validate() error {
	if !domain.LLMProvider(l.Provider).IsValid() {
		return fmt.Errorf("provider must be anthropic or openai (got %q)", l.Provider)
	}
	if l.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be > 0 (got %d)", l.MaxTokens)
	}
	if l.Temperature < 0 || l.Temperature > 2 {
		return fmt.Errorf("temperature must be in [0, 2] (got %v)", l.Temperature)
	}
	if l.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", l.Timeout)
	}
	if l.MaxRetries < 0 {
		return fmt.Errorf("max_retries must be >= 0 (got %d)", l.MaxRetries)
	}
	return nil
}
