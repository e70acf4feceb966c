package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	LLM       LLMConfig       `yaml:"llm"`
	Study     StudyConfig     `yaml:"study"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings. SkipMigrate defaults
// to false so the server applies migrations at start unless told otherwise.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	SkipMigrate     bool          `yaml:"skip_migrate"       env:"DATABASE_SKIP_MIGRATE"`
}

// AuthConfig holds the admin account and token settings.
type AuthConfig struct {
	JWTSecret         string        `yaml:"jwt_secret"          env:"AUTH_JWT_SECRET"          env-required:"true"`
	JWTIssuer         string        `yaml:"jwt_issuer"          env:"AUTH_JWT_ISSUER"          env-default:"vocab-backend"`
	AccessTokenTTL    time.Duration `yaml:"access_token_ttl"    env:"AUTH_ACCESS_TOKEN_TTL"    env-default:"24h"`
	AdminUsername     string        `yaml:"admin_username"      env:"AUTH_ADMIN_USERNAME"      env-default:"admin"`
	AdminPasswordHash string        `yaml:"admin_password_hash" env:"AUTH_ADMIN_PASSWORD_HASH"`
}

// LLMConfig holds example generation model settings.
type LLMConfig struct {
	Provider    string        `yaml:"provider"    env:"LLM_PROVIDER"    env-default:"anthropic"`
	APIKey      string        `yaml:"api_key"     env:"LLM_API_KEY"`
	BaseURL     string        `yaml:"base_url"    env:"LLM_BASE_URL"`
	Model       string        `yaml:"model"       env:"LLM_MODEL"       env-default:"claude-3-haiku-20240307"`
	MaxTokens   int           `yaml:"max_tokens"  env:"LLM_MAX_TOKENS"  env-default:"500"`
	Temperature float64       `yaml:"temperature" env:"LLM_TEMPERATURE" env-default:"0.7"`
	Timeout     time.Duration `yaml:"timeout"     env:"LLM_TIMEOUT"     env-default:"30s"`
	MaxRetries  int           `yaml:"max_retries" env:"LLM_MAX_RETRIES" env-default:"2"`
}

// StudyConfig holds review bookkeeping settings.
type StudyConfig struct {
	ReviewAttempts int `yaml:"review_attempts" env:"STUDY_REVIEW_ATTEMPTS" env-default:"3"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds per-IP limits for expensive endpoints.
type RateLimitConfig struct {
	LoginPerMinute    int           `yaml:"login_per_minute"    env:"RATE_LIMIT_LOGIN_PER_MINUTE"    env-default:"10"`
	GeneratePerMinute int           `yaml:"generate_per_minute" env:"RATE_LIMIT_GENERATE_PER_MINUTE" env-default:"20"`
	CleanupInterval   time.Duration `yaml:"cleanup_interval"    env:"RATE_LIMIT_CLEANUP_INTERVAL"    env-default:"5m"`
}
