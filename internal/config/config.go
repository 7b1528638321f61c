package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog/log"
)

var knownWeakSecrets = []string{
	"change-me", "dev-secret-change-me", "secret", "admin", "password",
}

type Config struct {
	Port                 int    `env:"PORT" envDefault:"8080"`
	DatabaseURL          string `env:"DATABASE_URL,required"`
	RedisURL             string `env:"REDIS_URL,required"`
	JWTSecret            string `env:"JWT_SECRET,required"`
	GeminiAPIKey         string `env:"GEMINI_API_KEY"`
	GeminiAPIURL         string `env:"GEMINI_API_URL" envDefault:"https://generativelanguage.googleapis.com/v1beta/models/gemini-pro:generateContent"`
	LoginTokenTTLMins    int    `env:"LOGIN_TOKEN_TTL_MINUTES" envDefault:"60"`
	RegisterTokenTTLMins int    `env:"REGISTER_TOKEN_TTL_MINUTES" envDefault:"1440"`
	BcryptCost           int    `env:"BCRYPT_COST" envDefault:"10"`
	MessageRetentionDays int    `env:"MESSAGE_RETENTION_DAYS" envDefault:"90"`
	LogLevel             string `env:"LOG_LEVEL" envDefault:"info"`
	AllowedOrigins       string `env:"ALLOWED_ORIGINS" envDefault:"*"`
}

// LoginTokenTTL is the lifetime of tokens minted on the login path.
func (c *Config) LoginTokenTTL() time.Duration {
	return time.Duration(c.LoginTokenTTLMins) * time.Minute
}

// RegisterTokenTTL is the lifetime of tokens minted when registration completes.
func (c *Config) RegisterTokenTTL() time.Duration {
	return time.Duration(c.RegisterTokenTTLMins) * time.Minute
}

func (c *Config) MessageRetention() time.Duration {
	return time.Duration(c.MessageRetentionDays) * 24 * time.Hour
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func (c *Config) Origins() []string {
	parts := strings.Split(c.AllowedOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

func (c *Config) Validate(isProduction bool) error {
	if c.BcryptCost < 4 || c.BcryptCost > 31 {
		return fmt.Errorf("BCRYPT_COST must be between 4 and 31")
	}

	if isProduction {
		if err := validateSecret("JWT_SECRET", c.JWTSecret); err != nil {
			return err
		}

		if c.GeminiAPIKey == "" {
			log.Warn().Msg("GEMINI_API_KEY is empty in production: assistant endpoint disabled")
		}
		if strings.HasPrefix(c.RedisURL, "redis://") {
			log.Warn().Msg("REDIS_URL uses redis:// (not TLS) in production: consider using rediss://")
		}
	}

	return nil
}

func validateSecret(name, value string) error {
	if len(value) < 32 {
		return fmt.Errorf("%s must be at least 32 characters in production (generate with: go run scripts/gen-secret.go)", name)
	}
	for _, weak := range knownWeakSecrets {
		if value == weak {
			return fmt.Errorf("%s is a known weak default; set a strong secret in production", name)
		}
	}
	return nil
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}
