package config

import (
	"fmt"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config carries everything the service reads from the environment. It is
// parsed and validated once at startup and injected into the handlers; nothing
// re-reads the environment per request.
type Config struct {
	ListenAddr string `env:"LISTEN_ADDR" envDefault:":8080"`
	SiteURL    string `env:"SITE_URL" envDefault:"http://localhost:8080"`

	// GoogleAIKey is deliberately not validated at startup: a missing key is
	// reported as a 500 on the first generation request so the condition is
	// observable through the API.
	GoogleAIKey      string `env:"GOOGLE_AI_API_KEY"`
	GoogleAIKeyParam string `env:"GOOGLE_AI_API_KEY_PARAM"`
	GeminiModel      string `env:"GEMINI_MODEL" envDefault:"gemini-2.0-flash-preview-image-generation"`

	DatabaseURL string `env:"DATABASE_URL"`

	JWTSecret      string `env:"JWT_SECRET"`
	JWTSecretParam string `env:"JWT_SECRET_PARAM"`

	PublicBucket   string `env:"PUBLIC_BUCKET" envDefault:"public-images"`
	PrivateBucket  string `env:"PRIVATE_BUCKET" envDefault:"private-images"`
	StorageBaseURL string `env:"STORAGE_BASE_URL"`
}

func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.StorageBaseURL == "" {
		return fmt.Errorf("STORAGE_BASE_URL is required")
	}
	if c.JWTSecret == "" && c.JWTSecretParam == "" {
		return fmt.Errorf("one of JWT_SECRET or JWT_SECRET_PARAM is required")
	}
	return nil
}
