package runtime

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config is the process configuration, sourced from the environment.
type Config struct {
	Host      string `validate:"required"`
	Port      int    `validate:"gte=1,lte=65535"`
	JWTSecret string `validate:"required,min=16"`
	OutputDir string `validate:"required"`

	// Extraction collaborator; optional, the pipeline degrades to
	// caller-provided records when unset.
	ExtractionURL    string `validate:"omitempty,url"`
	ExtractionAPIKey string
}

// LoadConfig reads the environment (and a .env file when present) into
// a validated Config.
func LoadConfig() (*Config, error) {
	// Missing .env is fine; environment variables win anyway.
	_ = godotenv.Load()

	cfg := &Config{
		Host:             getEnv("HOST", "0.0.0.0"),
		Port:             getEnvInt("PORT", 8080),
		JWTSecret:        getEnv("JWT_SECRET", "development-secret-change-in-production"),
		OutputDir:        getEnv("OUTPUT_DIR", "./out"),
		ExtractionURL:    getEnv("EXTRACTION_URL", ""),
		ExtractionAPIKey: getEnv("EXTRACTION_API_KEY", ""),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
