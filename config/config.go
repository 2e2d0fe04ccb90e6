package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	BackendHTTP   = "http"
	BackendPython = "python"
)

type Config struct {
	Server   ServerConfig
	Pipeline PipelineConfig
	App      AppConfig
}

type ServerConfig struct {
	Port           string
	AllowedOrigins []string
	RateLimit      float64
	RateBurst      int
	MaxBodyBytes   int64
}

type PipelineConfig struct {
	Backend    string
	URL        string
	Timeout    time.Duration
	PythonExec string
	Script     string
	WorkDir    string
}

type AppConfig struct {
	Environment string
	Version     string
}

// Debug reports whether the service runs in development mode.
func (a AppConfig) Debug() bool {
	return a.Environment == "development"
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "5000"),
			AllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS"),
			RateLimit:      getEnvAsFloat("ANALYZE_RATE_LIMIT", 0),
			RateBurst:      getEnvAsInt("ANALYZE_RATE_BURST", 1),
			MaxBodyBytes:   int64(getEnvAsInt("MAX_BODY_BYTES", 1<<20)),
		},
		Pipeline: PipelineConfig{
			Backend:    strings.ToLower(getEnv("PIPELINE_BACKEND", BackendHTTP)),
			URL:        getEnv("PIPELINE_URL", "http://localhost:8000"),
			Timeout:    getEnvAsDuration("PIPELINE_TIMEOUT", 10*time.Minute),
			PythonExec: getEnv("PYTHON_EXEC", "python3"),
			Script:     getEnv("PIPELINE_SCRIPT", ""),
			WorkDir:    getEnv("PIPELINE_WORKDIR", ""),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", getEnv("FLASK_ENV", "production")),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Server.RateLimit < 0 {
		return fmt.Errorf("ANALYZE_RATE_LIMIT must not be negative")
	}

	if c.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("MAX_BODY_BYTES must be positive")
	}

	switch c.Pipeline.Backend {
	case BackendHTTP:
		if c.Pipeline.URL == "" {
			return fmt.Errorf("PIPELINE_URL is required for the http backend")
		}
	case BackendPython:
		if c.Pipeline.Script == "" {
			return fmt.Errorf("PIPELINE_SCRIPT is required for the python backend")
		}
	default:
		return fmt.Errorf("unknown PIPELINE_BACKEND %q", c.Pipeline.Backend)
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid number for %s, using default: %g", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid duration for %s, using default: %s", key, defaultValue)
		return defaultValue
	}

	return value
}

// getEnvAsList splits a comma separated value, dropping blanks.
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
