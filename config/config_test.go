package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "APP_ENV", "FLASK_ENV", "PIPELINE_BACKEND", "PIPELINE_URL",
		"PIPELINE_TIMEOUT", "CORS_ALLOWED_ORIGINS", "ANALYZE_RATE_LIMIT", "MAX_BODY_BYTES",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Server.Port)
	assert.Equal(t, BackendHTTP, cfg.Pipeline.Backend)
	assert.Equal(t, "http://localhost:8000", cfg.Pipeline.URL)
	assert.Equal(t, 10*time.Minute, cfg.Pipeline.Timeout)
	assert.Equal(t, int64(1<<20), cfg.Server.MaxBodyBytes)
	assert.Zero(t, cfg.Server.RateLimit)
	assert.Empty(t, cfg.Server.AllowedOrigins)
	assert.False(t, cfg.App.Debug())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("APP_ENV", "")
	t.Setenv("FLASK_ENV", "development")
	t.Setenv("PIPELINE_BACKEND", "Python")
	t.Setenv("PIPELINE_SCRIPT", "crew_bridge.py")
	t.Setenv("PIPELINE_TIMEOUT", "90s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, ,http://b.test")
	t.Setenv("ANALYZE_RATE_LIMIT", "2.5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.True(t, cfg.App.Debug())
	assert.Equal(t, BackendPython, cfg.Pipeline.Backend)
	assert.Equal(t, "crew_bridge.py", cfg.Pipeline.Script)
	assert.Equal(t, 90*time.Second, cfg.Pipeline.Timeout)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 2.5, cfg.Server.RateLimit)
}

func TestLoad_InvalidNumbersFallBack(t *testing.T) {
	t.Setenv("PIPELINE_BACKEND", "")
	t.Setenv("MAX_BODY_BYTES", "lots")
	t.Setenv("PIPELINE_TIMEOUT", "forever")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, int64(1<<20), cfg.Server.MaxBodyBytes)
	assert.Equal(t, 10*time.Minute, cfg.Pipeline.Timeout)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:   ServerConfig{Port: "5000", MaxBodyBytes: 1024},
			Pipeline: PipelineConfig{Backend: BackendHTTP, URL: "http://localhost:8000"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "missing port", mutate: func(c *Config) { c.Server.Port = "" }, wantErr: "PORT is required"},
		{name: "negative rate", mutate: func(c *Config) { c.Server.RateLimit = -1 }, wantErr: "ANALYZE_RATE_LIMIT"},
		{name: "zero body limit", mutate: func(c *Config) { c.Server.MaxBodyBytes = 0 }, wantErr: "MAX_BODY_BYTES"},
		{name: "http without url", mutate: func(c *Config) { c.Pipeline.URL = "" }, wantErr: "PIPELINE_URL"},
		{name: "python without script", mutate: func(c *Config) { c.Pipeline.Backend = BackendPython }, wantErr: "PIPELINE_SCRIPT"},
		{name: "unknown backend", mutate: func(c *Config) { c.Pipeline.Backend = "grpc" }, wantErr: "unknown PIPELINE_BACKEND"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
