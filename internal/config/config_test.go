package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "HOST", "READ_TIMEOUT", "WRITE_TIMEOUT", "SHUTDOWN_TIMEOUT", "REQUEST_TIMEOUT",
		"TRACKING_PREFIX", "SERVICE_NAME", "SERVICE_VERSION", "CORS_ALLOWED_ORIGINS", "LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 15, cfg.Server.ReadTimeout)
	assert.Equal(t, 60, cfg.Server.RequestTimeout)
	assert.Equal(t, "INST", cfg.Tracking.Prefix)
	assert.Equal(t, "Mock Installation API", cfg.Service.Name)
	assert.Equal(t, "1.0.0", cfg.Service.Version)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("READ_TIMEOUT", "not-a-number")
	t.Setenv("TRACKING_PREFIX", "ACME")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 15, cfg.Server.ReadTimeout, "unparsable ints fall back to the default")
	assert.Equal(t, "ACME", cfg.Tracking.Prefix)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "DEBUG", cfg.LogLevel)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:   ServerConfig{Port: "8080", RequestTimeout: 60},
			Tracking: TrackingConfig{Prefix: "INST"},
			LogLevel: "info",
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "empty port", mutate: func(c *Config) { c.Server.Port = "" }, wantErr: "PORT is required"},
		{name: "zero request timeout", mutate: func(c *Config) { c.Server.RequestTimeout = 0 }, wantErr: "REQUEST_TIMEOUT"},
		{name: "lowercase prefix", mutate: func(c *Config) { c.Tracking.Prefix = "inst" }, wantErr: "invalid tracking prefix"},
		{name: "prefix with hyphen", mutate: func(c *Config) { c.Tracking.Prefix = "IN-ST" }, wantErr: "invalid tracking prefix"},
		{name: "empty prefix", mutate: func(c *Config) { c.Tracking.Prefix = "" }, wantErr: "invalid tracking prefix"},
		{name: "bad log level", mutate: func(c *Config) { c.LogLevel = "verbose" }, wantErr: "invalid log level"},
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

func TestLoad_InvalidPrefix(t *testing.T) {
	t.Setenv("TRACKING_PREFIX", "bad-prefix")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}
