package config

import (
	"testing"
	"time"
	"timeservice/internal/common/enum"

	"github.com/stretchr/testify/assert"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"APP_ENV", "GATEWAY_PORT", "PROVIDER_PORT", "API2_URL", "API2_TIMEOUT_SECONDS"} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()

	assert.Equal(t, enum.DEVELOPMENT, cfg.Env)
	assert.Equal(t, 3000, cfg.GatewayPort)
	assert.Equal(t, 4000, cfg.ProviderPort)
	assert.Equal(t, "http://localhost:4000", cfg.ProviderURL)
	assert.Equal(t, 10*time.Second, cfg.UpstreamTimeout)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("GATEWAY_PORT", "8080")
	t.Setenv("PROVIDER_PORT", "8081")
	t.Setenv("API2_URL", "http://api2:4000")
	t.Setenv("API2_TIMEOUT_SECONDS", "3")

	cfg := Load()

	assert.Equal(t, enum.PRODUCTION, cfg.Env)
	assert.Equal(t, 8080, cfg.GatewayPort)
	assert.Equal(t, 8081, cfg.ProviderPort)
	assert.Equal(t, "http://api2:4000", cfg.ProviderURL)
	assert.Equal(t, 3*time.Second, cfg.UpstreamTimeout)
}

func TestLoadRejectsUnknownEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "bananas")

	cfg := Load()
	assert.Equal(t, enum.DEVELOPMENT, cfg.Env)
}
