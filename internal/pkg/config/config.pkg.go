package config

import (
	"time"
	"timeservice/internal/common/enum"
	"timeservice/internal/pkg/helper"

	"github.com/joho/godotenv"
)

const (
	defaultGatewayPort     = 3000
	defaultProviderPort    = 4000
	defaultProviderURL     = "http://localhost:4000"
	defaultUpstreamTimeout = 10 * time.Second
)

// Config holds every runtime setting of both services. It is populated once at
// startup and passed down; nothing below main reads the environment directly.
type Config struct {
	Env             enum.EnvEnum
	GatewayPort     int
	ProviderPort    int
	ProviderURL     string
	UpstreamTimeout time.Duration
}

func Load() *Config {
	// .env is optional, real deployments set the environment directly
	_ = godotenv.Load()

	cfg := &Config{
		Env:             enum.EnvEnum(helper.GetEnv("APP_ENV")),
		GatewayPort:     defaultGatewayPort,
		ProviderPort:    defaultProviderPort,
		ProviderURL:     defaultProviderURL,
		UpstreamTimeout: defaultUpstreamTimeout,
	}

	if !cfg.Env.IsValid() {
		cfg.Env = enum.DEVELOPMENT
	}
	if port := helper.GetEnvAsInt("GATEWAY_PORT"); port > 0 {
		cfg.GatewayPort = port
	}
	if port := helper.GetEnvAsInt("PROVIDER_PORT"); port > 0 {
		cfg.ProviderPort = port
	}
	if url := helper.GetEnv("API2_URL"); url != "" {
		cfg.ProviderURL = url
	}
	if secs := helper.GetEnvAsInt("API2_TIMEOUT_SECONDS"); secs > 0 {
		cfg.UpstreamTimeout = time.Duration(secs) * time.Second
	}

	return cfg
}
