package config

import (
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Server ServerConfig
	FRED   FREDConfig
	IMF    IMFConfig
	Demo   DemoConfig
}

type ServerConfig struct {
	Port         string        `envconfig:"SERVER_PORT" default:"8000"`
	Host         string        `envconfig:"SERVER_HOST" default:"0.0.0.0"`
	ReadTimeout  time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"30s"`
	WriteTimeout time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"30s"`
	StaticDir    string        `envconfig:"SERVER_STATIC_DIR" default:"web/static"`
}

type FREDConfig struct {
	Endpoint string        `envconfig:"FRED_MCP_URL" default:"https://fred-mcp.urbancanary.workers.dev"`
	Timeout  time.Duration `envconfig:"FRED_TIMEOUT" default:"30s"`
}

type IMFConfig struct {
	Endpoint string        `envconfig:"IMF_MCP_URL" default:"https://imf-mcp.urbancanary.workers.dev"`
	Timeout  time.Duration `envconfig:"IMF_TIMEOUT" default:"30s"`
}

type DemoConfig struct {
	// LookbackYears is how far back domestic series are fetched.
	LookbackYears int `envconfig:"DEMO_LOOKBACK_YEARS" default:"10"`
}

func LoadConfig() (*Config, error) {
	// A .env file is optional; deployed environments set variables directly.
	if err := godotenv.Load(); err == nil {
		slog.Info("loaded environment from .env file")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	slog.Info("configuration loaded successfully")
	return &cfg, nil
}
