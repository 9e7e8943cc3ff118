package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds runtime settings for the Dutch client.
//
// Fields:
//   - ServerEndpointURL: URL of the GraphQL endpoint.
//   - DatabasePath: SQLite file of the local store; ":memory:" keeps nothing.
//   - RequestTimeout: per-request limit; 0 disables it.
//   - MaxResponseBytes: largest accepted response body.
//   - LogLevel: debug, info, warn or error.
//   - NotificationTTL: how long a toast stays visible; 0 keeps it.
//   - OnlineCheckInterval: how often the client probes server reachability.
type Config struct {
	ServerEndpointURL   string        `env:"DUTCH_SERVER_URL"`
	DatabasePath        string        `env:"DUTCH_DB_PATH"`
	RequestTimeout      time.Duration `env:"DUTCH_REQUEST_TIMEOUT"`
	MaxResponseBytes    int64         `env:"DUTCH_MAX_RESPONSE_BYTES"`
	LogLevel            string        `env:"DUTCH_LOG_LEVEL"`
	NotificationTTL     time.Duration `env:"DUTCH_NOTIFICATION_TTL"`
	OnlineCheckInterval time.Duration `env:"DUTCH_ONLINE_CHECK_INTERVAL"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointURL = "http://localhost:8080/query"
	c.DatabasePath = "dutch.db"
	c.RequestTimeout = 30 * time.Second
	c.MaxResponseBytes = 10 << 20
	c.LogLevel = "info"
	c.NotificationTTL = 3 * time.Second
	c.OnlineCheckInterval = 3 * time.Second
}

// Load builds a Config from defaults, then the JSON file at configFile (if
// not empty), then DUTCH_* environment variables. Later sources take
// precedence. Command-line flags are applied on top by Flags.Apply.
func Load(configFile string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if configFile != "" {
		if err := parseJSON(cfg, configFile); err != nil {
			return nil, err
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	return cfg, nil
}
