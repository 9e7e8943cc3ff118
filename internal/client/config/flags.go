package config

import (
	"time"

	"github.com/spf13/pflag"
)

// Flags are the command-line overrides. Only flags the user actually set
// are applied, so an unset flag never hides a JSON or environment value.
type Flags struct {
	ConfigFile          string
	ServerEndpointURL   string
	DatabasePath        string
	LogLevel            string
	RequestTimeout      time.Duration
	OnlineCheckInterval time.Duration
}

// Bind registers the flags on fs.
//
//	-c, --config string            JSON config file
//	-a, --server string            GraphQL endpoint URL
//	-d, --db string                local database path
//	    --log-level string         debug|info|warn|error
//	    --timeout duration         per-request timeout
//	-i, --check-interval duration  online check interval
func (f *Flags) Bind(fs *pflag.FlagSet) {
	var defaults Config
	defaults.LoadDefaults()

	fs.StringVarP(&f.ConfigFile, "config", "c", "", "JSON config file")
	fs.StringVarP(&f.ServerEndpointURL, "server", "a", defaults.ServerEndpointURL, "GraphQL endpoint URL")
	fs.StringVarP(&f.DatabasePath, "db", "d", defaults.DatabasePath, "local database path")
	fs.StringVar(&f.LogLevel, "log-level", defaults.LogLevel, "log level (debug|info|warn|error)")
	fs.DurationVar(&f.RequestTimeout, "timeout", defaults.RequestTimeout, "per-request timeout (0 disables)")
	fs.DurationVarP(&f.OnlineCheckInterval, "check-interval", "i", defaults.OnlineCheckInterval, "online check interval")
}

// Apply copies every flag that was set on fs into cfg.
func (f *Flags) Apply(fs *pflag.FlagSet, cfg *Config) {
	if fs.Changed("server") {
		cfg.ServerEndpointURL = f.ServerEndpointURL
	}
	if fs.Changed("db") {
		cfg.DatabasePath = f.DatabasePath
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = f.LogLevel
	}
	if fs.Changed("timeout") {
		cfg.RequestTimeout = f.RequestTimeout
	}
	if fs.Changed("check-interval") {
		cfg.OnlineCheckInterval = f.OnlineCheckInterval
	}
}
