package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Duration accepts either a string like "3s" or integer nanoseconds.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case float64:
		d.Duration = time.Duration(value)
		return nil
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", value, err)
		}
		d.Duration = parsed
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

// jsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields distinguish "absent" from zero so that a partial file only
// overrides what it names.
type jsonConfig struct {
	ServerEndpointURL   *string   `json:"server_endpoint_url"`
	DatabasePath        *string   `json:"database_path"`
	RequestTimeout      *Duration `json:"request_timeout"`
	MaxResponseBytes    *int64    `json:"max_response_bytes"`
	LogLevel            *string   `json:"log_level"`
	NotificationTTL     *Duration `json:"notification_ttl"`
	OnlineCheckInterval *Duration `json:"online_check_interval"`
}

// parseJSON overlays cfg with the values present in the file at path.
func parseJSON(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	if jc.ServerEndpointURL != nil {
		cfg.ServerEndpointURL = *jc.ServerEndpointURL
	}
	if jc.DatabasePath != nil {
		cfg.DatabasePath = *jc.DatabasePath
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.MaxResponseBytes != nil {
		cfg.MaxResponseBytes = *jc.MaxResponseBytes
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	if jc.NotificationTTL != nil {
		cfg.NotificationTTL = jc.NotificationTTL.Duration
	}
	if jc.OnlineCheckInterval != nil {
		cfg.OnlineCheckInterval = jc.OnlineCheckInterval.Duration
	}
	return nil
}
