// Package config loads runtime configuration for the Dutch client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or --config.
//  3. DUTCH_* environment variables.
//  4. Command-line flags (see Flags), which override everything else.
//
// # JSON schema
//
// Durations can be either strings like "3s" or integer nanoseconds:
//
//	{
//	  "server_endpoint_url": "http://localhost:8080/query",
//	  "database_path": "dutch.db",
//	  "request_timeout": "30s",
//	  "max_response_bytes": 10485760,
//	  "log_level": "info",
//	  "notification_ttl": "3s",
//	  "online_check_interval": "3s"
//	}
//
// # Environment
//
//	DUTCH_SERVER_URL, DUTCH_DB_PATH, DUTCH_REQUEST_TIMEOUT,
//	DUTCH_MAX_RESPONSE_BYTES, DUTCH_LOG_LEVEL, DUTCH_NOTIFICATION_TTL,
//	DUTCH_ONLINE_CHECK_INTERVAL
package config
