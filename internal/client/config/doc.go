// Package config loads runtime configuration for the lyra CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c, -config or --config.
//  3. LYRA_* environment variables.
//  4. Command-line flags, bound by the cli package on top of the loaded
//     Config.
//
// # JSON schema
//
//	{
//	  "api_base_url": "https://registry.example.com/api",
//	  "database_path": "/home/ana/.config/lyra/lyra.db",
//	  "request_timeout": "10s",
//	  "log_level": "debug"
//	}
//
// # Environment
//
//	LYRA_API_URL, LYRA_DB_PATH, LYRA_REQUEST_TIMEOUT, LYRA_LOG_LEVEL
package config
