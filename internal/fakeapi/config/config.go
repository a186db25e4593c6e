// Package config handles configuration for the fakeapi server: defaults, an
// optional JSON overlay and command-line flags.
package config

import "time"

// Config holds runtime settings for the fakeapi server.
//
// Fields:
//   - Addr: HTTP bind address.
//   - SecretKey: HMAC secret for signing tokens (HS256). Development only.
//   - TokenTTL: lifetime of issued tokens.
//   - Seed: create the demo account and packages at startup.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	Addr      string
	SecretKey string
	TokenTTL  time.Duration
	Seed      bool
	LogLevel  string
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.Addr = "127.0.0.1:8080"
	c.SecretKey = "secretKey"
	c.TokenTTL = 90 * 24 * time.Hour
	c.Seed = true
	c.LogLevel = "info"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags in args.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}
