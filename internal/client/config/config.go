package config

import (
	"os"
	"path/filepath"
	"time"
)

// Config holds runtime settings for the lyra CLI.
//
// Fields:
//   - APIBaseURL: base URL of the registry API; routes are joined onto it.
//   - DatabasePath: SQLite file holding local client state (the credential slot).
//   - RequestTimeout: upper bound for a single API call.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	APIBaseURL     string        `env:"API_URL"`
	DatabasePath   string        `env:"DB_PATH"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
	LogLevel       string        `env:"LOG_LEVEL"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8080"
	c.DatabasePath = defaultDatabasePath()
	c.RequestTimeout = 10 * time.Second
	c.LogLevel = "info"
}

func defaultDatabasePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "lyra.db"
	}
	return filepath.Join(dir, "lyra", "lyra.db")
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// a JSON file (if -c/--config is present in args) and LYRA_* environment
// variables. Later sources take precedence over earlier ones. Command-line
// flags are bound on top of the result by the cli package.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
