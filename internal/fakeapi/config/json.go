package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/lyrapkg/lyra/internal/flagx"
	"github.com/lyrapkg/lyra/internal/timex"
)

// JsonConfig is the JSON file form of Config. Absent keys keep their
// current value.
type JsonConfig struct {
	Addr      *string         `json:"addr"`
	SecretKey *string         `json:"secret_key"`
	TokenTTL  *timex.Duration `json:"token_ttl"`
	Seed      *bool           `json:"seed"`
	LogLevel  *string         `json:"log_level"`
}

func parseJson(cfg *Config, args []string) error {
	path := flagx.JsonConfigFlags(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if jc.Addr != nil {
		cfg.Addr = *jc.Addr
	}
	if jc.SecretKey != nil {
		cfg.SecretKey = *jc.SecretKey
	}
	if jc.TokenTTL != nil {
		cfg.TokenTTL = jc.TokenTTL.Duration
	}
	if jc.Seed != nil {
		cfg.Seed = *jc.Seed
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	return nil
}
