package config

import (
	"flag"
	"io"

	"github.com/lyrapkg/lyra/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags:
//
//	-a string     bind address (e.g., "127.0.0.1:8080")
//	-s string     token signing secret
//	-t duration   token lifetime (e.g., "24h")
//	-l string     log level
//	-seed bool    create demo data (use -seed=false to disable)
//
// Only these flags are read from args, so -c and anything else is ignored.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-s", "-t", "-l", "-seed"})

	fs := flag.NewFlagSet("fakeapi", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.Addr, "a", cfg.Addr, "address and port to run server")
	fs.StringVar(&cfg.SecretKey, "s", cfg.SecretKey, "token signing secret")
	fs.DurationVar(&cfg.TokenTTL, "t", cfg.TokenTTL, "token lifetime")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.BoolVar(&cfg.Seed, "seed", cfg.Seed, "create demo data")

	return fs.Parse(args)
}
