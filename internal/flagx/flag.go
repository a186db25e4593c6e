// Package flagx holds small helpers for sharing os.Args between the config
// loader and the cobra command tree.
package flagx

import (
	"flag"
	"io"
	"strings"
)

// FilterArgs returns only the arguments naming one of allowedFlags, together
// with their values.
//
// Supported formats:
//  1. Flag and value as separate arguments:  -c lyra.json
//  2. Flag and value combined with '=':      --config=lyra.json
//
// A value is taken from the next argument only when it does not itself start
// with '-'. The result is never nil.
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
	}

	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name := strings.SplitN(arg, "=", 2)[0]
			if _, ok := allowed[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, ok := allowed[arg]; ok {
			filtered = append(filtered, arg)
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				filtered = append(filtered, args[i+1])
				i++
			}
		}
	}

	return filtered
}

// JsonConfigFlags extracts the config file path given via -c, -config or
// --config from args (usually os.Args[1:]). Every other argument is ignored,
// so the cobra command tree can still parse the full list afterwards.
//
// If no config flag is present, an empty string is returned.
func JsonConfigFlags(args []string) string {
	var config string

	filtered := FilterArgs(args, []string{"-c", "-config", "--config"})

	fs := flag.NewFlagSet("json", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&config, "config", "", "Path to config file")
	fs.StringVar(&config, "c", "", "Path to config file (short)")
	_ = fs.Parse(filtered)

	return config
}
