// Package cli provides the lyra command-line client.
//
// Without a subcommand it starts an interactive REPL whose prompt follows the
// signed-in user. The subcommands whoami, logout, packages and user run once
// and exit. Configuration comes from defaults, an optional JSON file,
// LYRA_* environment variables and flags, in that order.
//
// See NewRootCommand, App and runREPL.
package cli
