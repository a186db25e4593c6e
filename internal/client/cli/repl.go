package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	SetUsername(ctx context.Context) error
	SetEmail(ctx context.Context) error
	SetPassword(ctx context.Context) error
	Packages(ctx context.Context) error
	User(ctx context.Context, id string) error
}

const helpText = `Available commands:
  whoami         show who is logged in
  login          log in with email and password
  register       create an account
  logout         forget the stored credential
  set-username   change your username
  set-email      change your email
  set-password   change your password
  packages       list packages
  user <id>      show a user's profile
  exit | quit    leave the program`

// runREPL reads commands from reader until EOF or "exit"/"quit" and dispatches
// them to a. The prompt includes statusFn() so it follows the session.
//
// Errors returned by handlers are printed and the loop continues; only input
// errors end it.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, out io.Writer) {
	for {
		prompt := "lyra"
		if s := statusFn(); s != "" {
			prompt += " " + s
		}
		fmt.Fprintf(out, "%s> ", prompt)

		line, err := readLine(reader)
		if err != nil {
			fmt.Fprintln(out)
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var cmdErr error
		switch cmd {
		case "help":
			fmt.Fprintln(out, helpText)
		case "whoami":
			cmdErr = a.WhoAmI(ctx)
		case "login":
			cmdErr = a.Login(ctx)
		case "register":
			cmdErr = a.Register(ctx)
		case "logout":
			cmdErr = a.Logout(ctx)
		case "set-username":
			cmdErr = a.SetUsername(ctx)
		case "set-email":
			cmdErr = a.SetEmail(ctx)
		case "set-password":
			cmdErr = a.SetPassword(ctx)
		case "packages":
			cmdErr = a.Packages(ctx)
		case "user":
			if len(args) != 1 {
				fmt.Fprintln(out, "Usage: user <id>")
				continue
			}
			cmdErr = a.User(ctx, args[0])
		case "exit", "quit":
			fmt.Fprintln(out, "Bye!")
			return
		default:
			fmt.Fprintln(out, "Unknown command:", cmd)
		}

		if cmdErr != nil {
			fmt.Fprintln(out, "Error:", cmdErr)
		}
	}
}
