package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

type fakeExec struct {
	calls []string
	err   error
}

func (f *fakeExec) record(name string) error {
	f.calls = append(f.calls, name)
	return f.err
}

func (f *fakeExec) Register(context.Context) error    { return f.record("register") }
func (f *fakeExec) Login(context.Context) error       { return f.record("login") }
func (f *fakeExec) Logout(context.Context) error      { return f.record("logout") }
func (f *fakeExec) WhoAmI(context.Context) error      { return f.record("whoami") }
func (f *fakeExec) SetUsername(context.Context) error { return f.record("set-username") }
func (f *fakeExec) SetEmail(context.Context) error    { return f.record("set-email") }
func (f *fakeExec) SetPassword(context.Context) error { return f.record("set-password") }
func (f *fakeExec) Packages(context.Context) error    { return f.record("packages") }
func (f *fakeExec) User(_ context.Context, id string) error {
	return f.record("user " + id)
}

func TestRunREPL_Dispatch(t *testing.T) {
	input := strings.Join([]string{
		"help",
		"",
		"whoami",
		"login",
		"register",
		"set-username",
		"set-email",
		"set-password",
		"packages",
		"user 42",
		"user",
		"user 1 2",
		"logout",
		"foobar",
		"exit",
		"whoami",
	}, "\n")

	exec := &fakeExec{}
	var out bytes.Buffer
	runREPL(context.Background(), exec, func() string { return "" }, rdr(input), &out)

	assert.Equal(t, []string{
		"whoami", "login", "register", "set-username", "set-email",
		"set-password", "packages", "user 42", "logout",
	}, exec.calls)

	s := out.String()
	assert.Contains(t, s, "Available commands:")
	assert.Equal(t, 2, strings.Count(s, "Usage: user <id>"))
	assert.Contains(t, s, "Unknown command: foobar")
	assert.True(t, strings.HasSuffix(s, "Bye!\n"))
}

func TestRunREPL_PromptFollowsStatus(t *testing.T) {
	status := ""
	exec := &fakeExec{}
	var out bytes.Buffer

	runREPL(context.Background(), exec, func() string {
		defer func() { status = "(ana)" }()
		return status
	}, rdr("whoami\nquit\n"), &out)

	assert.Equal(t, "lyra> lyra (ana)> Bye!\n", out.String())
}

func TestRunREPL_EOFEnds(t *testing.T) {
	exec := &fakeExec{}
	var out bytes.Buffer
	runREPL(context.Background(), exec, func() string { return "" }, rdr("whoami"), &out)

	assert.Equal(t, []string{"whoami"}, exec.calls)
	assert.NotContains(t, out.String(), "Bye!")
}

func TestRunREPL_HandlerErrorIsPrinted(t *testing.T) {
	exec := &fakeExec{err: errors.New("stdin closed")}
	var out bytes.Buffer
	runREPL(context.Background(), exec, func() string { return "" }, rdr("login\nexit\n"), &out)

	assert.Contains(t, out.String(), "Error: stdin closed")
	assert.Contains(t, out.String(), "Bye!")
}
