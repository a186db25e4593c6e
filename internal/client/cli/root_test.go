package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lyrapkg/lyra/internal/fakeapi"
	"github.com/lyrapkg/lyra/internal/testutil"
)

// run executes one lyra invocation with stdin set to input.
func run(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root, err := NewRootCommand(context.Background(), args, strings.NewReader(input), &out, &errOut)
	if err != nil {
		return "", err
	}
	err = root.Execute()
	return out.String(), err
}

func TestRoot_PackagesAndUser(t *testing.T) {
	base, api := testutil.StartFakeAPI(t)
	demo, err := fakeapi.Seed(api)
	require.NoError(t, err)

	out, err := run(t, "", "--ephemeral", "--api", base, "packages")
	require.NoError(t, err)
	assert.Contains(t, out, "strings@1.2.0\tString helpers")
	assert.Contains(t, out, "math@0.3.1\tInteger math")

	out, err = run(t, "", "--ephemeral", "-a", base, "user", demo.ID)
	require.NoError(t, err)
	assert.Contains(t, out, "Username: demo")
	assert.Contains(t, out, "Packages: strings, math")

	_, err = run(t, "", "--ephemeral", "-a", base, "user")
	require.Error(t, err)
}

func TestRoot_FailingCommandStillClosesDatabase(t *testing.T) {
	db := filepath.Join(t.TempDir(), "lyra.db")
	var out, errOut bytes.Buffer
	root, err := NewRootCommand(context.Background(), []string{"--db", db, "boom"}, strings.NewReader(""), &out, &errOut)
	require.NoError(t, err)
	root.AddCommand(&cobra.Command{
		Use: "boom",
		RunE: func(*cobra.Command, []string) error {
			return errors.New("boom")
		},
	})

	require.EqualError(t, root.Execute(), "boom")
	require.NotNil(t, root.app)
	require.NotNil(t, root.app.db)
	assert.ErrorContains(t, root.app.db.Ping(), "database is closed")
}

func TestRoot_LoginPersistsAcrossRuns(t *testing.T) {
	stubTerminal(t, false, "", nil)
	base, api := testutil.StartFakeAPI(t)
	_, err := fakeapi.Seed(api)
	require.NoError(t, err)
	db := filepath.Join(t.TempDir(), "nested", "lyra.db")

	out, err := run(t, "", "--db", db, "-a", base, "whoami")
	require.NoError(t, err)
	assert.Equal(t, "Not logged in\n", out)

	script := strings.Join([]string{
		"login",
		fakeapi.DemoEmail,
		fakeapi.DemoPassword,
		"whoami",
		"exit",
	}, "\n") + "\n"
	out, err = run(t, script, "--db", db, "-a", base)
	require.NoError(t, err)
	assert.Contains(t, out, "Welcome, demo!")
	assert.Contains(t, out, "lyra (demo)> ")

	out, err = run(t, "", "--db", db, "-a", base, "whoami")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Logged in as demo <demo@lyra.dev>"), out)

	out, err = run(t, "", "--db", db, "-a", base, "logout")
	require.NoError(t, err)
	assert.Equal(t, "Logged out\n", out)

	out, err = run(t, "", "--db", db, "-a", base, "whoami")
	require.NoError(t, err)
	assert.Equal(t, "Not logged in\n", out)
}

func TestRoot_ConfigSources(t *testing.T) {
	base, api := testutil.StartFakeAPI(t)
	_, err := fakeapi.Seed(api)
	require.NoError(t, err)

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "lyra.json")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`{"api_base_url":"http://127.0.0.1:1"}`), 0o600))

	// the file points at a dead port
	out, err := run(t, "", "--ephemeral", "-c", cfgPath, "packages")
	require.NoError(t, err)
	assert.Contains(t, out, "Failed to load packages")

	// env beats the file
	t.Setenv("LYRA_API_URL", base)
	out, err = run(t, "", "--ephemeral", "-c", cfgPath, "packages")
	require.NoError(t, err)
	assert.Contains(t, out, "strings@1.2.0")

	// flags beat env
	out, err = run(t, "", "--ephemeral", "-c", cfgPath, "--api", "http://127.0.0.1:1", "packages")
	require.NoError(t, err)
	assert.Contains(t, out, "Failed to load packages")

	_, err = run(t, "", "-c", filepath.Join(dir, "missing.json"), "whoami")
	require.Error(t, err)
}
