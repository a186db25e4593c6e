package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/lyrapkg/lyra/internal/client/config"
	"github.com/lyrapkg/lyra/internal/logging"
)

// Root is the lyra command tree together with the App its commands run on.
type Root struct {
	*cobra.Command
	app *App
}

// Execute runs the command tree and then closes the App, whether or not the
// command failed.
func (r *Root) Execute() error {
	err := r.Command.Execute()
	if r.app != nil {
		if cerr := r.app.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// NewRootCommand builds the lyra command tree. args are the raw process
// arguments used to locate the JSON config file before cobra parses flags.
func NewRootCommand(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) (*Root, error) {
	cfg, err := config.LoadConfig(args)
	if err != nil {
		return nil, err
	}

	var (
		r          = &Root{}
		ephemeral  bool
		configPath string
	)

	root := &cobra.Command{
		Use:           "lyra",
		Short:         "Command-line client for the Lyra package registry",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			log := logging.NewTextLogger(errOut, cfg.LogLevel)
			a, err := NewApp(cmd.Context(), cfg, ephemeral, log, in, out)
			if err != nil {
				return err
			}
			r.app = a
			a.Start(cmd.Context())
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintln(out, "Lyra CLI (type 'help' for commands)")
			r.app.Run(cmd.Context())
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&cfg.APIBaseURL, "api", "a", cfg.APIBaseURL, "registry API base URL")
	pf.StringVar(&cfg.DatabasePath, "db", cfg.DatabasePath, "path of the local SQLite database")
	pf.DurationVar(&cfg.RequestTimeout, "timeout", cfg.RequestTimeout, "timeout for a single API request")
	pf.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn or error")
	pf.StringVarP(&configPath, "config", "c", "", "JSON config file")
	pf.BoolVar(&ephemeral, "ephemeral", false, "keep the credential in memory only")

	get := func() *App { return r.app }
	root.AddCommand(
		whoamiCmd(get),
		logoutCmd(get),
		packagesCmd(get),
		userCmd(get),
	)

	root.SetContext(ctx)
	root.SetArgs(args)
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)
	r.Command = root
	return r, nil
}

func whoamiCmd(app func() *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show who is logged in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app().WhoAmI(cmd.Context())
		},
	}
}

func logoutCmd(app func() *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored credential",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app().Logout(cmd.Context())
		},
	}
}

func packagesCmd(app func() *App) *cobra.Command {
	return &cobra.Command{
		Use:   "packages",
		Short: "List packages in the registry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app().Packages(cmd.Context())
		},
	}
}

func userCmd(app func() *App) *cobra.Command {
	return &cobra.Command{
		Use:   "user <id>",
		Short: "Show a user's public profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app().User(cmd.Context(), args[0])
		},
	}
}

// Execute runs the CLI against the process's standard streams.
func Execute(ctx context.Context) error {
	root, err := NewRootCommand(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	if err != nil {
		return err
	}
	return root.Execute()
}
