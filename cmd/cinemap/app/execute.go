package app

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentstation/cinemap/cmd/cinemap/cmd/repl"
)

// Execute runs the cinemap CLI application with the given arguments.
// This is the main entry point called from main.go.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	rootCmd.SetIn(a.in)
	rootCmd.SetOut(a.out)
	rootCmd.SetErr(a.errOut)

	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all subcommands.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "cinemap",
		Short:   "Movie catalog query CLI",
		Version: a.version,
		Long: `Cinemap loads a catalog of movies, actors and genres from three
comma-separated files and answers line commands about it.

Without a subcommand it reads commands from standard input until QUIT,
the same as "cinemap repl".`,
		Args:              cobra.NoArgs,
		PersistentPreRunE: a.setupCommand,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return repl.Run(cmd.Context(), a, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "Core Commands:",
	})

	// Global flags. Values are resolved through LoadConfigWithFlags so that
	// only flags given on the command line override env and config file.
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default is $HOME/.cinemap.yaml)")
	flags.String("data-dir", "", "directory holding the source files")
	flags.String("movies", "", "movies source file")
	flags.String("actors", "", "actors source file")
	flags.String("genres", "", "genres source file")
	flags.String("encoding", "", "source text encoding: utf-8, latin1, windows-1252")
	flags.BoolP("verbose", "v", false, "verbose output (shortcut for --log-level=debug)")
	flags.BoolP("quiet", "q", false, "minimal output (shortcut for --log-level=warn)")
	flags.Bool("no-color", false, "disable colored output")
	flags.StringP("format", "o", "", "output format: table, json, yaml")
	flags.String("log-level", "", "log level: trace, debug, info, warn, error (overrides -v/-q)")

	rootCmd.SetVersionTemplate("cinemap {{.Version}}\n")

	a.registerCommands(rootCmd)

	return rootCmd
}

// setupCommand is called before any command runs.
func (a *App) setupCommand(cmd *cobra.Command, _ []string) error {
	config, err := LoadConfigWithFlags(cmd.Flags())
	if err != nil {
		return err
	}
	a.config = config

	// Reinitialize logger with updated config
	logger := NewLogger(a.config)
	a.logger = &logger

	a.logger.Debug().
		Str("data_dir", config.DataDir).
		Str("config_file", config.ConfigFile).
		Bool("verbose", mustGetBool(cmd, "verbose")).
		Str("command", cmd.Name()).
		Msg("Configuration loaded")

	return nil
}

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	// Core commands
	rootCmd.AddCommand(a.NewReplCommand())
	rootCmd.AddCommand(a.NewQueryCommand())
	rootCmd.AddCommand(a.NewStatsCommand())

	// Utility commands
	rootCmd.AddCommand(a.NewVersionCommand())
}

// ExitOnError is a helper that prints an error and exits with status 1.
// This is meant to be used in main.go for top-level error handling.
func ExitOnError(err error) {
	if err != nil {
		//nolint:errcheck // Ignoring write error since we're exiting anyway
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

// mustGetBool retrieves a boolean flag value or panics if the flag doesn't exist.
// This should only be used for flags defined in this package.
func mustGetBool(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}
