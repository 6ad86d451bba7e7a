package app

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/agentstation/cinemap/cmd/cinemap/cmd/query"
	"github.com/agentstation/cinemap/cmd/cinemap/cmd/repl"
	"github.com/agentstation/cinemap/cmd/cinemap/cmd/stats"
)

// NewReplCommand creates the repl command with app dependencies.
func (a *App) NewReplCommand() *cobra.Command {
	return repl.NewCommand(a)
}

// NewQueryCommand creates the query command with app dependencies.
func (a *App) NewQueryCommand() *cobra.Command {
	return query.NewCommand(a)
}

// NewStatsCommand creates the stats command with app dependencies.
func (a *App) NewStatsCommand() *cobra.Command {
	return stats.NewCommand(a)
}

// NewVersionCommand creates the version command.
func (a *App) NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "cinemap version %s\n", a.version)
			fmt.Fprintf(out, "commit: %s\n", a.commit)
			fmt.Fprintf(out, "built: %s\n", a.date)
			fmt.Fprintf(out, "built by: %s\n", a.builtBy)
			fmt.Fprintf(out, "go version: %s\n", runtime.Version())
			fmt.Fprintf(out, "platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}
