// Package query provides the one-shot query command.
package query

import (
	"fmt"

	"github.com/spf13/cobra"

	appcontext "github.com/agentstation/cinemap/cmd/cinemap/context"
	"github.com/agentstation/cinemap/pkg/errors"
)

// NewCommand creates the query command.
func NewCommand(appCtx appcontext.Context) *cobra.Command {
	return &cobra.Command{
		Use:     "query LINE...",
		GroupID: "core",
		Short:   "Answer the command lines given as arguments",
		Long: `Query loads the catalog and runs each argument as one command line,
printing one response per argument. Quote each command line as a single
argument.`,
		Example: `  cinemap query "COUNT_MOVIES_YEAR 2000"
  cinemap query "GET_TOP_VOTED_TITLES_YEAR 2000 3" "COUNT_MOVIES_ACTOR_YEAR 2000 Tom Hanks"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cm, err := appCtx.Cinemap(ctx)
			if err != nil {
				return err
			}

			failed := 0
			for _, line := range args {
				result, err := cm.Execute(ctx, line)
				if err != nil {
					if errors.IsCanceled(err) {
						return err
					}
					fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
					failed++
					continue
				}
				fmt.Fprintln(cmd.OutOrStdout(), result)
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d commands failed", failed, len(args))
			}
			return nil
		},
	}
}
