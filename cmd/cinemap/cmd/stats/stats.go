// Package stats provides the catalog statistics command.
package stats

import (
	"github.com/spf13/cobra"

	appcontext "github.com/agentstation/cinemap/cmd/cinemap/context"
	"github.com/agentstation/cinemap/internal/cmd/output"
)

// NewCommand creates the stats command.
func NewCommand(appCtx appcontext.Context) *cobra.Command {
	return &cobra.Command{
		Use:     "stats",
		GroupID: "core",
		Short:   "Show the ingestion report and catalog counts",
		Example: `  cinemap stats
  cinemap stats --format yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := output.ParseFormat(appCtx.OutputFormat())
			if err != nil {
				return err
			}

			cm, err := appCtx.Cinemap(cmd.Context())
			if err != nil {
				return err
			}

			summary := output.NewSummary(cm.Stats(), cm.Report())
			return summary.Write(cmd.OutOrStdout(), output.DetectFormat(string(format)))
		},
	}
}
