// Package repl provides the interactive command loop.
package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/agentstation/cinemap"
	appcontext "github.com/agentstation/cinemap/cmd/cinemap/context"
	"github.com/agentstation/cinemap/pkg/constants"
	"github.com/agentstation/cinemap/pkg/errors"
)

// NewCommand creates the repl command.
func NewCommand(appCtx appcontext.Context) *cobra.Command {
	return &cobra.Command{
		Use:     "repl",
		GroupID: "core",
		Short:   "Answer commands read from standard input",
		Long: `Repl loads the catalog and then reads one command per line from
standard input, printing each response on its own line. The loop ends on
a QUIT line or at end of input.

Commands with a malformed numeric argument are reported on standard error
and the loop continues.`,
		Example: `  cinemap repl --data-dir ./data
  echo "COUNT_MOVIES_YEAR 2000" | cinemap`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return Run(cmd.Context(), appCtx, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
}

// Run loads the catalog and answers lines from in until QUIT or EOF.
func Run(ctx context.Context, appCtx appcontext.Context, in io.Reader, out, errOut io.Writer) error {
	cm, err := appCtx.Cinemap(ctx)
	if err != nil {
		return err
	}
	return Loop(ctx, cm, appCtx.Logger(), in, out, errOut)
}

// Loop answers lines from in with cm until QUIT, EOF or cancellation.
func Loop(ctx context.Context, cm cinemap.Cinemap, logger *zerolog.Logger, in io.Reader, out, errOut io.Writer) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), constants.MaxLineLength)

	answered := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("%w: %w", errors.ErrCanceled, err)
		}

		line := strings.TrimSuffix(scanner.Text(), "\r")
		if line == constants.QuitCommand {
			break
		}

		result, err := cm.Execute(ctx, line)
		if err != nil {
			if errors.IsCanceled(err) {
				return err
			}
			fmt.Fprintf(errOut, "Error: %v\n", err)
			continue
		}
		if _, err := fmt.Fprintln(out, result); err != nil {
			return errors.WrapIO("write", "stdout", err)
		}
		answered++
	}
	if err := scanner.Err(); err != nil {
		return errors.WrapIO("read", "stdin", err)
	}

	logger.Debug().Int("answered", answered).Msg("Command loop finished")
	return nil
}
