// Package context provides the application context interface for cinemap commands.
//
// Commands accept a Context instead of the concrete App so they can be
// tested against a MockContext.
//
//	func NewCommand(appCtx context.Context) *cobra.Command {
//	    return &cobra.Command{
//	        RunE: func(cmd *cobra.Command, args []string) error {
//	            cm, err := appCtx.Cinemap(cmd.Context())
//	            if err != nil {
//	                return err
//	            }
//	            // ... use cm
//	            return nil
//	        },
//	    }
//	}
package context

import (
	stdctx "context"

	"github.com/rs/zerolog"

	"github.com/agentstation/cinemap"
)

// Context defines what commands need from the application.
type Context interface {
	// Cinemap returns the loaded cinemap instance, creating it lazily if needed.
	Cinemap(ctx stdctx.Context) (cinemap.Cinemap, error)

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (table, json, yaml).
	OutputFormat() string

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
