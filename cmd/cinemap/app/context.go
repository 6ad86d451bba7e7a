package app

import (
	"context"
	"os/signal"
	"syscall"

	appcontext "github.com/agentstation/cinemap/cmd/cinemap/context"
)

// ContextWithSignals creates a context that is cancelled when the application
// receives an interrupt or termination signal.
func ContextWithSignals(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
}

// Ensure App satisfies the command context at compile time.
var _ appcontext.Context = (*App)(nil)
