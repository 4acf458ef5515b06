// Package cliutil wires the session machinery into the cobra command trees.
package cliutil

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/papertrade/console/internal/config"
	"github.com/papertrade/console/internal/session"
	"github.com/papertrade/console/pkg/sdk"
)

type contextKey string

const appKey contextKey = "papertrade-app"

// App holds the per-invocation wiring shared by all commands of one console.
// It is injected into the cobra command context by the root command's
// PersistentPreRunE and consumed by the subcommands.
type App struct {
	Config     *config.Config
	Provider   *Provider
	LoginHint  string
	LogoutHint string
}

// InjectApp adds the app to the cobra command context.
func InjectApp(ctx context.Context, app *App) context.Context {
	return context.WithValue(ctx, appKey, app)
}

// FromContext retrieves the app from the command context.
func FromContext(ctx context.Context) (*App, bool) {
	app, ok := ctx.Value(appKey).(*App)
	return app, ok
}

// MustFromContext retrieves the app or panics. Only for command RunE
// functions, which always run after the root command injected it.
func MustFromContext(ctx context.Context) *App {
	app, ok := FromContext(ctx)
	if !ok {
		panic("papertrade: app not found in context - this is a bug in the console")
	}
	return app
}

// Client returns the configured SDK client for the invoking command.
func Client(cmd *cobra.Command) (*sdk.Client, error) {
	return MustFromContext(cmd.Context()).Provider.Client()
}

// CurrentSession returns the session for the invoking command.
func CurrentSession(cmd *cobra.Command) (*session.Session, error) {
	return MustFromContext(cmd.Context()).Provider.Session()
}
