// Package cli holds what the CLI commands share.
package cli

import (
	"context"
	"fmt"

	"github.com/chanomhub/desktop/internal/bootstrap"
	"github.com/chanomhub/desktop/internal/cli/styles"
)

// QuietLogLevel keeps TUIs readable.
const QuietLogLevel = "warn"

// App is the bootstrap graph plus the terminal theme.
type App struct {
	*bootstrap.App
	Theme *styles.Theme
}

// NewApp builds the application graph for a CLI command. The caller owns
// the returned App and must Close it.
func NewApp(ctx context.Context, opts bootstrap.Options) (*App, error) {
	core, _, err := bootstrap.New(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("initialize app: %w", err)
	}
	return &App{App: core, Theme: styles.NewTheme()}, nil
}

// Close releases the graph.
func (a *App) Close() {
	a.App.Close(a.Context())
}
