package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chanomhub/desktop/internal/bootstrap"
	"github.com/chanomhub/desktop/internal/logging"
	"github.com/chanomhub/desktop/internal/ui/window"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the chanomhub window (default)",
	Long: `Open the main window on the home page. Downloads started by the site
are handled by the built-in download manager; the Menu entry gives access
to the downloads, library and settings pages.`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runWindow(cmd *cobra.Command, _ []string) error {
	a, err := openApp(cmd.Context(), func(o *bootstrap.Options) {
		o.WatchConfig = true
		// No TUI to protect: an empty level means the configured one.
		o.LogLevel = logLevel
	})
	if err != nil {
		return err
	}
	ctx := a.Context()

	go a.StartBackground(ctx)

	if err := window.Run(ctx, a.App); err != nil {
		if errors.Is(err, window.ErrUnavailable) {
			return fmt.Errorf("%w; `chanomhub doctor` checks the GTK and WebKitGTK libraries", err)
		}
		logging.FromContext(ctx).Error().Err(err).Msg("window failed")
		return err
	}
	return nil
}
