// Package cmd provides the Cobra commands of chanomhub.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/chanomhub/desktop/internal/bootstrap"
	"github.com/chanomhub/desktop/internal/cli"
	"github.com/chanomhub/desktop/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	logLevel  string
	rootCmd   = &cobra.Command{
		Use:   "chanomhub",
		Short: "Desktop shell for chanomhub.xyz",
		Long: `Chanomhub: the chanomhub.xyz site in a native window.

Adds an application menu, a download manager with pause, resume and
cancel, a local game library and automatic updates.

Run without a subcommand to open the window. The other subcommands work
headless: fetch files, read the download journal, update the binary or
inspect the configuration.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWindow(cmd, args)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				app.Close()
				app = nil
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"override the log level (trace, debug, info, warn, error)")
}

// Execute runs the root command.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// SetBuildInfo sets the build information (called from main before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}

// openApp builds the shared graph for commands that need it. Without
// --log-level only warnings reach the terminal. configure may adjust the
// options before the graph is built.
func openApp(ctx context.Context, configure func(*bootstrap.Options)) (*cli.App, error) {
	opts := bootstrap.Options{Build: buildInfo, LogLevel: logLevel}
	if opts.LogLevel == "" {
		opts.LogLevel = cli.QuietLogLevel
	}
	if configure != nil {
		configure(&opts)
	}
	a, err := cli.NewApp(ctx, opts)
	if err != nil {
		return nil, err
	}
	app = a
	return a, nil
}
