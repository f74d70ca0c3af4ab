package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chanomhub/desktop/internal/application/usecase"
	"github.com/chanomhub/desktop/internal/cli/styles"
	"github.com/chanomhub/desktop/internal/infrastructure/deps"
)

var errRuntimeMissing = errors.New("runtime requirements not met")

var doctorPrefix string

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the GTK4 and WebKitGTK libraries the window needs",
	Long: `Doctor asks pkg-config for the versions of GTK4, WebKitGTK 6.0 and GLib
and compares them with the minimum the window is built against.

Use --prefix for libraries installed outside the system paths, for
example under /opt.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		out := usecase.NewCheckRuntimeUseCase(deps.NewPkgConfig()).Execute(cmd.Context(), doctorPrefix)

		report := styles.DoctorReport{OK: out.OK, Prefix: out.Prefix}
		for _, c := range out.Checks {
			report.Checks = append(report.Checks, styles.DoctorCheck{
				Name:       c.DisplayName,
				Installed:  c.Installed,
				Version:    c.Version,
				MinVersion: c.MinVersion,
				OK:         c.OK,
				Error:      c.Error,
			})
		}
		fmt.Fprintln(cmd.OutOrStdout(), styles.NewDoctorRenderer(styles.NewTheme()).Render(report))

		if !out.OK {
			return errRuntimeMissing
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
	doctorCmd.Flags().StringVar(&doctorPrefix, "prefix", "", "install prefix searched before the system paths")
}
