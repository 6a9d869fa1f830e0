// Package doctor implements the doctor command, a health check for the
// external tools pacprune drives.
package doctor

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/pinax-network/pacprune/internal/cmd/output"
	"github.com/pinax-network/pacprune/internal/doctor"
	"github.com/pinax-network/pacprune/pkg/errors"
	"github.com/pinax-network/pacprune/pkg/homemanager"
	"github.com/pinax-network/pacprune/pkg/pacman"
	"github.com/pinax-network/pacprune/pkg/runner"
)

// AppContext defines the interface that the doctor command needs from
// the app.
type AppContext interface {
	Runner() runner.Runner
	Logger() *zerolog.Logger
	OutputFormat() string
}

// NewCommand creates the doctor command with app dependencies.
func NewCommand(app AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check that the required external tools are available",
		Long: `Doctor probes the external tools pacprune drives: yay, pacman, and
home-manager. For each tool it reports the path and, best effort, the
version. Missing required tools fail the command the same way a
reconcile run would.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			statuses := doctor.CheckAll(cmd.Context(), app.Runner(), doctor.Tools())

			format := output.DetectFormat(app.OutputFormat())
			if format == output.FormatJSON || format == output.FormatYAML {
				if err := output.NewFormatter(format).Format(os.Stdout, statuses); err != nil {
					return err
				}
				return checkRequired(statuses)
			}

			if err := output.NewFormatter(output.FormatTable).Format(os.Stdout, statusData(statuses)); err != nil {
				return err
			}
			printSummary(statuses)
			return checkRequired(statuses)
		},
	}
}

// statusData renders tool statuses as table rows.
func statusData(statuses []doctor.Status) output.Data {
	rows := make([][]string, 0, len(statuses))
	for _, s := range statuses {
		state := "missing"
		if s.Available {
			state = "ok"
		}
		rows = append(rows, []string{s.Name, state, s.Version, s.Path})
	}
	return output.Data{
		Headers: []string{"Tool", "Status", "Version", "Path"},
		Rows:    rows,
	}
}

// printSummary names the package manager a reconcile run would pick.
func printSummary(statuses []doctor.Status) {
	available := availability(statuses)
	switch {
	case available[pacman.Yay]:
		fmt.Println("\npacprune would list and remove packages with yay.")
	case available[pacman.Pacman]:
		fmt.Println("\npacprune would list and remove packages with pacman.")
	}
}

// checkRequired fails when a reconcile run would fail, after the
// statuses have been shown.
func checkRequired(statuses []doctor.Status) error {
	available := availability(statuses)

	if !available[pacman.Yay] && !available[pacman.Pacman] {
		return errors.NewToolNotFoundError("an Arch package manager is required", pacman.Yay, pacman.Pacman)
	}
	if !available[homemanager.Executable] {
		return errors.NewToolNotFoundError("the declarative package list comes from Home Manager", homemanager.Executable)
	}
	return nil
}

func availability(statuses []doctor.Status) map[string]bool {
	available := make(map[string]bool, len(statuses))
	for _, s := range statuses {
		available[s.Name] = s.Available
	}
	return available
}
