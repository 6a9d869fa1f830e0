package app

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/pinax-network/pacprune/cmd/pacprune/cmd/doctor"
	"github.com/pinax-network/pacprune/cmd/pacprune/cmd/list"
)

// NewListCommand creates the list command with app dependencies.
func (a *App) NewListCommand() *cobra.Command {
	return list.NewCommand(a)
}

// NewDoctorCommand creates the doctor command with app dependencies.
func (a *App) NewDoctorCommand() *cobra.Command {
	return doctor.NewCommand(a)
}

// NewVersionCommand creates the version command.
func (a *App) NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "pacprune version %s\n", a.version)
			fmt.Fprintf(out, "  commit:     %s\n", a.commit)
			fmt.Fprintf(out, "  built:      %s\n", a.date)
			fmt.Fprintf(out, "  built by:   %s\n", a.builtBy)
			fmt.Fprintf(out, "  go version: %s\n", runtime.Version())
			fmt.Fprintf(out, "  platform:   %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}
