package list

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pinax-network/pacprune/internal/cmd/output"
	"github.com/pinax-network/pacprune/pkg/pacman"
)

// NewInstalledCommand creates the list installed subcommand.
func NewInstalledCommand(app AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "installed",
		Short: "List explicitly installed packages",
		Long: `List the packages explicitly installed with the imperative package
manager, preferring yay over pacman.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			manager, err := pacman.Detect(app.Runner())
			if err != nil {
				return err
			}

			names, err := manager.ListExplicit(cmd.Context())
			if err != nil {
				return err
			}

			app.Logger().Debug().
				Str("manager", manager.Name()).
				Int("packages", len(names)).
				Msg("Listing explicitly installed packages")

			format := output.DetectFormat(app.OutputFormat())
			return output.NewFormatter(format).Format(os.Stdout, names)
		},
	}
}
