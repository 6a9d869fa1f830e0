// Package list implements the list command: read-only views of the
// installed, declared, and duplicated package sets.
package list

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/pinax-network/pacprune"
	"github.com/pinax-network/pacprune/pkg/runner"
)

// AppContext defines the interface that list commands need from the
// app. Commands depend on this subset instead of the concrete App type
// so tests can pass a mock.
type AppContext interface {
	Pruner(opts ...pacprune.Option) (pacprune.Pruner, error)
	Runner() runner.Runner
	Logger() *zerolog.Logger
	OutputFormat() string
}

// NewCommand creates the list command with app dependencies.
func NewCommand(app AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [resource]",
		Short: "List package sets without changing anything",
		Long: `List displays the package sets pacprune reconciles.

Available subcommands:
  installed   - packages explicitly installed with yay or pacman
  declared    - packages declared in the Home-Manager configuration
  duplicates  - packages present on both sides`,
		Example: `  pacprune list installed              # explicitly installed packages
  pacprune list declared --raw         # declared entries before normalization
  pacprune list declared --unmatched   # declared names with no counterpart
  pacprune list duplicates -o json     # duplicate pairs as JSON`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return fmt.Errorf("unknown resource %q, expected installed, declared, or duplicates", args[0])
		},
	}

	cmd.AddCommand(NewInstalledCommand(app))
	cmd.AddCommand(NewDeclaredCommand(app))
	cmd.AddCommand(NewDuplicatesCommand(app))

	return cmd
}
