package list

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pinax-network/pacprune/internal/cmd/output"
	"github.com/pinax-network/pacprune/pkg/homemanager"
	"github.com/pinax-network/pacprune/pkg/pacman"
	"github.com/pinax-network/pacprune/pkg/reconcile"
)

// maxSuggestions caps the number of similarly named installed packages
// shown per unmatched declared name.
const maxSuggestions = 3

// Unmatched pairs a declared name that resolved to nothing with
// similarly named installed packages.
type Unmatched struct {
	Name        string   `json:"name" yaml:"name"`
	Suggestions []string `json:"suggestions,omitempty" yaml:"suggestions,omitempty"`
}

// NewDeclaredCommand creates the list declared subcommand.
func NewDeclaredCommand(app AppContext) *cobra.Command {
	var raw bool
	var unmatched bool

	cmd := &cobra.Command{
		Use:   "declared",
		Short: "List packages declared in the Home-Manager configuration",
		Long: `List the declared package set reported by home-manager, normalized to
bare package names.

With --raw the entries are shown exactly as home-manager reports them,
store paths and version suffixes included. With --unmatched only the
declared names without an installed counterpart are shown, each with
similarly named installed packages as hints.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if unmatched {
				return runUnmatched(cmd, app)
			}

			home, err := homemanager.Detect(app.Runner())
			if err != nil {
				return err
			}

			var names []string
			if raw {
				names, err = home.RawPackages(cmd.Context())
			} else {
				names, err = home.Packages(cmd.Context())
			}
			if err != nil {
				return err
			}

			format := output.DetectFormat(app.OutputFormat())
			return output.NewFormatter(format).Format(os.Stdout, names)
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "show entries before normalization")
	cmd.Flags().BoolVar(&unmatched, "unmatched", false, "show only declared names with no installed counterpart")

	return cmd
}

// runUnmatched reports declared names that resolve to no installed
// package, with fuzzy-matched installed names as hints.
func runUnmatched(cmd *cobra.Command, app AppContext) error {
	manager, err := pacman.Detect(app.Runner())
	if err != nil {
		return err
	}
	home, err := homemanager.Detect(app.Runner())
	if err != nil {
		return err
	}

	installed, err := manager.ListExplicit(cmd.Context())
	if err != nil {
		return err
	}
	declared, err := home.Packages(cmd.Context())
	if err != nil {
		return err
	}

	cfg, err := reconcile.DefaultConfig()
	if err != nil {
		return err
	}

	installedSet := reconcile.NewSet(installed)
	_, unmatched := reconcile.Duplicates(installedSet, declared, cfg.Mapping)

	format := output.DetectFormat(app.OutputFormat())
	if format == output.FormatJSON || format == output.FormatYAML {
		return output.NewFormatter(format).Format(os.Stdout, unmatchedReport(installedSet, unmatched))
	}

	for _, name := range unmatched {
		if hints := reconcile.Suggest(name, installedSet, maxSuggestions); len(hints) > 0 {
			fmt.Printf("%s (close to installed: %s)\n", name, strings.Join(hints, ", "))
			continue
		}
		fmt.Println(name)
	}
	return nil
}

func unmatchedReport(installed reconcile.Set, names []string) []Unmatched {
	report := make([]Unmatched, 0, len(names))
	for _, name := range names {
		report = append(report, Unmatched{
			Name:        name,
			Suggestions: reconcile.Suggest(name, installed, maxSuggestions),
		})
	}
	return report
}
