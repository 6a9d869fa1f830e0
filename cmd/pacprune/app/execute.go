package app

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pinax-network/pacprune/internal/cmd/output"
	"github.com/pinax-network/pacprune/pkg/errors"
	"github.com/pinax-network/pacprune/pkg/logging"
)

// Execute runs the pacprune CLI with the given arguments. This is the
// main entry point called from main.go.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all
// subcommands registered. Running the root command itself performs the
// reconcile.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "pacprune",
		Short:   "Remove Arch packages that Home Manager already provides",
		Version: a.version,
		Long: `Pacprune reconciles the explicitly installed Arch Linux package set
against the packages declared in a Home-Manager configuration.

Packages present in both worlds are reported as duplicates and removed
from the imperative side, keeping the declarative configuration as the
single source of truth. The AUR helper itself (yay) is protected from
removal unless explicitly included.`,
		Example: `  pacprune                  # report duplicates and ask before removing
  pacprune --dry-run        # print the removal plan without removing
  pacprune --yes            # remove duplicates without asking
  pacprune --include-yay    # allow removing the AUR helper, last`,
		Args:              cobra.NoArgs,
		PersistentPreRunE: a.setupCommand,
		SilenceUsage:      true,
		SilenceErrors:     true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pruner, err := a.Pruner()
			if err != nil {
				return err
			}
			return pruner.Run(cmd.Context())
		},
	}

	// Reconcile flags
	rootCmd.Flags().BoolVarP(&a.config.Yes, "yes", "y", false, "skip the confirmation prompt")
	rootCmd.Flags().BoolVar(&a.config.DryRun, "dry-run", false, "print the removal plan without removing anything")
	rootCmd.Flags().BoolVar(&a.config.IncludeYay, "include-yay", false, "allow removing the protected AUR helper, scheduled last")

	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output (shortcut for --log-level=debug)")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "minimal output (shortcut for --log-level=warn)")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringP("output", "o", "", "output format: text, table, json, yaml")
	rootCmd.PersistentFlags().String("log-level", "", "log level: trace, debug, info, warn, error")

	// Unrecognized flags are usage errors, not runtime failures.
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errors.NewUsageError(err)
	})

	rootCmd.SetVersionTemplate("pacprune {{.Version}}\n")

	a.registerCommands(rootCmd)

	return rootCmd
}

// setupCommand runs before any command and folds parsed flags back into
// the configuration, then rebuilds the logger to honor them.
func (a *App) setupCommand(cmd *cobra.Command, _ []string) error {
	verbose := mustGetBool(cmd, "verbose")
	quiet := mustGetBool(cmd, "quiet")
	noColor := mustGetBool(cmd, "no-color")
	format := mustGetString(cmd, "output")
	logLevel := mustGetString(cmd, "log-level")

	// Reject format typos before any tool runs.
	if _, err := output.ParseFormat(format); err != nil {
		return errors.NewUsageError(err)
	}

	a.config.UpdateFromFlags(verbose, quiet, noColor, format, logLevel)

	logger := NewLogger(a.config)
	a.logger = &logger

	cmd.SetContext(logging.WithLogger(cmd.Context(), a.logger))

	return nil
}

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	rootCmd.AddCommand(a.NewListCommand())
	rootCmd.AddCommand(a.NewDoctorCommand())
	rootCmd.AddCommand(a.NewVersionCommand())
}

// ExitOnError prints an error to stderr and exits with its mapped exit
// code. It is meant for top-level error handling in main.go.
func ExitOnError(err error) {
	if err == nil {
		return
	}
	fmt.Fprintln(os.Stderr, err.Error())
	os.Exit(errors.ExitCode(err))
}

// mustGetBool returns the bool flag value, panicking on a missing flag.
// Flags are registered at startup so a failed lookup is a programming
// error.
func mustGetBool(cmd *cobra.Command, name string) bool {
	value, err := cmd.Flags().GetBool(name)
	if err != nil {
		panic(fmt.Sprintf("flag %q not registered: %v", name, err))
	}
	return value
}

// mustGetString returns the string flag value, panicking on a missing
// flag.
func mustGetString(cmd *cobra.Command, name string) string {
	value, err := cmd.Flags().GetString(name)
	if err != nil {
		panic(fmt.Sprintf("flag %q not registered: %v", name, err))
	}
	return value
}
