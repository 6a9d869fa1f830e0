package pacprune

import (
	"context"
	"fmt"
	"strings"

	"github.com/pinax-network/pacprune/pkg/logging"
)

// Run executes the full reconcile flow: plan, render the duplicate
// pairs, confirm, and remove. Declining the confirmation and finding
// nothing to do are both successful outcomes.
func (p *pruner) Run(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	out := p.options.out

	report, err := p.Plan(ctx)
	if err != nil {
		return err
	}

	if len(report.Duplicates) == 0 {
		fmt.Fprintln(out, "No duplicate packages found.")
		return nil
	}

	for _, d := range report.Duplicates {
		fmt.Fprintf(out, "%s → %s\n", d.Imperative, d.Declarative)
	}

	if len(report.Excluded) > 0 {
		fmt.Fprintf(out, "\n%s is protected and stays installed (use --include-yay to remove it).\n",
			strings.Join(report.Excluded, ", "))
	}

	if len(report.Removals) == 0 {
		fmt.Fprintln(out, "Nothing to remove.")
		return nil
	}

	if p.options.dryRun {
		fmt.Fprintf(out, "\nWould remove %d packages: %s\n",
			len(report.Removals), strings.Join(report.Removals, " "))
		return nil
	}

	prompt := fmt.Sprintf("\nRemove %d packages with %s?", len(report.Removals), report.Manager)
	ok, err := p.options.confirmer.Confirm(prompt)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(out, "Aborted, nothing removed.")
		return nil
	}

	if err := p.Remove(ctx, report.Removals); err != nil {
		return err
	}

	logging.FromContext(ctx).Info().
		Int("removed", len(report.Removals)).
		Str("manager", report.Manager).
		Msg("Duplicate packages removed")
	return nil
}

// Remove removes the given packages in a single package manager
// invocation. The package manager owns transactionality, so a failure
// is surfaced as-is with its exit code.
func (p *pruner) Remove(ctx context.Context, packages []string) error {
	manager, err := p.packageManager()
	if err != nil {
		return err
	}
	return manager.Remove(ctx, packages)
}
