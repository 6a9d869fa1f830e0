package pacprune

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/pinax-network/pacprune/pkg/homemanager"
	"github.com/pinax-network/pacprune/pkg/logging"
	"github.com/pinax-network/pacprune/pkg/reconcile"
)

// Report is the outcome of one reconcile pass.
type Report struct {
	// Manager is the package manager that produced the installed set
	// and performs removals.
	Manager string `json:"manager" yaml:"manager"`

	// Installed is the number of explicitly installed packages.
	Installed int `json:"installed" yaml:"installed"`

	// Declared is the number of declared packages after normalization.
	Declared int `json:"declared" yaml:"declared"`

	// Duplicates pairs each installed package with the declared name
	// that resolved to it.
	Duplicates []reconcile.Duplicate `json:"duplicates" yaml:"duplicates"`

	// Unmatched lists declared names with no installed counterpart.
	Unmatched []string `json:"unmatched,omitempty" yaml:"unmatched,omitempty"`

	// Removals is the ordered removal plan.
	Removals []string `json:"removals" yaml:"removals"`

	// Excluded lists protected packages held back from the plan.
	Excluded []string `json:"excluded,omitempty" yaml:"excluded,omitempty"`
}

// Plan detects the external tools, collects both package sets, and
// computes the duplicate report. It performs no removals.
func (p *pruner) Plan(ctx context.Context) (*Report, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logging.FromContext(ctx)

	// Step 1: Detect both tools before any output is produced.
	manager, err := p.packageManager()
	if err != nil {
		return nil, err
	}
	home, err := homemanager.Detect(p.options.runner)
	if err != nil {
		return nil, err
	}

	// Step 2: Collect both sets concurrently. Each is one blocking
	// invocation of an external tool.
	var installed, declared []string
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		installed, err = manager.ListExplicit(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		declared, err = home.Packages(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Step 3: Resolve declared names against the installed set and
	// order the removals.
	installedSet := reconcile.NewSet(installed)
	dups, unmatched := reconcile.Duplicates(installedSet, declared, p.options.config.Mapping)
	removals, excluded := reconcile.BuildPlan(dups, p.options.config.Protected, p.options.includeProtected)

	logger.Debug().
		Str("manager", manager.Name()).
		Int("installed", installedSet.Len()).
		Int("declared", len(declared)).
		Int("duplicates", len(dups)).
		Int("removals", len(removals)).
		Msg("Reconcile plan computed")

	return &Report{
		Manager:    manager.Name(),
		Installed:  installedSet.Len(),
		Declared:   len(declared),
		Duplicates: dups,
		Unmatched:  unmatched,
		Removals:   removals,
		Excluded:   excluded,
	}, nil
}
