// Package pacprune reconciles the explicitly installed Arch Linux
// package set against a Home-Manager declarative configuration. It
// finds packages present in both systems, reports each pair, and can
// remove the imperative copies so the declarative configuration stays
// the single source of truth.
//
// Example usage:
//
//	p, err := pacprune.New(pacprune.WithDryRun(true))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := p.Run(context.Background()); err != nil {
//	    log.Fatal(err)
//	}
package pacprune

import (
	"context"
	"fmt"
	"sync"

	"github.com/pinax-network/pacprune/pkg/pacman"
	"github.com/pinax-network/pacprune/pkg/reconcile"
)

// Compile-time interface check to ensure proper implementation.
var _ Pruner = (*pruner)(nil)

// Pruner plans and performs removal of packages installed both
// imperatively and declaratively.
type Pruner interface {
	// Plan detects the external tools, collects both package sets, and
	// computes the duplicate report. It performs no removals.
	Plan(ctx context.Context) (*Report, error)

	// Remove removes the given packages in a single package manager
	// invocation.
	Remove(ctx context.Context, packages []string) error

	// Run executes the full reconcile flow: plan, render, confirm,
	// remove.
	Run(ctx context.Context) error
}

// pruner is the internal implementation of the Pruner interface.
type pruner struct {
	// options are the configured options for the pruner
	options *options

	// manager is the detected package manager, resolved once
	mu      sync.Mutex
	manager *pacman.Client
}

// New creates a new Pruner instance with the given options.
func New(opts ...Option) (Pruner, error) {
	p := &pruner{options: defaults()}

	for _, opt := range opts {
		if err := opt(p.options); err != nil {
			return nil, fmt.Errorf("applying options: %w", err)
		}
	}

	// Fall back to the built-in mapping and protection settings.
	if p.options.config == nil {
		cfg, err := reconcile.DefaultConfig()
		if err != nil {
			return nil, err
		}
		p.options.config = &cfg
	}

	return p, nil
}

// packageManager detects the imperative package manager once and caches
// the client for subsequent calls.
func (p *pruner) packageManager() (*pacman.Client, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.manager == nil {
		manager, err := pacman.Detect(p.options.runner)
		if err != nil {
			return nil, err
		}
		p.manager = manager
	}
	return p.manager, nil
}
