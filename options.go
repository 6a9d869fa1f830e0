package pacprune

import (
	"io"
	"os"

	"github.com/pinax-network/pacprune/pkg/confirm"
	"github.com/pinax-network/pacprune/pkg/errors"
	"github.com/pinax-network/pacprune/pkg/reconcile"
	"github.com/pinax-network/pacprune/pkg/runner"
)

// Option is a function that configures a Pruner instance.
type Option func(*options) error

// options holds the configured behavior of a Pruner.
type options struct {
	runner           runner.Runner
	confirmer        confirm.Confirmer
	config           *reconcile.Config
	out              io.Writer
	dryRun           bool
	includeProtected bool
}

// defaults returns the options used when none are provided: real
// process execution, a terminal prompt, and the built-in configuration.
func defaults() *options {
	return &options{
		runner:    runner.ExecRunner{},
		confirmer: confirm.NewTerminal(os.Stdin, os.Stdout),
		out:       os.Stdout,
	}
}

// WithRunner configures how external tools are located and invoked.
func WithRunner(r runner.Runner) Option {
	return func(o *options) error {
		if r == nil {
			return errors.NewValidationError("runner", "", "must not be nil")
		}
		o.runner = r
		return nil
	}
}

// WithConfirmer configures how removal approval is obtained. Use
// confirm.Auto to skip the prompt.
func WithConfirmer(c confirm.Confirmer) Option {
	return func(o *options) error {
		if c == nil {
			return errors.NewValidationError("confirmer", "", "must not be nil")
		}
		o.confirmer = c
		return nil
	}
}

// WithConfig overrides the built-in name mapping and protected package.
func WithConfig(cfg reconcile.Config) Option {
	return func(o *options) error {
		o.config = &cfg
		return nil
	}
}

// WithOutput configures where the report and prompts are written.
func WithOutput(w io.Writer) Option {
	return func(o *options) error {
		if w == nil {
			return errors.NewValidationError("output", "", "must not be nil")
		}
		o.out = w
		return nil
	}
}

// WithDryRun configures whether Run stops after printing the removal
// plan.
func WithDryRun(enabled bool) Option {
	return func(o *options) error {
		o.dryRun = enabled
		return nil
	}
}

// WithIncludeProtected configures whether the protected package may be
// removed. It is scheduled last so the removal tool is not deleted
// before the other targets.
func WithIncludeProtected(enabled bool) Option {
	return func(o *options) error {
		o.includeProtected = enabled
		return nil
	}
}
