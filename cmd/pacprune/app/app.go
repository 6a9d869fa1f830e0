// Package app provides the application context and dependency
// management for the pacprune CLI. It centralizes configuration,
// logging, and pruner construction behind a single type that commands
// receive through the appcontext interface.
package app

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/pinax-network/pacprune"
	"github.com/pinax-network/pacprune/pkg/confirm"
	"github.com/pinax-network/pacprune/pkg/runner"
)

// App represents the pacprune application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger

	// Process runner driving external tools
	runner runner.Runner

	// Default pruner instance (lazy-initialized)
	mu     sync.RWMutex
	pruner pacprune.Pruner
}

// Option configures the App.
type Option func(*App) error

// WithConfig overrides the loaded configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger overrides the configured logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithRunner overrides the process runner. Tests use this to script
// external tools.
func WithRunner(r runner.Runner) Option {
	return func(a *App) error {
		a.runner = r
		return nil
	}
}

// New creates a new App instance with the given version information.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
		runner:  runner.ExecRunner{},
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the application version.
func (a *App) Version() string { return a.version }

// Commit returns the git commit hash.
func (a *App) Commit() string { return a.commit }

// Date returns the build date.
func (a *App) Date() string { return a.date }

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string { return a.builtBy }

// Config returns the application configuration.
func (a *App) Config() *Config { return a.config }

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger { return a.logger }

// Runner returns the process runner.
func (a *App) Runner() runner.Runner { return a.runner }

// OutputFormat returns the configured output format, empty when the
// format should follow the terminal.
func (a *App) OutputFormat() string { return a.config.Format }

// Pruner returns a pruner instance. Without options it returns the
// flag-configured default, created on first use and shared afterwards.
// With options it creates a fresh instance layering the given options
// over the flag-derived ones.
func (a *App) Pruner(opts ...pacprune.Option) (pacprune.Pruner, error) {
	if len(opts) > 0 {
		return pacprune.New(append(a.prunerOptions(), opts...)...)
	}

	a.mu.RLock()
	if a.pruner != nil {
		defer a.mu.RUnlock()
		return a.pruner, nil
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.pruner != nil {
		return a.pruner, nil
	}

	pruner, err := pacprune.New(a.prunerOptions()...)
	if err != nil {
		return nil, err
	}
	a.pruner = pruner
	return pruner, nil
}

// prunerOptions translates the flag-derived configuration into pruner
// options.
func (a *App) prunerOptions() []pacprune.Option {
	opts := []pacprune.Option{
		pacprune.WithRunner(a.runner),
	}
	if a.config.Yes {
		opts = append(opts, pacprune.WithConfirmer(confirm.Auto{}))
	}
	if a.config.DryRun {
		opts = append(opts, pacprune.WithDryRun(true))
	}
	if a.config.IncludeYay {
		opts = append(opts, pacprune.WithIncludeProtected(true))
	}
	return opts
}
