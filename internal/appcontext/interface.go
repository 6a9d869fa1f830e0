// Package appcontext provides the shared application context interface
// used by all commands. This eliminates interface duplication across
// command packages and provides a single source of truth for application
// dependencies.
package appcontext

import (
	"github.com/rs/zerolog"

	"github.com/pinax-network/pacprune"
	"github.com/pinax-network/pacprune/pkg/runner"
)

// Interface defines the application context that commands need. The App
// struct from cmd/pacprune/app implements this interface, providing
// dependency injection for commands while maintaining testability.
//
// Commands should accept this interface, or a local subset of it, rather
// than the concrete App type, allowing for easier testing with mock
// implementations.
type Interface interface {
	// Pruner returns a pruner instance. When called without options it
	// returns the flag-configured default instance, creating it on first
	// use. When called with options it creates a new instance that merges
	// the flag-derived options with the given ones.
	Pruner(opts ...pacprune.Option) (pacprune.Pruner, error)

	// Runner returns the process runner used to drive external tools.
	Runner() runner.Runner

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (text, table,
	// json, yaml), or empty when the format should be detected from the
	// terminal.
	OutputFormat() string

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
