package appcontext

import (
	"github.com/rs/zerolog"

	"github.com/pinax-network/pacprune"
	"github.com/pinax-network/pacprune/pkg/runner"
)

// Mock provides a configurable mock implementation of Interface for
// testing. Each method can be overridden by setting the corresponding
// function field; unset fields fall back to safe defaults.
type Mock struct {
	PrunerFunc       func(opts ...pacprune.Option) (pacprune.Pruner, error)
	RunnerFunc       func() runner.Runner
	LoggerFunc       func() *zerolog.Logger
	OutputFormatFunc func() string
	VersionFunc      func() string
	CommitFunc       func() string
	DateFunc         func() string
	BuiltByFunc      func() string
}

// Pruner returns a pruner instance or the configured mock behavior.
// The default wires the mock's runner in so tests never touch the host
// system.
func (m *Mock) Pruner(opts ...pacprune.Option) (pacprune.Pruner, error) {
	if m.PrunerFunc != nil {
		return m.PrunerFunc(opts...)
	}
	merged := append([]pacprune.Option{pacprune.WithRunner(m.Runner())}, opts...)
	return pacprune.New(merged...)
}

// Runner returns the configured runner or an empty fake.
func (m *Mock) Runner() runner.Runner {
	if m.RunnerFunc != nil {
		return m.RunnerFunc()
	}
	return &runner.Fake{}
}

// Logger returns the configured logger or a no-op logger.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	logger := zerolog.Nop()
	return &logger
}

// OutputFormat returns the configured output format or empty.
func (m *Mock) OutputFormat() string {
	if m.OutputFormatFunc != nil {
		return m.OutputFormatFunc()
	}
	return ""
}

// Version returns the configured version or "dev".
func (m *Mock) Version() string {
	if m.VersionFunc != nil {
		return m.VersionFunc()
	}
	return "dev"
}

// Commit returns the configured commit or "unknown".
func (m *Mock) Commit() string {
	if m.CommitFunc != nil {
		return m.CommitFunc()
	}
	return "unknown"
}

// Date returns the configured date or "unknown".
func (m *Mock) Date() string {
	if m.DateFunc != nil {
		return m.DateFunc()
	}
	return "unknown"
}

// BuiltBy returns the configured builder or "test".
func (m *Mock) BuiltBy() string {
	if m.BuiltByFunc != nil {
		return m.BuiltByFunc()
	}
	return "test"
}

// Ensure Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
