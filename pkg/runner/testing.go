package runner

import (
	"context"
	"os/exec"
)

// Result is a scripted outcome for a Fake command.
type Result struct {
	Stdout string
	Stderr string
	Code   int
	Err    error
}

// Fake is a scripted Runner for tests. Commands are keyed by their full
// command line: the executable name and arguments joined with spaces.
// Unscripted commands succeed with empty output.
type Fake struct {
	// Executables maps tool names to paths for LookPath. Tools absent
	// from the map are reported as not found.
	Executables map[string]string

	// Results maps command lines to scripted outcomes.
	Results map[string]Result

	// Calls records every command line executed, in order.
	Calls []string
}

// LookPath implements Runner from the Executables map.
func (f *Fake) LookPath(name string) (string, error) {
	if path, ok := f.Executables[name]; ok {
		return path, nil
	}
	return "", &exec.Error{Name: name, Err: exec.ErrNotFound}
}

// Output implements Runner from the Results map.
func (f *Fake) Output(_ context.Context, name string, args ...string) ([]byte, []byte, int, error) {
	r := f.record(name, args...)
	return []byte(r.Stdout), []byte(r.Stderr), r.Code, r.Err
}

// Run implements Runner from the Results map.
func (f *Fake) Run(_ context.Context, name string, args ...string) (int, error) {
	r := f.record(name, args...)
	return r.Code, r.Err
}

// Called reports whether the exact command line was executed.
func (f *Fake) Called(cmdline string) bool {
	for _, call := range f.Calls {
		if call == cmdline {
			return true
		}
	}
	return false
}

func (f *Fake) record(name string, args ...string) Result {
	cmdline := Cmdline(name, args...)
	f.Calls = append(f.Calls, cmdline)
	return f.Results[cmdline]
}
