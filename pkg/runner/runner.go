// Package runner abstracts external command execution so that package
// manager clients can be exercised in tests without touching the host
// system. The real implementation is a thin wrapper over os/exec.
package runner

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"
)

// Runner executes external commands.
type Runner interface {
	// LookPath reports the absolute path of an executable on PATH.
	LookPath(name string) (string, error)

	// Output runs the command and captures stdout and stderr separately.
	// The returned code is the command's exit status: 0 on success, the
	// process exit code on failure, 127 when the binary could not be
	// executed at all.
	Output(ctx context.Context, name string, args ...string) (stdout, stderr []byte, code int, err error)

	// Run executes the command interactively, inheriting the caller's
	// stdin, stdout and stderr. The exit status follows the same contract
	// as Output.
	Run(ctx context.Context, name string, args ...string) (code int, err error)
}

// ExecRunner executes commands on the local host.
type ExecRunner struct{}

// LookPath implements Runner using exec.LookPath.
func (ExecRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// Output implements Runner with captured stdout and stderr.
func (ExecRunner) Output(ctx context.Context, name string, args ...string) ([]byte, []byte, int, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), exitCode(err), err
}

// Run implements Runner with the user's terminal attached.
func (ExecRunner) Run(ctx context.Context, name string, args ...string) (int, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	return exitCode(err), err
}

// Cmdline renders a command line for error reports and fake script keys.
func Cmdline(name string, args ...string) string {
	return strings.Join(append([]string{name}, args...), " ")
}

// exitCode extracts the exit status from a command error.
func exitCode(err error) int {
	if err == nil {
		return 0
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}

	// Command could not be started at all (not found, not executable).
	var execErr *exec.Error
	if errors.As(err, &execErr) {
		return 127
	}

	return 1
}
