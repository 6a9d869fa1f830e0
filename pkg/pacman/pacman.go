// Package pacman drives the imperative Arch Linux package manager. It
// prefers yay over plain pacman because yay also covers AUR packages, and
// the same detected executable serves both listing and removal.
package pacman

import (
	"context"
	"strings"

	"github.com/pinax-network/pacprune/pkg/errors"
	"github.com/pinax-network/pacprune/pkg/logging"
	"github.com/pinax-network/pacprune/pkg/runner"
)

// Executable names tried during detection, in order of preference.
const (
	Yay    = "yay"
	Pacman = "pacman"
)

// Client runs a detected imperative package manager.
type Client struct {
	runner runner.Runner
	exe    string
	path   string
}

// Detect finds the imperative package manager on PATH, trying yay first
// and falling back to pacman. It returns a ToolNotFoundError when neither
// is available.
func Detect(r runner.Runner) (*Client, error) {
	for _, exe := range []string{Yay, Pacman} {
		path, err := r.LookPath(exe)
		if err != nil {
			continue
		}
		return &Client{runner: r, exe: exe, path: path}, nil
	}
	return nil, errors.NewToolNotFoundError("an Arch package manager is required", Yay, Pacman)
}

// Name returns the detected executable name, "yay" or "pacman".
func (c *Client) Name() string {
	return c.exe
}

// Path returns the resolved executable path.
func (c *Client) Path() string {
	return c.path
}

// AUR reports whether the detected manager also sees AUR packages.
func (c *Client) AUR() bool {
	return c.exe == Yay
}

// ListExplicit returns the names of explicitly installed packages, one
// per -Qqe output line.
func (c *Client) ListExplicit(ctx context.Context) ([]string, error) {
	stdout, stderr, code, err := c.runner.Output(ctx, c.exe, "-Qqe")
	if err != nil {
		return nil, &errors.ProcessError{
			Operation: "list installed packages",
			Command:   runner.Cmdline(c.exe, "-Qqe"),
			Output:    strings.TrimSpace(string(stderr)),
			ExitCode:  code,
			Err:       err,
		}
	}

	names := parseNames(stdout)
	logging.Ctx(ctx).Debug().
		Str("manager", c.exe).
		Int("count", len(names)).
		Msg("collected explicitly installed packages")
	return names, nil
}

// Remove removes the packages in a single interactive invocation of
// `<manager> -Rns`, inheriting the user's terminal so the manager's own
// prompts and progress output work as usual.
func (c *Client) Remove(ctx context.Context, packages []string) error {
	if len(packages) == 0 {
		return &errors.ValidationError{Field: "packages", Message: "empty removal list"}
	}

	args := append([]string{"-Rns"}, packages...)
	logging.Ctx(ctx).Info().
		Str("manager", c.exe).
		Strs("packages", packages).
		Msg("removing packages")

	code, err := c.runner.Run(ctx, c.exe, args...)
	if err != nil {
		return &errors.ProcessError{
			Operation: "remove packages",
			Command:   runner.Cmdline(c.exe, args...),
			ExitCode:  code,
			Err:       err,
		}
	}
	return nil
}

// parseNames splits tool output into trimmed, non-empty lines.
func parseNames(out []byte) []string {
	var names []string
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		names = append(names, line)
	}
	return names
}
