// Package homemanager reads the declaratively managed package set from
// Nix Home Manager.
package homemanager

import (
	"context"
	"strings"

	"github.com/pinax-network/pacprune/pkg/errors"
	"github.com/pinax-network/pacprune/pkg/logging"
	"github.com/pinax-network/pacprune/pkg/runner"
)

// Executable is the home-manager command name.
const Executable = "home-manager"

// Client runs home-manager queries.
type Client struct {
	runner runner.Runner
	path   string
}

// Detect finds home-manager on PATH. It returns a ToolNotFoundError when
// the command is missing.
func Detect(r runner.Runner) (*Client, error) {
	path, err := r.LookPath(Executable)
	if err != nil {
		return nil, errors.NewToolNotFoundError("a Home Manager installation is required", Executable)
	}
	return &Client{runner: r, path: path}, nil
}

// Path returns the resolved executable path.
func (c *Client) Path() string {
	return c.path
}

// Packages returns the normalized names of all packages home-manager
// manages, deduplicated in first-seen order. Entries that cannot be
// normalized are skipped.
func (c *Client) Packages(ctx context.Context) ([]string, error) {
	entries, err := c.RawPackages(ctx)
	if err != nil {
		return nil, err
	}

	logger := logging.Ctx(ctx)
	seen := make(map[string]struct{}, len(entries))
	var names []string
	for _, entry := range entries {
		name, ok := Normalize(entry)
		if !ok {
			logger.Debug().Str("entry", entry).Msg("skipping unusable home-manager entry")
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}

	logger.Debug().Int("count", len(names)).Msg("collected home-manager packages")
	return names, nil
}

// RawPackages returns the entries exactly as home-manager printed them,
// one per non-empty output line.
func (c *Client) RawPackages(ctx context.Context) ([]string, error) {
	stdout, stderr, code, err := c.runner.Output(ctx, Executable, "packages")
	if err != nil {
		return nil, &errors.ProcessError{
			Operation: "list home-manager packages",
			Command:   runner.Cmdline(Executable, "packages"),
			Output:    strings.TrimSpace(string(stderr)),
			ExitCode:  code,
			Err:       err,
		}
	}

	var entries []string
	for _, line := range strings.Split(string(stdout), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		entries = append(entries, line)
	}
	return entries, nil
}
