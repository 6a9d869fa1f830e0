// Package doctor probes the external tools pacprune drives and reports
// their availability.
package doctor

import (
	"context"
	"regexp"

	"github.com/pinax-network/pacprune/pkg/homemanager"
	"github.com/pinax-network/pacprune/pkg/pacman"
	"github.com/pinax-network/pacprune/pkg/runner"
)

// Status reports the availability of a single external tool.
type Status struct {
	Name      string `json:"name" yaml:"name"`
	Available bool   `json:"available" yaml:"available"`
	Path      string `json:"path,omitempty" yaml:"path,omitempty"`
	Version   string `json:"version,omitempty" yaml:"version,omitempty"`
}

// Tools lists the external tools worth probing, in display order.
func Tools() []string {
	return []string{pacman.Yay, pacman.Pacman, homemanager.Executable}
}

// Check probes a single tool: a PATH lookup plus a best-effort version
// query.
func Check(ctx context.Context, r runner.Runner, name string) Status {
	status := Status{Name: name}

	path, err := r.LookPath(name)
	if err != nil {
		return status
	}

	status.Available = true
	status.Path = path
	status.Version = version(ctx, r, name)
	return status
}

// CheckAll probes every given tool.
func CheckAll(ctx context.Context, r runner.Runner, names []string) []Status {
	statuses := make([]Status, 0, len(names))
	for _, name := range names {
		statuses = append(statuses, Check(ctx, r, name))
	}
	return statuses
}

// versionFlags are tried in order until one succeeds; tools disagree on
// the spelling.
var versionFlags = []string{"--version", "-V", "version"}

// versionPattern tolerates two-part versions since home-manager reports
// releases like "24.05".
var versionPattern = regexp.MustCompile(`v?(\d+\.\d+(?:\.\d+)*)`)

// version asks the tool for its version. Best effort: an empty string
// means the version could not be determined.
func version(ctx context.Context, r runner.Runner, name string) string {
	for _, flag := range versionFlags {
		stdout, stderr, _, err := r.Output(ctx, name, flag)
		if err != nil {
			continue
		}

		out := string(stdout)
		if out == "" {
			out = string(stderr)
		}
		if matches := versionPattern.FindStringSubmatch(out); len(matches) > 1 {
			return matches[1]
		}
	}
	return ""
}
