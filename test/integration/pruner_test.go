package integration

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/pinax-network/pacprune"
	"github.com/pinax-network/pacprune/pkg/confirm"
	"github.com/pinax-network/pacprune/pkg/runner"
)

// storeHash is a syntactically valid nix store hash for scripted
// home-manager output.
const storeHash = "a1b2c3d4f5g6h7i8j9k0lmnpqrsvwxyz"

// scriptedSystem fakes a host where yay and home-manager are installed
// and three packages are managed twice. Resolution goes through the
// embedded name mapping, so this covers the bundled data end to end.
func scriptedSystem() *runner.Fake {
	return &runner.Fake{
		Executables: map[string]string{
			"yay":          "/usr/bin/yay",
			"home-manager": "/usr/bin/home-manager",
		},
		Results: map[string]runner.Result{
			"yay -Qqe": {Stdout: "helm\ngit-delta\nzoom\nripgrep\n"},
			"home-manager packages": {Stdout: strings.Join([]string{
				"/nix/store/" + storeHash + "-kubernetes-helm-3.14.0",
				"/nix/store/" + storeHash + "-delta-0.17.0",
				"/nix/store/" + storeHash + "-zoom-us-5.17.11.3835",
				"/nix/store/" + storeHash + "-bat-0.24.0",
			}, "\n") + "\n"},
		},
	}
}

func TestRunEndToEnd(t *testing.T) {
	fake := scriptedSystem()
	var out bytes.Buffer

	pruner, err := pacprune.New(
		pacprune.WithRunner(fake),
		pacprune.WithConfirmer(confirm.Auto{}),
		pacprune.WithOutput(&out),
	)
	if err != nil {
		t.Fatalf("Failed to create pruner: %v", err)
	}

	if err := pruner.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if !fake.Called("yay -Rns helm git-delta zoom") {
		t.Errorf("Expected a single bulk removal, calls were %v", fake.Calls)
	}
	for _, line := range []string{
		"helm → kubernetes-helm",
		"git-delta → delta",
		"zoom → zoom-us",
	} {
		if !strings.Contains(out.String(), line) {
			t.Errorf("Expected output to contain %q, got:\n%s", line, out.String())
		}
	}
}

func TestDryRunLeavesSystemUntouched(t *testing.T) {
	fake := scriptedSystem()
	var out bytes.Buffer

	pruner, err := pacprune.New(
		pacprune.WithRunner(fake),
		pacprune.WithOutput(&out),
		pacprune.WithDryRun(true),
	)
	if err != nil {
		t.Fatalf("Failed to create pruner: %v", err)
	}

	if err := pruner.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	for _, call := range fake.Calls {
		if strings.Contains(call, "-Rns") {
			t.Errorf("Dry run must not remove anything, saw %q", call)
		}
	}
	if !strings.Contains(out.String(), "Would remove 3 packages") {
		t.Errorf("Expected dry-run summary, got:\n%s", out.String())
	}
}

func TestPacmanFallbackEndToEnd(t *testing.T) {
	fake := scriptedSystem()
	delete(fake.Executables, "yay")
	fake.Executables["pacman"] = "/usr/bin/pacman"
	fake.Results["pacman -Qqe"] = fake.Results["yay -Qqe"]
	var out bytes.Buffer

	pruner, err := pacprune.New(
		pacprune.WithRunner(fake),
		pacprune.WithConfirmer(confirm.Auto{}),
		pacprune.WithOutput(&out),
	)
	if err != nil {
		t.Fatalf("Failed to create pruner: %v", err)
	}

	if err := pruner.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if !fake.Called("pacman -Qqe") {
		t.Error("Expected listing to fall back to pacman")
	}
	if !fake.Called("pacman -Rns helm git-delta zoom") {
		t.Errorf("Expected removal to fall back to pacman, calls were %v", fake.Calls)
	}
}

func TestDeclinedConfirmationEndToEnd(t *testing.T) {
	fake := scriptedSystem()
	var out bytes.Buffer

	pruner, err := pacprune.New(
		pacprune.WithRunner(fake),
		pacprune.WithConfirmer(confirm.NewTerminal(strings.NewReader("n\n"), &out)),
		pacprune.WithOutput(&out),
	)
	if err != nil {
		t.Fatalf("Failed to create pruner: %v", err)
	}

	if err := pruner.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	for _, call := range fake.Calls {
		if strings.Contains(call, "-Rns") {
			t.Errorf("Declined confirmation must not remove anything, saw %q", call)
		}
	}
	if !strings.Contains(out.String(), "Aborted, nothing removed.") {
		t.Errorf("Expected abort notice, got:\n%s", out.String())
	}
}
