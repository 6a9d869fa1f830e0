package runner_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pinax-network/pacprune/pkg/runner"
)

func TestExecRunnerLookPath(t *testing.T) {
	r := runner.ExecRunner{}

	path, err := r.LookPath("sh")
	require.NoError(t, err)
	assert.NotEmpty(t, path)

	_, err = r.LookPath("pacprune-no-such-tool")
	assert.Error(t, err)
}

func TestExecRunnerOutput(t *testing.T) {
	r := runner.ExecRunner{}
	ctx := context.Background()

	t.Run("captures stdout", func(t *testing.T) {
		stdout, stderr, code, err := r.Output(ctx, "sh", "-c", "echo hello")
		require.NoError(t, err)
		assert.Equal(t, "hello\n", string(stdout))
		assert.Empty(t, string(stderr))
		assert.Equal(t, 0, code)
	})

	t.Run("captures stderr and exit code", func(t *testing.T) {
		stdout, stderr, code, err := r.Output(ctx, "sh", "-c", "echo oops >&2; exit 3")
		require.Error(t, err)
		assert.Empty(t, string(stdout))
		assert.Equal(t, "oops\n", string(stderr))
		assert.Equal(t, 3, code)
	})

	t.Run("missing binary reports 127", func(t *testing.T) {
		_, _, code, err := r.Output(ctx, "pacprune-no-such-tool")
		require.Error(t, err)
		assert.Equal(t, 127, code)
	})
}

func TestExecRunnerRun(t *testing.T) {
	r := runner.ExecRunner{}

	code, err := r.Run(context.Background(), "sh", "-c", "exit 0")
	require.NoError(t, err)
	assert.Equal(t, 0, code)

	code, err = r.Run(context.Background(), "sh", "-c", "exit 4")
	require.Error(t, err)
	assert.Equal(t, 4, code)
}

func TestFake(t *testing.T) {
	fake := &runner.Fake{
		Executables: map[string]string{"yay": "/usr/bin/yay"},
		Results: map[string]runner.Result{
			"yay -Qqe": {Stdout: "helm\nzoom\n"},
			"yay -Rns helm": {
				Stderr: "error: target not found",
				Code:   1,
				Err:    assert.AnError,
			},
		},
	}
	ctx := context.Background()

	t.Run("lookpath", func(t *testing.T) {
		path, err := fake.LookPath("yay")
		require.NoError(t, err)
		assert.Equal(t, "/usr/bin/yay", path)

		_, err = fake.LookPath("pacman")
		assert.Error(t, err)
	})

	t.Run("scripted output", func(t *testing.T) {
		stdout, _, code, err := fake.Output(ctx, "yay", "-Qqe")
		require.NoError(t, err)
		assert.Equal(t, 0, code)
		assert.Equal(t, []string{"helm", "zoom"}, strings.Fields(string(stdout)))
	})

	t.Run("scripted failure", func(t *testing.T) {
		code, err := fake.Run(ctx, "yay", "-Rns", "helm")
		assert.Error(t, err)
		assert.Equal(t, 1, code)
	})

	t.Run("records calls", func(t *testing.T) {
		assert.True(t, fake.Called("yay -Qqe"))
		assert.True(t, fake.Called("yay -Rns helm"))
		assert.False(t, fake.Called("pacman -Qqe"))
	})
}
