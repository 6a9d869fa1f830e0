package doctor_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pinax-network/pacprune/internal/doctor"
	"github.com/pinax-network/pacprune/pkg/runner"
)

func TestCheckAvailableTool(t *testing.T) {
	fake := &runner.Fake{
		Executables: map[string]string{"yay": "/usr/bin/yay"},
		Results: map[string]runner.Result{
			"yay --version": {Stdout: "yay v12.3.5 - libalpm v14.0.0\n"},
		},
	}

	status := doctor.Check(context.Background(), fake, "yay")

	assert.Equal(t, "yay", status.Name)
	assert.True(t, status.Available)
	assert.Equal(t, "/usr/bin/yay", status.Path)
	assert.Equal(t, "12.3.5", status.Version)
}

func TestCheckMissingTool(t *testing.T) {
	fake := &runner.Fake{}

	status := doctor.Check(context.Background(), fake, "pacman")

	assert.Equal(t, "pacman", status.Name)
	assert.False(t, status.Available)
	assert.Empty(t, status.Path)
	assert.Empty(t, status.Version)
}

func TestCheckTwoPartVersion(t *testing.T) {
	fake := &runner.Fake{
		Executables: map[string]string{"home-manager": "/usr/bin/home-manager"},
		Results: map[string]runner.Result{
			"home-manager --version": {Stdout: "24.05\n"},
		},
	}

	status := doctor.Check(context.Background(), fake, "home-manager")

	assert.True(t, status.Available)
	assert.Equal(t, "24.05", status.Version)
}

func TestCheckVersionOnStderr(t *testing.T) {
	fake := &runner.Fake{
		Executables: map[string]string{"pacman": "/usr/bin/pacman"},
		Results: map[string]runner.Result{
			"pacman --version": {Stderr: "Pacman v6.1.0 - libalpm v14.0.0\n"},
		},
	}

	status := doctor.Check(context.Background(), fake, "pacman")

	assert.Equal(t, "6.1.0", status.Version)
}

func TestCheckVersionUnknown(t *testing.T) {
	fake := &runner.Fake{
		Executables: map[string]string{"pacman": "/usr/bin/pacman"},
	}

	status := doctor.Check(context.Background(), fake, "pacman")

	assert.True(t, status.Available)
	assert.Empty(t, status.Version)
}

func TestCheckAll(t *testing.T) {
	fake := &runner.Fake{
		Executables: map[string]string{
			"yay":          "/usr/bin/yay",
			"home-manager": "/usr/bin/home-manager",
		},
	}

	statuses := doctor.CheckAll(context.Background(), fake, doctor.Tools())

	assert.Len(t, statuses, 3)
	assert.Equal(t, "yay", statuses[0].Name)
	assert.True(t, statuses[0].Available)
	assert.Equal(t, "pacman", statuses[1].Name)
	assert.False(t, statuses[1].Available)
	assert.Equal(t, "home-manager", statuses[2].Name)
	assert.True(t, statuses[2].Available)
}
