package reconcile_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pinax-network/pacprune/pkg/reconcile"
)

func TestNewSet(t *testing.T) {
	s := reconcile.NewSet([]string{"zoom", "helm", "zoom", "go-yq"})

	assert.Equal(t, 3, s.Len())
	assert.True(t, s.Has("helm"))
	assert.True(t, s.Has("zoom"))
	assert.False(t, s.Has("ripgrep"))
	assert.Equal(t, []string{"go-yq", "helm", "zoom"}, s.Sorted())
}

func TestResolve(t *testing.T) {
	mapping := reconcile.Mapping{
		"kubernetes-helm": "helm",
		"zoom-us":         "zoom",
	}

	tests := []struct {
		name      string
		declared  string
		installed []string
		want      string
		wantOK    bool
	}{
		{
			name:      "direct match",
			declared:  "ripgrep",
			installed: []string{"ripgrep"},
			want:      "ripgrep",
			wantOK:    true,
		},
		{
			name:      "mapping translates before probing",
			declared:  "kubernetes-helm",
			installed: []string{"helm"},
			want:      "helm",
			wantOK:    true,
		},
		{
			name:      "bin variant",
			declared:  "foo",
			installed: []string{"foo-bin"},
			want:      "foo-bin",
			wantOK:    true,
		},
		{
			name:      "git variant",
			declared:  "foo",
			installed: []string{"foo-git"},
			want:      "foo-git",
			wantOK:    true,
		},
		{
			name:      "bin-git variant",
			declared:  "foo",
			installed: []string{"foo-bin-git"},
			want:      "foo-bin-git",
			wantOK:    true,
		},
		{
			name:      "direct match wins over variants",
			declared:  "foo",
			installed: []string{"foo-bin", "foo"},
			want:      "foo",
			wantOK:    true,
		},
		{
			name:      "bin wins over git",
			declared:  "foo",
			installed: []string{"foo-git", "foo-bin"},
			want:      "foo-bin",
			wantOK:    true,
		},
		{
			name:      "mapped name gets variant probing",
			declared:  "zoom-us",
			installed: []string{"zoom-bin"},
			want:      "zoom-bin",
			wantOK:    true,
		},
		{
			name:      "verbatim hit wins without consulting the mapping",
			declared:  "kubernetes-helm",
			installed: []string{"kubernetes-helm", "helm"},
			want:      "kubernetes-helm",
			wantOK:    true,
		},
		{
			name:      "no match",
			declared:  "bar",
			installed: []string{"helm", "zoom"},
			wantOK:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := reconcile.Resolve(tt.declared, reconcile.NewSet(tt.installed), mapping)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDuplicates(t *testing.T) {
	installed := reconcile.NewSet([]string{"helm", "go-yq", "zoom", "foo-bin"})
	declared := []string{"kubernetes-helm", "yq-go", "zoom-us", "foo", "bar"}
	mapping := reconcile.Mapping{
		"kubernetes-helm": "helm",
		"yq-go":           "go-yq",
		"zoom-us":         "zoom",
	}

	dups, unmatched := reconcile.Duplicates(installed, declared, mapping)

	want := []reconcile.Duplicate{
		{Imperative: "helm", Declarative: "kubernetes-helm"},
		{Imperative: "go-yq", Declarative: "yq-go"},
		{Imperative: "zoom", Declarative: "zoom-us"},
		{Imperative: "foo-bin", Declarative: "foo"},
	}
	if diff := cmp.Diff(want, dups); diff != "" {
		t.Errorf("Duplicates mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []string{"bar"}, unmatched)
}

func TestDuplicatesDedupe(t *testing.T) {
	t.Run("identical pairs collapse", func(t *testing.T) {
		installed := reconcile.NewSet([]string{"python"})
		declared := []string{"python", "python"}

		dups, unmatched := reconcile.Duplicates(installed, declared, nil)

		require.Len(t, dups, 1)
		assert.Equal(t, reconcile.Duplicate{Imperative: "python", Declarative: "python"}, dups[0])
		assert.Empty(t, unmatched)
	})

	t.Run("distinct pairs for one installed package survive", func(t *testing.T) {
		installed := reconcile.NewSet([]string{"foo-bin"})
		declared := []string{"foo", "foo-bin"}

		dups, unmatched := reconcile.Duplicates(installed, declared, nil)

		want := []reconcile.Duplicate{
			{Imperative: "foo-bin", Declarative: "foo"},
			{Imperative: "foo-bin", Declarative: "foo-bin"},
		}
		if diff := cmp.Diff(want, dups); diff != "" {
			t.Errorf("Duplicates mismatch (-want +got):\n%s", diff)
		}
		assert.Empty(t, unmatched)
	})
}

func TestDuplicatesEmpty(t *testing.T) {
	dups, unmatched := reconcile.Duplicates(reconcile.NewSet(nil), nil, nil)

	assert.Empty(t, dups)
	assert.Empty(t, unmatched)
}

func TestBuildPlan(t *testing.T) {
	dups := []reconcile.Duplicate{
		{Imperative: "helm", Declarative: "kubernetes-helm"},
		{Imperative: "yay", Declarative: "yay"},
		{Imperative: "zoom", Declarative: "zoom-us"},
	}

	t.Run("protected is excluded by default", func(t *testing.T) {
		removals, excluded := reconcile.BuildPlan(dups, "yay", false)

		assert.Equal(t, []string{"helm", "zoom"}, removals)
		assert.Equal(t, []string{"yay"}, excluded)
	})

	t.Run("protected goes last when included", func(t *testing.T) {
		removals, excluded := reconcile.BuildPlan(dups, "yay", true)

		assert.Equal(t, []string{"helm", "zoom", "yay"}, removals)
		assert.Empty(t, excluded)
	})

	t.Run("protected absent from duplicates", func(t *testing.T) {
		removals, excluded := reconcile.BuildPlan(dups[:1], "yay", false)

		assert.Equal(t, []string{"helm"}, removals)
		assert.Empty(t, excluded)
	})

	t.Run("repeated imperative names collapse to one target", func(t *testing.T) {
		repeated := []reconcile.Duplicate{
			{Imperative: "foo-bin", Declarative: "foo"},
			{Imperative: "foo-bin", Declarative: "foo-bin"},
		}
		removals, excluded := reconcile.BuildPlan(repeated, "yay", false)

		assert.Equal(t, []string{"foo-bin"}, removals)
		assert.Empty(t, excluded)
	})

	t.Run("no duplicates", func(t *testing.T) {
		removals, excluded := reconcile.BuildPlan(nil, "yay", true)

		assert.Empty(t, removals)
		assert.Empty(t, excluded)
	})
}
