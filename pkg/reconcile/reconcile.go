// Package reconcile implements the set logic at the heart of pacprune:
// resolving declaratively managed package names against the imperatively
// installed set, and deriving the removal plan from the overlap.
package reconcile

import (
	"sort"
)

// Set is a deduplicated collection of package names with O(1) membership.
type Set map[string]struct{}

// NewSet builds a Set from a list of names, dropping duplicates.
func NewSet(names []string) Set {
	s := make(Set, len(names))
	for _, name := range names {
		s[name] = struct{}{}
	}
	return s
}

// Has reports set membership by exact string equality.
func (s Set) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Len returns the number of names in the set.
func (s Set) Len() int {
	return len(s)
}

// Sorted returns the names in lexical order.
func (s Set) Sorted() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// suffixVariants are the AUR packaging suffixes probed after an exact
// membership miss, in order.
var suffixVariants = []string{"-bin", "-git", "-bin-git"}

// Resolve finds the installed package a declarative name refers to. A
// verbatim hit wins outright. Otherwise the name is translated through
// the mapping and probed against the installed set directly and with
// each packaging suffix; the first hit wins. ok is false when nothing
// matches.
func Resolve(declared string, installed Set, mapping Mapping) (string, bool) {
	if installed.Has(declared) {
		return declared, true
	}

	base := declared
	if mapped, ok := mapping[declared]; ok {
		base = mapped
		if installed.Has(base) {
			return base, true
		}
	}
	for _, suffix := range suffixVariants {
		if candidate := base + suffix; installed.Has(candidate) {
			return candidate, true
		}
	}
	return "", false
}

// Duplicate pairs an installed package with the declarative name that
// resolved to it.
type Duplicate struct {
	Imperative  string `json:"imperative" yaml:"imperative"`
	Declarative string `json:"declarative" yaml:"declarative"`
}

// Duplicates resolves every declared name against the installed set.
// Entries are deduplicated by pair and ordered by the declared input.
// Declared names that resolve to nothing are returned in unmatched, in
// input order; they are not an error.
func Duplicates(installed Set, declared []string, mapping Mapping) (dups []Duplicate, unmatched []string) {
	seen := make(map[Duplicate]struct{}, len(declared))
	for _, name := range declared {
		imperative, ok := Resolve(name, installed, mapping)
		if !ok {
			unmatched = append(unmatched, name)
			continue
		}
		entry := Duplicate{Imperative: imperative, Declarative: name}
		if _, dup := seen[entry]; dup {
			continue
		}
		seen[entry] = struct{}{}
		dups = append(dups, entry)
	}
	return dups, unmatched
}

// BuildPlan orders the imperative names of a duplicate report for
// removal. Each name appears at most once, since the removal command
// rejects duplicate targets. The protected package is excluded unless
// includeProtected is set; when included it goes last, so the manager
// removes everything else before removing itself.
func BuildPlan(dups []Duplicate, protected string, includeProtected bool) (removals, excluded []string) {
	planned := make(map[string]struct{}, len(dups))
	var deferred []string
	for _, d := range dups {
		if _, dup := planned[d.Imperative]; dup {
			continue
		}
		planned[d.Imperative] = struct{}{}

		if protected != "" && d.Imperative == protected {
			if includeProtected {
				deferred = append(deferred, d.Imperative)
			} else {
				excluded = append(excluded, d.Imperative)
			}
			continue
		}
		removals = append(removals, d.Imperative)
	}
	return append(removals, deferred...), excluded
}
