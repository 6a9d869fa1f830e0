package reconcile

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Suggest returns installed package names that resemble an unmatched
// declarative name, closest first. Both containment directions are
// probed, so "delta" surfaces "git-delta" and "kubernetes-helm"
// surfaces "helm". At most max names are returned.
func Suggest(declared string, installed Set, max int) []string {
	if declared == "" || installed.Len() == 0 || max <= 0 {
		return nil
	}

	candidates := installed.Sorted()
	ranks := fuzzy.RankFindNormalizedFold(declared, candidates)

	seen := make(map[string]struct{}, len(ranks))
	for _, r := range ranks {
		seen[r.Target] = struct{}{}
	}
	for _, name := range candidates {
		if _, ok := seen[name]; ok {
			continue
		}
		if !fuzzy.MatchNormalizedFold(name, declared) {
			continue
		}
		seen[name] = struct{}{}
		ranks = append(ranks, fuzzy.Rank{
			Source:   declared,
			Target:   name,
			Distance: fuzzy.LevenshteinDistance(declared, name),
		})
	}

	sort.SliceStable(ranks, func(i, j int) bool {
		if ranks[i].Distance != ranks[j].Distance {
			return ranks[i].Distance < ranks[j].Distance
		}
		return ranks[i].Target < ranks[j].Target
	})
	if len(ranks) > max {
		ranks = ranks[:max]
	}

	names := make([]string, len(ranks))
	for i, r := range ranks {
		names[i] = r.Target
	}
	return names
}
