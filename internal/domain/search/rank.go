package search

import (
	"cmp"
	"slices"
)

// Rank deduplicates candidates by Key, keeping the highest precedence tier, and
// orders the survivors by tier, case-folded display name, then SortID.
func Rank(candidates []Result) []Result {
	best := make(map[string]Result, len(candidates))
	for _, candidate := range candidates {
		key := candidate.Key()
		if current, ok := best[key]; !ok || candidate.Tier().Outranks(current.Tier()) {
			best[key] = candidate
		}
	}

	ranked := make([]Result, 0, len(best))
	for _, r := range best {
		ranked = append(ranked, r)
	}

	slices.SortStableFunc(ranked, func(a, b Result) int {
		return cmp.Or(
			cmp.Compare(a.Tier(), b.Tier()),
			cmp.Compare(Fold(a.DisplayName()), Fold(b.DisplayName())),
			cmp.Compare(a.SortID(), b.SortID()),
		)
	})

	return ranked
}
