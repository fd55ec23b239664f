package shopsim

import (
	"sort"

	"github.com/arcspirits/spirits-api/internal/entities/spirits"
)

// BuildPool expands a rarity → copy-count mapping into a flat multiset of
// draftable tags. Negative counts clamp to zero. The expansion order is
// deterministic (tier order, then any leftover tags alphabetically) so a
// seeded run is exactly reproducible.
func BuildPool(copiesByRarity map[spirits.Rarity]int) []spirits.Rarity {
	ordered := make([]spirits.Rarity, 0, len(copiesByRarity))
	seen := make(map[spirits.Rarity]bool, len(copiesByRarity))
	for _, r := range spirits.AllRarities() {
		if _, ok := copiesByRarity[r]; ok {
			ordered = append(ordered, r)
			seen[r] = true
		}
	}

	var extra []spirits.Rarity
	for r := range copiesByRarity {
		if !seen[r] {
			extra = append(extra, r)
		}
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })
	ordered = append(ordered, extra...)

	var pool []spirits.Rarity
	for _, r := range ordered {
		for i := 0; i < copiesByRarity[r]; i++ {
			pool = append(pool, r)
		}
	}
	return pool
}

// DrawFromPool removes and returns one random element from the pool. When
// allowed is non-empty and intersects the pool, the draw is restricted to
// that subset; otherwise the draw falls back to the whole pool when
// fallbackToAny is set, and returns no draw when it is not. An empty or
// ineligible pool yields ok=false, never an error.
func DrawFromPool(pool *[]spirits.Rarity, allowed map[spirits.Rarity]bool, fallbackToAny bool, rng RandomSource) (spirits.Rarity, bool) {
	p := *pool
	if len(p) == 0 {
		return "", false
	}

	idx := -1
	if len(allowed) > 0 {
		eligible := make([]int, 0, len(p))
		for i, r := range p {
			if allowed[r] {
				eligible = append(eligible, i)
			}
		}
		switch {
		case len(eligible) > 0:
			idx = eligible[rng.IntN(len(eligible))]
		case fallbackToAny:
			idx = rng.IntN(len(p))
		default:
			return "", false
		}
	} else {
		idx = rng.IntN(len(p))
	}

	drawn := p[idx]
	*pool = append(p[:idx], p[idx+1:]...)
	return drawn, true
}
