package periods

import (
	"sort"

	"github.com/wonny/finstitch/internal/contracts"
)

// dedupeAndLimit removes exact-date duplicates (first occurrence wins, and
// sources are processed newest first), sorts the remainder newest first and
// truncates to maxPeriods. Deduplication is never distance-based: two
// periods one day apart are two columns.
func dedupeAndLimit(selected []contracts.Period, maxPeriods int) []contracts.Period {
	seen := make(map[string]bool, len(selected))
	unique := make([]contracts.Period, 0, len(selected))
	for _, p := range selected {
		key := p.Key()
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, p)
	}

	sort.SliceStable(unique, func(i, j int) bool {
		ei, ej := unique[i].EndDate(), unique[j].EndDate()
		if !ei.Equal(ej) {
			return ei.After(ej)
		}
		return unique[i].Key() < unique[j].Key()
	})

	if maxPeriods > 0 && len(unique) > maxPeriods {
		unique = unique[:maxPeriods]
	}
	return unique
}
