package destination

import (
	"maps"
	"slices"

	"tm-migrator/internal/naming"
	"tm-migrator/internal/record"
)

const maxSuggestions = 3

func suggest(name string, candidates []string) []string {
	return naming.Suggest(name, candidates, maxSuggestions)
}

func sortedKeys(m map[string]record.Territory2) []string {
	return slices.Sorted(maps.Keys(m))
}

func dedupe(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := names[:0]

	for _, n := range names {
		if _, ok := seen[n]; ok {
			continue
		}

		seen[n] = struct{}{}
		out = append(out, n)
	}

	return out
}
