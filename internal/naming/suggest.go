package naming

import (
	"sort"
	"unicode"
)

// SuggestThreshold is the minimum similarity for a name to be suggested.
const SuggestThreshold = 0.75

// Suggest returns up to limit candidates that look like name, best first.
// Comparison ignores case; ties keep candidate order.
func Suggest(name string, candidates []string, limit int) []string {
	type scored struct {
		name  string
		score float64
	}

	var matches []scored

	for _, c := range candidates {
		if score := similarity(name, c); score >= SuggestThreshold {
			matches = append(matches, scored{name: c, score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	out := make([]string, 0, min(limit, len(matches)))
	for i := 0; i < len(matches) && i < limit; i++ {
		out = append(out, matches[i].name)
	}

	return out
}

// similarity scores two names between 0 and 1 from their case-folded edit
// distance, relative to the longer name.
func similarity(a, b string) float64 {
	ra, rb := foldRunes(a), foldRunes(b)

	longest := max(len(ra), len(rb))
	if longest == 0 {
		return 1
	}

	return 1 - float64(editDistance(ra, rb))/float64(longest)
}

func foldRunes(s string) []rune {
	out := []rune(s)
	for i, r := range out {
		out[i] = unicode.ToLower(r)
	}

	return out
}

// editDistance counts single-rune insertions, deletions and substitutions
// between a and b. It keeps one row of the table, indexed by b.
func editDistance(a, b []rune) int {
	row := make([]int, len(b)+1)
	for j := range row {
		row[j] = j
	}

	for i := 1; i <= len(a); i++ {
		diag := row[0]
		row[0] = i

		for j := 1; j <= len(b); j++ {
			above := row[j]

			if a[i-1] == b[j-1] {
				row[j] = diag
			} else {
				row[j] = 1 + min(diag, above, row[j-1])
			}

			diag = above
		}
	}

	return row[len(b)]
}
