package common

// IndexBy builds a lookup table keyed by key(e).
// The first element wins when two elements share a key; empty keys are skipped.
func IndexBy[S ~[]E, E any](s S, key func(E) string) map[string]E {
	out := make(map[string]E, len(s))

	for _, e := range s {
		k := key(e)
		if k == "" {
			continue
		}

		if _, exists := out[k]; exists {
			continue
		}

		out[k] = e
	}

	return out
}

// GroupBy groups elements by key(e), preserving input order within each group.
// Elements with an empty key are skipped.
func GroupBy[S ~[]E, E any](s S, key func(E) string) map[string][]E {
	out := make(map[string][]E)

	for _, e := range s {
		k := key(e)
		if k == "" {
			continue
		}

		out[k] = append(out[k], e)
	}

	return out
}

// Filter returns the elements for which keep returns true.
func Filter[S ~[]E, E any](s S, keep func(E) bool) S {
	var out S

	for _, e := range s {
		if keep(e) {
			out = append(out, e)
		}
	}

	return out
}
