package transform

import "tm-migrator/internal/record"

// parentsFirst orders territories so every parent precedes its children,
// keeping extract order otherwise. Territories on a parent cycle are
// appended at the end and their IDs returned.
func parentsFirst(all []record.Territory) ([]record.Territory, []string) {
	known := make(map[string]struct{}, len(all))
	for _, t := range all {
		known[t.Id] = struct{}{}
	}

	placed := make(map[string]struct{}, len(all))
	out := make([]record.Territory, 0, len(all))
	pending := all

	for len(pending) > 0 {
		var next []record.Territory

		for _, t := range pending {
			_, parentKnown := known[t.ParentTerritoryId]
			_, parentPlaced := placed[t.ParentTerritoryId]

			if t.ParentTerritoryId == "" || !parentKnown || parentPlaced {
				out = append(out, t)
				placed[t.Id] = struct{}{}

				continue
			}

			next = append(next, t)
		}

		if len(next) == len(pending) {
			var cyclic []string
			for _, t := range next {
				cyclic = append(cyclic, t.Id)
			}

			return append(out, next...), cyclic
		}

		pending = next
	}

	return out, nil
}
