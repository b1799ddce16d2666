package naming

import (
	"strconv"
	"strings"
)

// Allocator hands out DeveloperNames that are unique within one namespace.
// Assignment is a pure function of call order: the first caller of a slug
// keeps it and later callers get suffixed variants.
type Allocator struct {
	used    map[string]struct{}
	renamed int
}

// NewAllocator creates an empty namespace.
func NewAllocator() *Allocator {
	return &Allocator{used: make(map[string]struct{})}
}

// Assign derives a DeveloperName from preferred and reserves it. The second
// result is true when a collision suffix had to be added.
func (a *Allocator) Assign(preferred string) (string, bool) {
	base := Slug(preferred)

	if a.reserve(base) {
		return base, false
	}

	for n := 2; ; n++ {
		suffix := "_" + strconv.Itoa(n)
		candidate := truncate(base, MaxLength-len(suffix)) + suffix

		if a.reserve(candidate) {
			a.renamed++
			return candidate, true
		}
	}
}

// Taken reports whether name is already reserved.
func (a *Allocator) Taken(name string) bool {
	_, ok := a.used[strings.ToLower(name)]
	return ok
}

// Len returns the number of reserved names.
func (a *Allocator) Len() int { return len(a.used) }

// Renamed returns how many names received a collision suffix.
func (a *Allocator) Renamed() int { return a.renamed }

func (a *Allocator) reserve(name string) bool {
	key := strings.ToLower(name)
	if _, ok := a.used[key]; ok {
		return false
	}

	a.used[key] = struct{}{}

	return true
}
