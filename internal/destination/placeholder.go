package destination

import (
	"fmt"
	"strings"

	"tm-migrator/internal/sentinel"
)

// PlaceholderPrefix starts every placeholder token.
const PlaceholderPrefix = "PENDING:"

// Placeholder returns the token standing in for the ID of the Territory2
// record that will be created under developerName.
func Placeholder(developerName string) string {
	return PlaceholderPrefix + developerName
}

// IsPlaceholder reports whether s is a placeholder token.
func IsPlaceholder(s string) bool {
	return strings.HasPrefix(s, PlaceholderPrefix)
}

// ResolvePlaceholder returns the Territory2 ID a token stands for. ok is
// false for strings that are not tokens and for unknown DeveloperNames.
func (c *Context) ResolvePlaceholder(token string) (string, bool, error) {
	if c.state < StateUpdated {
		return "", false, fmt.Errorf("resolve placeholder: %w", sentinel.ErrNotUpdated)
	}

	name, found := strings.CutPrefix(token, PlaceholderPrefix)
	if !found || name == "" {
		return "", false, nil
	}

	t, ok := c.byDeveloperName[name]
	if !ok {
		return "", false, nil
	}

	return t.Id, true, nil
}
