package naming

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// MaxLength is the longest DeveloperName the destination accepts.
const MaxLength = 80

// fallbackName is used when a display name has no usable characters.
const fallbackName = "X"

// Slug converts a display name into a DeveloperName:
//  1. Strip diacritics (NFD decompose, drop nonspacing marks).
//  2. Replace every run of non-alphanumeric characters with one underscore.
//  3. Trim leading and trailing underscores.
//  4. Prefix "X" when the result does not start with a letter.
//  5. Truncate to MaxLength.
func Slug(name string) string {
	s := stripDiacritics(name)

	var b strings.Builder
	b.Grow(len(s))

	pending := false

	for _, r := range s {
		if !isNameRune(r) {
			pending = b.Len() > 0
			continue
		}

		if pending {
			b.WriteByte('_')
			pending = false
		}

		b.WriteRune(r)
	}

	out := b.String()
	if out == "" {
		return fallbackName
	}

	if !isASCIILetter(rune(out[0])) {
		out = fallbackName + out
	}

	return truncate(out, MaxLength)
}

// IsValid reports whether name already satisfies the DeveloperName rules.
func IsValid(name string) bool {
	return name != "" && Slug(name) == name
}

func stripDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}

	return out
}

// truncate cuts s to at most n bytes and drops any trailing underscores the
// cut exposed. Slugs are ASCII, so bytes and characters coincide.
func truncate(s string, n int) string {
	if len(s) > n {
		s = s[:n]
	}

	return strings.TrimRight(s, "_")
}

func isNameRune(r rune) bool {
	return isASCIILetter(r) || (r >= '0' && r <= '9')
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
