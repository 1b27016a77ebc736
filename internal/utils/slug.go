package utils

import (
	"strings"
	"unicode"
)

// Slugify derives a URL-safe identifier from a title-ish string: lowercase,
// non-alphanumerics collapsed to single hyphens, trimmed to maxSlugLen.
func Slugify(s string) string {
	const maxSlugLen = 50

	var b strings.Builder
	lastHyphen := true // swallow leading separators
	for _, r := range strings.ToLower(s) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}

	slug := strings.Trim(b.String(), "-")
	if runes := []rune(slug); len(runes) > maxSlugLen {
		slug = strings.Trim(string(runes[:maxSlugLen]), "-")
	}
	return slug
}
