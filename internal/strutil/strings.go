package strutil

import (
	"strings"
	"unicode"
)

// RemoveExtraSpaces collapses runs of whitespace into one and trims the ends
// For example RemoveExtraSpaces("US  dollar  ") return "US dollar"
func RemoveExtraSpaces(s string) string {
	idx := 0

	return strings.TrimSpace(strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			idx++
			if idx > 1 {
				return -1
			}
			return ' '
		} else if idx > 0 {
			idx = 0
		}

		return r
	}, s))
}

// RemoveAll deletes every occurrence of sub in s
func RemoveAll(s, sub string) string {
	if sub == "" {
		return s
	}
	return strings.ReplaceAll(s, sub, "")
}
