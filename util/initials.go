package util

import "strings"

// GenerateInitials builds a display abbreviation from a full name,
// e.g. "Maria da Silva" -> "MS".
func GenerateInitials(name string) string {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return ""
	}

	first := []rune(parts[0])
	if len(parts) == 1 {
		if len(first) >= 2 {
			return strings.ToUpper(string(first[:2]))
		}
		return strings.ToUpper(string(first))
	}

	last := []rune(parts[len(parts)-1])
	return strings.ToUpper(string(first[0]) + string(last[0]))
}
