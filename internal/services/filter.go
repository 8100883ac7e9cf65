package services

import "strings"

// matches reports whether value satisfies a facade filter. A blank filter
// matches everything; otherwise the comparison is case-insensitive.
func matches(filter, value string) bool {
	filter = strings.TrimSpace(filter)
	if filter == "" {
		return true
	}
	return strings.EqualFold(filter, strings.TrimSpace(value))
}

func blank(s string) bool { return strings.TrimSpace(s) == "" }
