package services

import "strings"

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// containsFold reports whether any of values contains needle, ignoring case.
func containsFold(needle string, values ...string) bool {
	needle = strings.ToLower(needle)
	for _, v := range values {
		if strings.Contains(strings.ToLower(v), needle) {
			return true
		}
	}
	return false
}

// equalsAnyFold matches value against a comma-separated option list.
func equalsAnyFold(options, value string) bool {
	for _, option := range strings.Split(options, ",") {
		if strings.EqualFold(strings.TrimSpace(option), value) {
			return true
		}
	}
	return false
}
