package discovery

import (
	"path/filepath"
	"strings"
)

// Filter selects checks by name pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByName keeps the names matching pattern, in their original order.
// Supports patterns like "*Status*" or "Root API Endpoint"; matching is case-insensitive.
func (f *Filter) FilterByName(names []string, pattern string) []string {
	if pattern == "" {
		return names
	}

	pattern = strings.ToLower(pattern)
	hasWildcard := strings.ContainsAny(pattern, "*?")

	var filtered []string
	for _, name := range names {
		lower := strings.ToLower(name)

		if matched, err := filepath.Match(pattern, lower); err == nil && matched {
			filtered = append(filtered, name)
			continue
		}

		if !hasWildcard {
			if strings.Contains(lower, pattern) {
				filtered = append(filtered, name)
			}
			continue
		}

		// "*Status*" style patterns also match when every literal part is present
		if matchParts(lower, strings.Split(pattern, "*")) {
			filtered = append(filtered, name)
		}
	}

	return filtered
}

func matchParts(name string, parts []string) bool {
	nonEmpty := false
	for _, part := range parts {
		if part == "" {
			continue
		}
		if strings.Contains(part, "?") || !strings.Contains(name, part) {
			return false
		}
		nonEmpty = true
	}
	return nonEmpty
}
