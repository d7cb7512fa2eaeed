// Package shared provides common utility functions used across multiple
// packages in the qmk-keymap codebase.
package shared

import "strings"

// IsBlank reports whether value is empty or whitespace only.
func IsBlank(value string) bool {
	return strings.TrimSpace(value) == ""
}

// NonBlank returns the values that are not blank, trimmed, in order.
func NonBlank(values []string) []string {
	var out []string
	for _, value := range values {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}
	return out
}
