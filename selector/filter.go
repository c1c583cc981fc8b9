// Package selector implements the searchable city dropdown: the live
// filter and the open/closed state of one control.
package selector

import (
	"strings"

	"golang.org/x/text/cases"
)

// Filter returns the candidates whose name contains query as a
// case-insensitive substring, preserving their original order.
// An empty query matches every candidate.
func Filter(candidates []string, query string) []string {
	fold := cases.Fold()
	needle := fold.String(query)

	matches := make([]string, 0, len(candidates))
	for _, name := range candidates {
		if strings.Contains(fold.String(name), needle) {
			matches = append(matches, name)
		}
	}
	return matches
}
