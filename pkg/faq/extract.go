package faq

import (
	"strings"

	"github.com/goliatone/go-formflow/pkg/schema"
)

// Selections flattens a pattern into the list of selected option labels used
// for matching. Section headings and field labels are deliberately skipped;
// only the chosen values carry matching signal. Values are string-coerced and
// trimmed, empties are dropped, and duplicates are removed while preserving
// first-seen order so repeated extraction is deterministic.
func Selections(pattern Pattern) []string {
	var out []string
	seen := make(map[string]struct{})

	for _, section := range pattern.Sections {
		for _, field := range section.Fields {
			for _, raw := range schema.ValueTokens(field.Selected) {
				token := strings.TrimSpace(raw)
				if token == "" {
					continue
				}
				if _, dup := seen[token]; dup {
					continue
				}
				seen[token] = struct{}{}
				out = append(out, token)
			}
		}
	}
	return out
}
