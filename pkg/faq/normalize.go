package faq

import (
	"sort"
	"strings"

	"github.com/goliatone/go-formflow/pkg/schema"
)

// Normalize flattens a submission into comparable entries: keys are the
// trimmed, lower-cased field names and values are the trimmed, lower-cased
// string forms of the stored answer, element-wise for lists. Empty values are
// dropped; a field whose answer normalizes to nothing is omitted entirely.
// Entries are ordered by key — order carries no matching semantics, it only
// keeps output reproducible across runs.
func Normalize(answers schema.AnswerSet) []Entry {
	if len(answers) == 0 {
		return nil
	}

	keys := make([]string, 0, len(answers))
	for key := range answers {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	out := make([]Entry, 0, len(keys))
	for _, key := range keys {
		raw, ok := answers.Get(key)
		if !ok {
			continue
		}
		var values []string
		for _, token := range schema.ValueTokens(raw) {
			normalized := schema.NormalizeToken(token)
			if normalized == "" {
				continue
			}
			values = append(values, normalized)
		}
		if len(values) == 0 {
			continue
		}
		out = append(out, Entry{
			Key:    strings.ToLower(strings.TrimSpace(key)),
			Values: values,
		})
	}
	return out
}
