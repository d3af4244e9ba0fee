package faq

import (
	"sort"
	"strings"

	"github.com/goliatone/go-formflow/pkg/schema"
)

// Match scores one pattern against a submission. Each extracted selection
// counts as matched when some entry's key or one of its values contains the
// selection token, or is contained by it (substring match in either
// direction). The score is the matched fraction scaled to 0..100. A pattern
// with no extractable selections scores 0: it can never be confidently
// matched. Matching never fails; malformed patterns just score low.
func Match(pattern Pattern, answers schema.AnswerSet) MatchResult {
	result := MatchResult{Pattern: pattern}

	selections := Selections(pattern)
	if len(selections) == 0 {
		return result
	}
	entries := Normalize(answers)

	for _, selection := range selections {
		token := schema.NormalizeToken(selection)
		if entriesMatch(entries, token) {
			result.MatchedTokens = append(result.MatchedTokens, selection)
		}
	}

	result.Score = float64(len(result.MatchedTokens)) / float64(len(selections)) * 100
	return result
}

// MatchAndSort scores every pattern, drops results at or below minScore, and
// returns the rest ordered by descending score. Ties keep their input order;
// the stable tie-break is part of the contract, not incidental.
func MatchAndSort(patterns []Pattern, answers schema.AnswerSet, minScore float64) []MatchResult {
	results := make([]MatchResult, 0, len(patterns))
	for _, pattern := range patterns {
		if result := Match(pattern, answers); result.Score > minScore {
			results = append(results, result)
		}
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results
}

func entriesMatch(entries []Entry, token string) bool {
	if token == "" {
		return false
	}
	for _, entry := range entries {
		if containsEither(entry.Key, token) {
			return true
		}
		for _, value := range entry.Values {
			if containsEither(value, token) {
				return true
			}
		}
	}
	return false
}

// containsEither is the bidirectional substring check. It is permissive on
// short tokens; see the pattern authoring docs before relaxing it further,
// since existing fixtures depend on the exact behavior.
func containsEither(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}
