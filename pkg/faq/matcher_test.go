package faq

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formflow/pkg/schema"
)

func grantPattern() Pattern {
	return Pattern{
		Name:   "complex ARC-D grant",
		Answer: "Route to the ARC-D desk.",
		Sections: []PatternSection{
			{
				Heading: "Basics",
				Fields: []PatternField{
					{Label: "Grant Team", Selected: "ARC-D"},
					{Label: "Is UOM the lead?", Selected: "Yes"},
					{Label: "Query Type", Selected: "Complex"},
				},
			},
		},
	}
}

func TestMatchFullScore(t *testing.T) {
	t.Parallel()

	answers := schema.AnswerSet{
		"Grant Team":       []string{"ARC-D"},
		"Is UOM the lead?": "Yes",
		"Query Type":       "Complex",
	}

	result := Match(grantPattern(), answers)
	if result.Score != 100 {
		t.Fatalf("score = %v, want 100", result.Score)
	}
	want := []string{"ARC-D", "Yes", "Complex"}
	if diff := cmp.Diff(want, result.MatchedTokens); diff != "" {
		t.Fatalf("matched tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestMatchPartialScore(t *testing.T) {
	t.Parallel()

	answers := schema.AnswerSet{
		"Grant Team": "ARC-D",
		"Query Type": "Simple",
	}

	result := Match(grantPattern(), answers)
	// "Yes" substring-matches nothing here; "Complex" does not appear.
	// 1 of 3 selections match... except "Yes" is contained in nothing and
	// contains nothing among the entries, so only ARC-D matches.
	if result.Score <= 0 || result.Score >= 100 {
		t.Fatalf("expected partial score, got %v", result.Score)
	}
}

func TestMatchSubstringEitherDirection(t *testing.T) {
	t.Parallel()

	pattern := Pattern{
		Sections: []PatternSection{
			{Fields: []PatternField{{Label: "Team", Selected: "ARC"}}},
		},
	}
	// Selection "ARC" is contained by the submitted value "arc-d".
	result := Match(pattern, schema.AnswerSet{"team": "ARC-D"})
	if result.Score != 100 {
		t.Fatalf("containment of token in value should match, score = %v", result.Score)
	}

	pattern.Sections[0].Fields[0].Selected = "ARC-D extended"
	// Submitted value "arc-d" is contained by the selection token.
	result = Match(pattern, schema.AnswerSet{"team": "ARC-D"})
	if result.Score != 100 {
		t.Fatalf("containment of value in token should match, score = %v", result.Score)
	}
}

func TestMatchAgainstKeys(t *testing.T) {
	t.Parallel()

	pattern := Pattern{
		Sections: []PatternSection{
			{Fields: []PatternField{{Label: "Field", Selected: "grant team"}}},
		},
	}
	result := Match(pattern, schema.AnswerSet{"Grant Team": "something else"})
	if result.Score != 100 {
		t.Fatalf("token matching an entry key should count, score = %v", result.Score)
	}
}

func TestMatchZeroSelectionPattern(t *testing.T) {
	t.Parallel()

	result := Match(Pattern{Name: "empty"}, schema.AnswerSet{"any": "thing"})
	if result.Score != 0 {
		t.Fatalf("empty pattern score = %v, want 0", result.Score)
	}
	if result.MatchedTokens != nil {
		t.Fatalf("empty pattern matched tokens = %v, want none", result.MatchedTokens)
	}
}

func TestMatchNeverPanicsOnMalformedPattern(t *testing.T) {
	t.Parallel()

	pattern := Pattern{
		Sections: []PatternSection{
			{Fields: []PatternField{{Selected: nil}, {Label: "x"}}},
			{},
		},
	}
	result := Match(pattern, nil)
	if result.Score != 0 {
		t.Fatalf("malformed pattern score = %v, want 0", result.Score)
	}
}

func TestMatchAndSortOrdersByScoreDescending(t *testing.T) {
	t.Parallel()

	answers := schema.AnswerSet{
		"Grant Team": "ARC-D",
		"Query Type": "Complex",
	}
	patterns := []Pattern{
		{Name: "half", Sections: []PatternSection{{Fields: []PatternField{
			{Selected: "ARC-D"}, {Selected: "nonexistent"},
		}}}},
		{Name: "full", Sections: []PatternSection{{Fields: []PatternField{
			{Selected: "ARC-D"}, {Selected: "Complex"},
		}}}},
		{Name: "none", Sections: []PatternSection{{Fields: []PatternField{
			{Selected: "unrelated"},
		}}}},
	}

	results := MatchAndSort(patterns, answers, 0)
	if len(results) != 2 {
		t.Fatalf("expected zero-score pattern filtered out, got %d results", len(results))
	}
	if results[0].Pattern.Name != "full" || results[1].Pattern.Name != "half" {
		t.Fatalf("ranking order = [%s, %s]", results[0].Pattern.Name, results[1].Pattern.Name)
	}
}

func TestMatchAndSortStableOnTies(t *testing.T) {
	t.Parallel()

	answers := schema.AnswerSet{"team": "ARC-D"}
	patterns := []Pattern{
		{Name: "first", Sections: []PatternSection{{Fields: []PatternField{{Selected: "ARC-D"}}}}},
		{Name: "second", Sections: []PatternSection{{Fields: []PatternField{{Selected: "arc-d"}}}}},
		{Name: "third", Sections: []PatternSection{{Fields: []PatternField{{Selected: "ARC"}}}}},
	}

	results := MatchAndSort(patterns, answers, 0)
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	names := []string{results[0].Pattern.Name, results[1].Pattern.Name, results[2].Pattern.Name}
	if diff := cmp.Diff([]string{"first", "second", "third"}, names); diff != "" {
		t.Fatalf("tie-break must preserve input order (-want +got):\n%s", diff)
	}
}

func TestMatchAndSortMinScoreFilter(t *testing.T) {
	t.Parallel()

	answers := schema.AnswerSet{"team": "ARC-D"}
	patterns := []Pattern{
		{Name: "half", Sections: []PatternSection{{Fields: []PatternField{
			{Selected: "ARC-D"}, {Selected: "missing"},
		}}}},
	}

	if got := MatchAndSort(patterns, answers, 50); len(got) != 0 {
		t.Fatalf("expected 50%% score filtered by minScore=50, got %d results", len(got))
	}
	if got := MatchAndSort(patterns, answers, 49); len(got) != 1 {
		t.Fatalf("expected 50%% score to pass minScore=49, got %d results", len(got))
	}
}
