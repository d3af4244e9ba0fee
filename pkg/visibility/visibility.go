// Package visibility resolves which fields of a form schema are currently
// visible given the live answer set. Resolution is a pure function of
// (schema, answers); the only side effect lives in Apply, which clears
// answers left behind by fields that dropped out of view.
package visibility

import (
	"github.com/goliatone/go-formflow/pkg/schema"
)

// ConditionSatisfied reports whether a field-level condition holds for the
// current answers. A nil condition always holds. Multi-valued answers use
// ANY-match semantics: the condition holds when at least one stored value
// appears in ShowWhen. A missing or empty dependent answer never satisfies.
func ConditionSatisfied(cond *schema.Condition, answers schema.AnswerSet) bool {
	if cond == nil {
		return true
	}
	raw, ok := answers.Get(cond.DependsOn)
	if !ok {
		return false
	}

	accepted := make(map[string]struct{}, len(cond.ShowWhen))
	for _, want := range cond.ShowWhen {
		accepted[want] = struct{}{}
	}
	for _, value := range schema.ValueTokens(raw) {
		if _, hit := accepted[value]; hit {
			return true
		}
	}
	return false
}

// FieldVisible walks the field's dependency chain and reports whether it
// should be shown. A field is visible when its own condition is satisfied and
// every ancestor in the chain is itself visible. Cycles are contained rather
// than surfaced: the field that would close a loop resolves to false, which
// caps recursion at schema size and keeps a malformed schema from hanging the
// live form.
func FieldVisible(s schema.Schema, field schema.Field, answers schema.AnswerSet) bool {
	return fieldVisible(s, field, answers, make(map[string]struct{}))
}

func fieldVisible(s schema.Schema, field schema.Field, answers schema.AnswerSet, visiting map[string]struct{}) bool {
	if _, looping := visiting[field.ID]; looping {
		return false
	}
	if field.Condition == nil {
		return true
	}
	if !ConditionSatisfied(field.Condition, answers) {
		return false
	}

	// A condition pointing outside the schema is an authoring defect; the
	// field stays hidden rather than erroring.
	parent, ok := s.Field(field.Condition.DependsOn)
	if !ok {
		return false
	}
	if parent.Condition == nil {
		return true
	}

	visiting[field.ID] = struct{}{}
	visible := fieldVisible(s, parent, answers, visiting)
	delete(visiting, field.ID)
	return visible
}

// OtherVisible reports whether the free-text companion of a field should be
// shown. The companion is a derived view: it is visible exactly when the
// owning field's current answer includes its designated "other" option, so
// there is no separate visibility state to drift.
func OtherVisible(field schema.Field, answers schema.AnswerSet) bool {
	if field.OtherOption == "" {
		return false
	}
	opt, ok := field.Option(field.OtherOption)
	if !ok {
		return false
	}
	raw, ok := answers.Get(field.ID)
	if !ok {
		return false
	}
	for _, value := range schema.ValueTokens(raw) {
		if value == opt.Value {
			return true
		}
	}
	return false
}

// Apply performs the once-per-change sweep over the whole schema: it computes
// the visible set and clears the stored answer of every field that is no
// longer visible, so stale values from hidden fields never leak into a
// submission or FAQ match. It returns the visibility per field id and the ids
// that were cleared, in authored order.
func Apply(s schema.Schema, answers schema.AnswerSet) (map[string]bool, []string) {
	visible := make(map[string]bool)
	var cleared []string

	for _, section := range s.Sections {
		for _, field := range section.Fields {
			shown := FieldVisible(s, field, answers)
			visible[field.ID] = shown
			if !shown {
				if _, had := answers.Get(field.ID); had {
					answers.Clear(field.ID)
					cleared = append(cleared, field.ID)
				}
			}

			if field.OtherOption == "" {
				continue
			}
			companion := field.ID + schema.OtherFieldSuffix
			if shown && OtherVisible(field, answers) {
				continue
			}
			if _, had := answers.Get(companion); had {
				answers.Clear(companion)
				cleared = append(cleared, companion)
			}
		}
	}
	return visible, cleared
}
