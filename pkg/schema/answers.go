package schema

import (
	"fmt"
	"strings"
)

// AnswerSet is the live mapping from field id to the user's current value.
// Values are scalars (string/number/bool) or ordered lists of scalars for
// multi-select controls. One AnswerSet exists per form session and is never
// persisted by this package.
type AnswerSet map[string]any

// NewAnswerSet returns an empty answer set.
func NewAnswerSet() AnswerSet {
	return make(AnswerSet)
}

// Get returns the stored value for a field. A nil stored value reads as
// absent.
func (a AnswerSet) Get(fieldID string) (any, bool) {
	if a == nil {
		return nil, false
	}
	value, ok := a[fieldID]
	if !ok || value == nil {
		return nil, false
	}
	return value, true
}

// Set records a value. Setting nil clears the field.
func (a AnswerSet) Set(fieldID string, value any) {
	if value == nil {
		delete(a, fieldID)
		return
	}
	a[fieldID] = value
}

// Clear removes a field's stored value.
func (a AnswerSet) Clear(fieldID string) {
	delete(a, fieldID)
}

// Clone returns a shallow copy so callers can snapshot a submission without
// racing later mutations.
func (a AnswerSet) Clone() AnswerSet {
	if a == nil {
		return nil
	}
	out := make(AnswerSet, len(a))
	for key, value := range a {
		out[key] = value
	}
	return out
}

// ValueTokens flattens an answer value into its string representations.
// Scalars become a one-element slice, lists map element-wise, and non-string
// scalars are coerced via fmt. Nil input yields nil; empty strings are kept
// so callers decide whether to drop them.
func ValueTokens(value any) []string {
	switch v := value.(type) {
	case nil:
		return nil
	case string:
		return []string{v}
	case []string:
		out := make([]string, len(v))
		copy(out, v)
		return out
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			out = append(out, coerceString(item))
		}
		return out
	default:
		return []string{coerceString(v)}
	}
}

func coerceString(value any) string {
	if value == nil {
		return ""
	}
	switch v := value.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return fmt.Sprint(value)
	}
}

// NormalizeToken trims and lower-cases a value for token comparison.
func NormalizeToken(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
