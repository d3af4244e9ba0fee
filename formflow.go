// Package formflow re-exports the primary entry points of the module: the
// declarative form schema, the per-session visibility/cascade host, and the
// FAQ pattern matcher. Most callers only need this package plus pkg/schema
// for type definitions.
package formflow

import (
	"io/fs"

	"github.com/goliatone/go-formflow/pkg/faq"
	"github.com/goliatone/go-formflow/pkg/schema"
	"github.com/goliatone/go-formflow/pkg/session"
)

// Schema aliases the declarative form definition.
type Schema = schema.Schema

// Section aliases one ordered group of fields.
type Section = schema.Section

// Field aliases a single question.
type Field = schema.Field

// Option aliases a selectable choice.
type Option = schema.Option

// Condition aliases a field-level visibility rule.
type Condition = schema.Condition

// VisibilityTrigger aliases a section-level visibility rule.
type VisibilityTrigger = schema.VisibilityTrigger

// AnswerSet aliases the live field-id to value mapping for one session.
type AnswerSet = schema.AnswerSet

// Pattern aliases an operator-authored FAQ entry.
type Pattern = faq.Pattern

// MatchResult aliases one scored pattern outcome.
type MatchResult = faq.MatchResult

// Session aliases the live form-filling host.
type Session = session.Session

// NewSession starts an empty session for the given schema.
func NewSession(formSchema Schema, options ...session.Option) *Session {
	return session.New(formSchema, options...)
}

// LoadSchemas parses every JSON/YAML schema document under fsys.
func LoadSchemas(fsys fs.FS) (*schema.Library, error) {
	return schema.LoadFS(fsys)
}

// LoadPatterns parses every JSON/YAML pattern document under fsys.
func LoadPatterns(fsys fs.FS) ([]Pattern, error) {
	return faq.LoadFS(fsys)
}

// MatchFAQ ranks the pattern library against a completed submission. An empty
// result is the documented signal to route to human escalation.
func MatchFAQ(patterns []Pattern, answers AnswerSet, minScore float64) []MatchResult {
	return faq.MatchAndSort(patterns, answers, minScore)
}
