// Package session hosts one live form-filling session: it owns the answer
// set and sequences every change through visibility resolution and the
// section cascade, so callers always observe a state that includes the
// triggering change. Sessions are single-threaded by contract — one
// invocation per discrete input event, run to completion on the calling
// goroutine.
package session

import (
	"go.uber.org/zap"

	"github.com/goliatone/go-formflow/pkg/cascade"
	"github.com/goliatone/go-formflow/pkg/faq"
	"github.com/goliatone/go-formflow/pkg/schema"
	"github.com/goliatone/go-formflow/pkg/visibility"
)

// Session tracks the live state of one form being filled in.
type Session struct {
	schema  schema.Schema
	answers schema.AnswerSet
	active  []string
	engine  *cascade.Engine
	logger  *zap.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithLogger installs a structured logger shared with the cascade engine.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New starts an empty session for the given schema. The initial active set is
// the always-visible floor.
func New(formSchema schema.Schema, options ...Option) *Session {
	s := &Session{
		schema:  formSchema,
		answers: schema.NewAnswerSet(),
		logger:  zap.NewNop(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(s)
		}
	}
	s.engine = cascade.New(formSchema, cascade.WithLogger(s.logger))
	s.active = s.engine.ActiveSections(s.answers)
	return s
}

// SetAnswer records a user input event and recomputes the dependent state in
// causal order: the value is stored first, then field visibility is swept
// (clearing answers of fields that dropped out of view), then the active
// section set is recomputed wholesale. It returns the field ids whose stale
// answers were cleared by the sweep.
func (s *Session) SetAnswer(fieldID string, value any) []string {
	if _, ok := s.schema.Field(fieldID); !ok {
		s.logger.Warn("session: answer for unknown field", zap.String("field", fieldID))
	}
	s.answers.Set(fieldID, value)

	_, cleared := visibility.Apply(s.schema, s.answers)
	s.active = s.engine.ActiveSections(s.answers)
	return cleared
}

// Answer returns the current value for a field.
func (s *Session) Answer(fieldID string) (any, bool) {
	return s.answers.Get(fieldID)
}

// Answers returns a snapshot of the current answer set.
func (s *Session) Answers() schema.AnswerSet {
	return s.answers.Clone()
}

// ActiveSections returns the ordered ids of currently active sections.
func (s *Session) ActiveSections() []string {
	return append([]string(nil), s.active...)
}

// VisibleFields returns, in authored order, every field that belongs to an
// active section and whose dependency chain currently resolves visible.
func (s *Session) VisibleFields() []schema.Field {
	activeSet := make(map[string]struct{}, len(s.active))
	for _, id := range s.active {
		activeSet[id] = struct{}{}
	}

	var out []schema.Field
	for _, section := range s.schema.Sections {
		if _, ok := activeSet[section.ID]; !ok {
			continue
		}
		for _, field := range section.Fields {
			if visibility.FieldVisible(s.schema, field, s.answers) {
				out = append(out, field)
			}
		}
	}
	return out
}

// FieldVisible reports whether a single field is currently visible, including
// its section being active.
func (s *Session) FieldVisible(fieldID string) bool {
	section, ok := s.schema.FieldSection(fieldID)
	if !ok {
		return false
	}
	active := false
	for _, id := range s.active {
		if id == section.ID {
			active = true
			break
		}
	}
	if !active {
		return false
	}
	field, _ := s.schema.Field(fieldID)
	return visibility.FieldVisible(s.schema, field, s.answers)
}

// Submit snapshots the current answers as a completed submission and ranks
// the pattern library against it. An empty result means no pattern scored
// above minScore and the caller should route to human escalation.
func (s *Session) Submit(patterns []faq.Pattern, minScore float64) []faq.MatchResult {
	return faq.MatchAndSort(patterns, s.Answers(), minScore)
}
