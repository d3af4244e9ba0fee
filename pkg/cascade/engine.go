// Package cascade maintains the ordered set of active sections as answers
// change. The authoritative computation is ActiveSections, a pure function of
// (schema, answers); FieldChanged is an incremental optimization over it that
// only reconciles the sections reachable from the changed field, and the two
// must agree for any event order.
package cascade

import (
	"go.uber.org/zap"

	"github.com/goliatone/go-formflow/pkg/schema"
)

// Engine evaluates section-level visibility triggers for one schema.
type Engine struct {
	schema schema.Schema
	logger *zap.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger installs a structured logger. Unknown ids encountered during
// trigger evaluation are logged and ignored; schemas are operator-authored
// and may be edited concurrently with runtime use, so these are non-fatal.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// New constructs an Engine for the given schema.
func New(s schema.Schema, options ...Option) *Engine {
	engine := &Engine{
		schema: s,
		logger: zap.NewNop(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(engine)
		}
	}
	return engine
}

// ActiveSections recomputes the full active set from scratch: the
// always-visible floor plus every section with at least one satisfied
// trigger, in authored order.
func (e *Engine) ActiveSections(answers schema.AnswerSet) []string {
	active := make([]string, 0, len(e.schema.Sections))
	for _, section := range e.schema.Sections {
		if section.AlwaysVisible || e.sectionTriggered(section.ID, answers) {
			active = append(active, section.ID)
		}
	}
	return active
}

// FieldChanged reconciles the active set after one field's answer changed.
// The answers must already contain the new value (the host sequences state
// updates before invoking the engine). Only sections targeted by the changed
// field's triggers are touched: a newly-satisfied target is inserted at its
// authored index, a no-longer-satisfied one is removed unless it is part of
// the always-visible floor. Targets referenced by triggers from several
// fields stay active while any satisfied trigger still points at them.
func (e *Engine) FieldChanged(fieldID string, answers schema.AnswerSet, active []string) []string {
	result := append([]string(nil), active...)

	if _, ok := e.schema.Field(fieldID); !ok {
		e.logger.Warn("cascade: changed field not in schema", zap.String("field", fieldID))
		return result
	}

	triggers := e.schema.TriggersFor(fieldID)
	seen := make(map[string]struct{}, len(triggers))
	for _, trigger := range triggers {
		if _, done := seen[trigger.TargetSection]; done {
			continue
		}
		seen[trigger.TargetSection] = struct{}{}

		target, ok := e.schema.Section(trigger.TargetSection)
		if !ok {
			e.logger.Warn("cascade: trigger targets unknown section",
				zap.String("field", fieldID),
				zap.String("section", trigger.TargetSection))
			continue
		}

		if e.sectionTriggered(target.ID, answers) {
			result = e.insert(result, target.ID)
		} else if !target.AlwaysVisible {
			result = remove(result, target.ID)
		}
	}
	return result
}

// sectionTriggered reports whether any trigger pointing at the section is
// satisfied by the current answers (OR semantics across triggers).
func (e *Engine) sectionTriggered(sectionID string, answers schema.AnswerSet) bool {
	for _, section := range e.schema.Sections {
		for _, trigger := range section.Triggers {
			if trigger.TargetSection != sectionID {
				continue
			}
			if e.triggerSatisfied(trigger, answers) {
				return true
			}
		}
	}
	return false
}

func (e *Engine) triggerSatisfied(trigger schema.VisibilityTrigger, answers schema.AnswerSet) bool {
	field, ok := e.schema.Field(trigger.FieldID)
	if !ok {
		e.logger.Warn("cascade: trigger references unknown field",
			zap.String("field", trigger.FieldID),
			zap.String("section", trigger.TargetSection))
		return false
	}
	option, ok := field.Option(trigger.OptionID)
	if !ok {
		e.logger.Warn("cascade: trigger references unknown option",
			zap.String("field", trigger.FieldID),
			zap.String("option", trigger.OptionID))
		return false
	}

	raw, ok := answers.Get(field.ID)
	if !ok {
		return false
	}
	for _, value := range schema.ValueTokens(raw) {
		if value == option.Value {
			return true
		}
	}
	return false
}

// insert places a section id at its authored position among the currently
// active sections, preserving the operator's intended ordering no matter in
// which order triggers fired.
func (e *Engine) insert(active []string, sectionID string) []string {
	for _, id := range active {
		if id == sectionID {
			return active
		}
	}

	index := e.schema.SectionIndex(sectionID)
	at := len(active)
	for i, id := range active {
		if existing := e.schema.SectionIndex(id); existing > index {
			at = i
			break
		}
	}

	active = append(active, "")
	copy(active[at+1:], active[at:])
	active[at] = sectionID
	return active
}

func remove(active []string, sectionID string) []string {
	for i, id := range active {
		if id == sectionID {
			return append(active[:i], active[i+1:]...)
		}
	}
	return active
}
