package schema

// FieldType is the enum of form-friendly control kinds.
type FieldType string

const (
	FieldTypeText        FieldType = "text"
	FieldTypeTextArea    FieldType = "textarea"
	FieldTypeSelect      FieldType = "select"
	FieldTypeMultiSelect FieldType = "multiselect"
	FieldTypeRadio       FieldType = "radio"
	FieldTypeCheckbox    FieldType = "checkbox"
	FieldTypeDate        FieldType = "date"
	FieldTypeFile        FieldType = "file"
)

// SelectorRoleQueryType tags the synthesized query-type selector so resolvers
// can identify it without comparing raw field identifiers.
const SelectorRoleQueryType = "query-type"

// OtherFieldSuffix names the free-text companion answer recorded when a
// field's "other" option is selected. The companion is derived state: its
// visibility is computed from the owning field's answer, never tracked.
const OtherFieldSuffix = "_other"

// Option is a single selectable choice on a field.
type Option struct {
	ID    string `json:"id" yaml:"id"`
	Value string `json:"value" yaml:"value"`
	Label string `json:"label,omitempty" yaml:"label,omitempty"`
}

// Condition makes a field's visibility depend on another field's value.
// ShowWhen carries the accepted values; a multi-valued answer satisfies the
// condition when any of its values appears in ShowWhen.
type Condition struct {
	DependsOn string   `json:"dependsOn" yaml:"dependsOn"`
	ShowWhen  []string `json:"showWhen" yaml:"showWhen"`
}

// VisibilityTrigger makes an entire section's visibility depend on a specific
// option being selected on a field inside the declaring section.
type VisibilityTrigger struct {
	FieldID       string `json:"field" yaml:"field"`
	OptionID      string `json:"option" yaml:"option"`
	TargetSection string `json:"section" yaml:"section"`
}

// Field models a single question within a section.
type Field struct {
	ID           string            `json:"id" yaml:"id"`
	Label        string            `json:"label,omitempty" yaml:"label,omitempty"`
	Type         FieldType         `json:"type" yaml:"type"`
	Required     bool              `json:"required,omitempty" yaml:"required,omitempty"`
	Placeholder  string            `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Options      []Option          `json:"options,omitempty" yaml:"options,omitempty"`
	Condition    *Condition        `json:"condition,omitempty" yaml:"condition,omitempty"`
	SelectorRole string            `json:"selectorRole,omitempty" yaml:"selectorRole,omitempty"`
	OtherOption  string            `json:"otherOption,omitempty" yaml:"otherOption,omitempty"`
	Metadata     map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Option returns the option with the given id.
func (f Field) Option(id string) (Option, bool) {
	for _, opt := range f.Options {
		if opt.ID == id {
			return opt, true
		}
	}
	return Option{}, false
}

// DisplayLabel returns the authored label, falling back to a label derived
// from the field id.
func (f Field) DisplayLabel() string {
	if f.Label != "" {
		return f.Label
	}
	return DefaultLabeler(f.ID)
}

// Section is an ordered group of fields plus the container-level visibility
// descriptor. Sections flagged AlwaysVisible form the permanent floor of the
// active set and are never removed by triggers.
type Section struct {
	ID            string              `json:"id" yaml:"id"`
	Heading       string              `json:"heading,omitempty" yaml:"heading,omitempty"`
	AlwaysVisible bool                `json:"alwaysVisible,omitempty" yaml:"alwaysVisible,omitempty"`
	Fields        []Field             `json:"fields" yaml:"fields"`
	Triggers      []VisibilityTrigger `json:"triggers,omitempty" yaml:"triggers,omitempty"`
}

// Schema is the declarative form definition. Section order is significant:
// cascade insertion restores a newly-visible section to its authored index.
type Schema struct {
	ID       string    `json:"id" yaml:"id"`
	Title    string    `json:"title,omitempty" yaml:"title,omitempty"`
	Sections []Section `json:"sections" yaml:"sections"`
}

// Section returns the section with the given id.
func (s Schema) Section(id string) (Section, bool) {
	for _, section := range s.Sections {
		if section.ID == id {
			return section, true
		}
	}
	return Section{}, false
}

// SectionIndex returns the authored position of a section, or -1 when the id
// is unknown.
func (s Schema) SectionIndex(id string) int {
	for i, section := range s.Sections {
		if section.ID == id {
			return i
		}
	}
	return -1
}

// Field looks a field up across all sections.
func (s Schema) Field(id string) (Field, bool) {
	for _, section := range s.Sections {
		for _, field := range section.Fields {
			if field.ID == id {
				return field, true
			}
		}
	}
	return Field{}, false
}

// FieldSection returns the section that declares the given field.
func (s Schema) FieldSection(id string) (Section, bool) {
	for _, section := range s.Sections {
		for _, field := range section.Fields {
			if field.ID == id {
				return section, true
			}
		}
	}
	return Section{}, false
}

// Fields returns every field in authored order.
func (s Schema) Fields() []Field {
	var out []Field
	for _, section := range s.Sections {
		out = append(out, section.Fields...)
	}
	return out
}

// TriggersFor collects every trigger, across all sections, whose source is the
// given field.
func (s Schema) TriggersFor(fieldID string) []VisibilityTrigger {
	var out []VisibilityTrigger
	for _, section := range s.Sections {
		for _, trigger := range section.Triggers {
			if trigger.FieldID == fieldID {
				out = append(out, trigger)
			}
		}
	}
	return out
}
