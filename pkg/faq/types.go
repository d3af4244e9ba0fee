// Package faq matches completed form submissions against operator-authored
// answer patterns. A pattern is a partial snapshot of expected selections;
// the matcher scores how much of that snapshot a submission covers so the
// best candidate can be surfaced as an automated answer before escalating to
// a human.
package faq

// PatternField records one expected selection inside a pattern. Selected
// holds the option label the operator picked; non-string values are coerced
// during extraction rather than rejected.
type PatternField struct {
	Label    string `json:"label" yaml:"label"`
	Selected any    `json:"selected" yaml:"selected"`
}

// PatternSection groups expected selections under the section heading the
// operator authored them in. Headings and field labels are preview material
// for the admin UI; matching only consumes the selected option labels.
type PatternSection struct {
	Heading string         `json:"heading" yaml:"heading"`
	Fields  []PatternField `json:"fields" yaml:"fields"`
}

// Pattern is one operator-authored FAQ entry: the expected selections plus
// the canned answer body surfaced when the pattern wins. Selections are
// implicitly ANDed; the score reflects how many of them the submission
// matched. Patterns are read-only to the matcher.
type Pattern struct {
	Name     string           `json:"name,omitempty" yaml:"name,omitempty"`
	Answer   string           `json:"answer" yaml:"answer"`
	Sections []PatternSection `json:"sections" yaml:"sections"`
}

// MatchResult is the derived outcome of scoring one pattern against one
// submission. It is recomputed per submission and never stored.
type MatchResult struct {
	Pattern       Pattern
	Score         float64
	MatchedTokens []string
}

// Entry is one normalized submission row: the lower-cased field name and the
// lower-cased string forms of its value(s).
type Entry struct {
	Key    string
	Values []string
}
