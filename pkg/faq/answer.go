package faq

import (
	"strings"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-formflow/pkg/schema"
)

// RenderAnswer interpolates a pattern's answer body with the submission
// values so operators can write bodies like
// "Your {{ queryType }} enquiry goes to {{ grantTeam }}". Bodies without
// template markers are returned as-is. Rendering is best effort: a body that
// fails to parse or execute falls back to the raw text, since an unrendered
// answer beats no answer.
func RenderAnswer(pattern Pattern, answers schema.AnswerSet) string {
	body := pattern.Answer
	if !strings.Contains(body, "{{") && !strings.Contains(body, "{%") {
		return body
	}

	tpl, err := pongo2.FromString(body)
	if err != nil {
		return body
	}

	ctx := make(pongo2.Context, len(answers))
	for key, value := range answers {
		ctx[key] = value
	}

	rendered, err := tpl.Execute(ctx)
	if err != nil {
		return body
	}
	return rendered
}
