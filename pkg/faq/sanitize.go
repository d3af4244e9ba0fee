package faq

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	answerPolicyOnce sync.Once
	answerPolicy     *bluemonday.Policy
)

// SanitizeAnswer strips unsafe markup from an operator-authored answer body
// before it is surfaced to an end user. Basic formatting and links survive;
// scripts and event handlers do not.
func SanitizeAnswer(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(answerSanitizer().Sanitize(trimmed))
}

func answerSanitizer() *bluemonday.Policy {
	answerPolicyOnce.Do(func() {
		policy := bluemonday.UGCPolicy()
		policy.RequireNoFollowOnLinks(true)
		policy.AllowAttrs("class").OnElements("p", "span", "div", "a", "ul", "ol", "li")
		answerPolicy = policy
	})
	return answerPolicy
}
