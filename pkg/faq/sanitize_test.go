package faq

import (
	"strings"
	"testing"
)

func TestSanitizeAnswerStripsScripts(t *testing.T) {
	t.Parallel()

	raw := `<p>Contact the <b>ARC-D</b> desk.</p><script>alert("x")</script>`
	got := SanitizeAnswer(raw)

	if strings.Contains(got, "<script") || strings.Contains(got, "alert") {
		t.Fatalf("script survived sanitization: %q", got)
	}
	if !strings.Contains(got, "<b>ARC-D</b>") {
		t.Fatalf("basic formatting should survive: %q", got)
	}
}

func TestSanitizeAnswerStripsEventHandlers(t *testing.T) {
	t.Parallel()

	got := SanitizeAnswer(`<a href="https://example.org" onclick="steal()">docs</a>`)
	if strings.Contains(got, "onclick") {
		t.Fatalf("event handler survived sanitization: %q", got)
	}
	if !strings.Contains(got, "example.org") {
		t.Fatalf("link target should survive: %q", got)
	}
}

func TestSanitizeAnswerEmptyInput(t *testing.T) {
	t.Parallel()

	if got := SanitizeAnswer("   "); got != "" {
		t.Fatalf("expected empty result, got %q", got)
	}
}
