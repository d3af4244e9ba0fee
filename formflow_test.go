package formflow

import (
	"testing"
	"testing/fstest"
)

func TestEndToEndEnquiryFlow(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"forms/enquiry.yaml": {Data: []byte(`
id: enquiry
sections:
  - id: main
    alwaysVisible: true
    fields:
      - id: a
        type: radio
        options:
          - {id: yes, value: "yes"}
          - {id: no, value: "no"}
      - id: b
        type: text
        condition: {dependsOn: a, showWhen: ["yes"]}
`)},
		"faq/patterns.yaml": {Data: []byte(`
- name: affirmative
  answer: "Recorded {{ b }}."
  sections:
    - heading: Main
      fields:
        - {label: A, selected: "yes"}
`)},
	}

	library, err := LoadSchemas(fsys)
	if err != nil {
		t.Fatalf("LoadSchemas returned error: %v", err)
	}
	formSchema, ok := library.Schema("enquiry")
	if !ok {
		t.Fatalf("enquiry schema missing")
	}
	patterns, err := LoadPatterns(fsys)
	if err != nil {
		t.Fatalf("LoadPatterns returned error: %v", err)
	}

	sess := NewSession(formSchema)

	sess.SetAnswer("a", "no")
	sess.SetAnswer("b", "stale")
	if sess.FieldVisible("b") {
		t.Fatalf("b should be hidden while a=no")
	}
	if _, stored := sess.Answer("b"); stored {
		t.Fatalf("hidden field kept its answer")
	}

	sess.SetAnswer("a", "yes")
	if !sess.FieldVisible("b") {
		t.Fatalf("b should be visible after a=yes")
	}
	sess.SetAnswer("b", "details")

	results := MatchFAQ(patterns, sess.Answers(), 0)
	if len(results) != 1 || results[0].Score != 100 {
		t.Fatalf("expected one full match, got %+v", results)
	}
}
