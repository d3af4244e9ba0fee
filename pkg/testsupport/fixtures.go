// Package testsupport holds fixture helpers shared by package tests.
package testsupport

import (
	"testing"

	"github.com/goliatone/go-formflow/pkg/faq"
	"github.com/goliatone/go-formflow/pkg/schema"
)

// MustSchema parses an inline YAML schema document, failing the test on any
// parse or validation error.
func MustSchema(t *testing.T, src string) schema.Schema {
	t.Helper()

	parsed, err := schema.Parse([]byte(src), "fixture.yaml")
	if err != nil {
		t.Fatalf("parse schema fixture: %v", err)
	}
	return parsed
}

// MustPatterns parses an inline YAML pattern document, failing the test on
// error.
func MustPatterns(t *testing.T, src string) []faq.Pattern {
	t.Helper()

	parsed, err := faq.ParsePatterns([]byte(src), "fixture.yaml")
	if err != nil {
		t.Fatalf("parse pattern fixture: %v", err)
	}
	return parsed
}
