package schema

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
)

const sampleSchema = `
id: grant-enquiry
title: Grant Enquiry
sections:
  - id: basics
    heading: Basics
    alwaysVisible: true
    fields:
      - id: queryType
        label: Query Type
        type: select
        selectorRole: query-type
        options:
          - {id: simple, value: Simple, label: Simple}
          - {id: complex, value: Complex, label: Complex}
    triggers:
      - {field: queryType, option: complex, section: details}
  - id: details
    heading: Details
    fields:
      - id: grantTeam
        type: select
        condition:
          dependsOn: queryType
          showWhen: [Complex]
        options:
          - {id: arcd, value: ARC-D, label: ARC-D}
`

func TestParseYAMLSchema(t *testing.T) {
	t.Parallel()

	parsed, err := Parse([]byte(sampleSchema), "grant.yaml")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	if parsed.ID != "grant-enquiry" {
		t.Fatalf("schema id = %q", parsed.ID)
	}
	if len(parsed.Sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(parsed.Sections))
	}

	wantTriggers := []VisibilityTrigger{
		{FieldID: "queryType", OptionID: "complex", TargetSection: "details"},
	}
	if diff := cmp.Diff(wantTriggers, parsed.Sections[0].Triggers); diff != "" {
		t.Fatalf("triggers mismatch (-want +got):\n%s", diff)
	}

	field, ok := parsed.Field("grantTeam")
	if !ok {
		t.Fatalf("field grantTeam not found")
	}
	if field.Condition == nil || field.Condition.DependsOn != "queryType" {
		t.Fatalf("condition not parsed: %+v", field.Condition)
	}
}

func TestParseJSONSchema(t *testing.T) {
	t.Parallel()

	src := `{"id":"tiny","sections":[{"id":"only","fields":[{"id":"name","type":"text"}]}]}`
	parsed, err := Parse([]byte(src), "tiny.json")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if _, ok := parsed.Field("name"); !ok {
		t.Fatalf("field name not found in JSON schema")
	}
}

func TestParseRejectsDuplicateFieldIDs(t *testing.T) {
	t.Parallel()

	src := `
id: dup
sections:
  - id: a
    fields:
      - {id: name, type: text}
  - id: b
    fields:
      - {id: name, type: text}
`
	if _, err := Parse([]byte(src), "dup.yaml"); err == nil || !strings.Contains(err.Error(), "duplicate field") {
		t.Fatalf("expected duplicate field error, got %v", err)
	}
}

func TestParseRejectsSelfDependency(t *testing.T) {
	t.Parallel()

	src := `
id: selfdep
sections:
  - id: a
    fields:
      - id: loop
        type: text
        condition: {dependsOn: loop, showWhen: [x]}
`
	if _, err := Parse([]byte(src), "selfdep.yaml"); err == nil || !strings.Contains(err.Error(), "depends on itself") {
		t.Fatalf("expected self-dependency error, got %v", err)
	}
}

func TestLoadFSCollectsSchemas(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"forms/grant.yaml": {Data: []byte(sampleSchema)},
		"forms/tiny.json":  {Data: []byte(`{"id":"tiny","sections":[]}`)},
		"notes/readme.md":  {Data: []byte("ignored")},
	}

	library, err := LoadFS(fsys)
	if err != nil {
		t.Fatalf("LoadFS returned error: %v", err)
	}
	if library.Len() != 2 {
		t.Fatalf("expected 2 schemas, got %d", library.Len())
	}
	if _, ok := library.Schema("grant-enquiry"); !ok {
		t.Fatalf("grant-enquiry missing from library")
	}
}

func TestLoadFSRejectsDuplicateSchemaIDs(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"a.yaml": {Data: []byte("id: same\nsections: []\n")},
		"b.yaml": {Data: []byte("id: same\nsections: []\n")},
	}
	if _, err := LoadFS(fsys); err == nil || !strings.Contains(err.Error(), "duplicate schema") {
		t.Fatalf("expected duplicate schema error, got %v", err)
	}
}
