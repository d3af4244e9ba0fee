// Package openapi derives formflow schemas from OpenAPI documents, so teams
// that already describe their intake endpoints can reuse those documents as
// form definitions. Conditions, section placement, triggers, and selector
// roles ride along in the x-formflow vendor extension.
package openapi

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formflow/pkg/schema"
)

// ExtensionKey is the vendor extension namespace consumed by this adapter.
const ExtensionKey = "x-formflow"

const defaultSectionID = "form"

// FormSchema loads an OpenAPI document from raw bytes and derives a form
// schema from the JSON request body of the identified operation. Properties
// become fields; enum values become options; x-formflow extensions place
// fields into sections and attach conditions, triggers, and selector roles.
func FormSchema(ctx context.Context, data []byte, operationID string) (schema.Schema, error) {
	if len(data) == 0 {
		return schema.Schema{}, errors.New("openapi: document payload is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(data)
	if err != nil {
		return schema.Schema{}, fmt.Errorf("openapi: load document: %w", err)
	}

	operation, err := findOperation(spec, operationID)
	if err != nil {
		return schema.Schema{}, err
	}

	body := requestSchema(operation)
	if body == nil || len(body.Properties) == 0 {
		return schema.Schema{}, fmt.Errorf("openapi: operation %q has no object request body", operationID)
	}

	return buildSchema(operationID, operation, body), nil
}

func findOperation(spec *openapi3.T, operationID string) (*openapi3.Operation, error) {
	if spec.Paths == nil {
		return nil, errors.New("openapi: document does not contain any paths")
	}
	for _, item := range spec.Paths.Map() {
		if item == nil {
			continue
		}
		for _, op := range []*openapi3.Operation{
			item.Get, item.Put, item.Post, item.Delete, item.Patch,
		} {
			if op != nil && op.OperationID == operationID {
				return op, nil
			}
		}
	}
	return nil, fmt.Errorf("openapi: operation %q not found", operationID)
}

func requestSchema(operation *openapi3.Operation) *openapi3.Schema {
	if operation.RequestBody == nil || operation.RequestBody.Value == nil {
		return nil
	}
	content := operation.RequestBody.Value.Content
	for _, mediaType := range []string{"application/json", "application/x-www-form-urlencoded", "multipart/form-data"} {
		if mt, ok := content[mediaType]; ok && mt.Schema != nil {
			return mt.Schema.Value
		}
	}
	for _, mt := range content {
		if mt.Schema != nil {
			return mt.Schema.Value
		}
	}
	return nil
}

type property struct {
	name  string
	order int
	ref   *openapi3.Schema
	ext   map[string]any
}

func buildSchema(operationID string, operation *openapi3.Operation, body *openapi3.Schema) schema.Schema {
	required := make(map[string]struct{}, len(body.Required))
	for _, name := range body.Required {
		required[name] = struct{}{}
	}

	properties := make([]property, 0, len(body.Properties))
	for name, ref := range body.Properties {
		if ref == nil || ref.Value == nil {
			continue
		}
		ext := extensionMap(ref.Value.Extensions)
		properties = append(properties, property{
			name:  name,
			order: extInt(ext, "order"),
			ref:   ref.Value,
			ext:   ext,
		})
	}
	sort.SliceStable(properties, func(i, j int) bool {
		if properties[i].order != properties[j].order {
			return properties[i].order < properties[j].order
		}
		return properties[i].name < properties[j].name
	})

	out := schema.Schema{
		ID:    operationID,
		Title: strings.TrimSpace(operation.Summary),
	}
	sectionAt := make(map[string]int)

	for _, prop := range properties {
		sectionID := extString(prop.ext, "section")
		if sectionID == "" {
			sectionID = defaultSectionID
		}

		idx, ok := sectionAt[sectionID]
		if !ok {
			idx = len(out.Sections)
			sectionAt[sectionID] = idx
			out.Sections = append(out.Sections, schema.Section{
				ID:            sectionID,
				Heading:       extString(prop.ext, "heading"),
				AlwaysVisible: extBool(prop.ext, "alwaysVisible"),
			})
		} else {
			if heading := extString(prop.ext, "heading"); heading != "" && out.Sections[idx].Heading == "" {
				out.Sections[idx].Heading = heading
			}
			if extBool(prop.ext, "alwaysVisible") {
				out.Sections[idx].AlwaysVisible = true
			}
		}

		_, isRequired := required[prop.name]
		field := buildField(prop, isRequired)
		out.Sections[idx].Fields = append(out.Sections[idx].Fields, field)
		out.Sections[idx].Triggers = append(out.Sections[idx].Triggers, buildTriggers(prop)...)
	}
	return out
}

func buildField(prop property, required bool) schema.Field {
	field := schema.Field{
		ID:           prop.name,
		Label:        extString(prop.ext, "label"),
		Type:         fieldType(prop),
		Required:     required,
		SelectorRole: extString(prop.ext, "selectorRole"),
		OtherOption:  extString(prop.ext, "otherOption"),
	}
	if field.Label == "" {
		field.Label = strings.TrimSpace(prop.ref.Title)
	}

	field.Options = buildOptions(prop)

	if dependsOn := extString(prop.ext, "dependsOn"); dependsOn != "" {
		field.Condition = &schema.Condition{
			DependsOn: dependsOn,
			ShowWhen:  extStrings(prop.ext, "showWhen"),
		}
	}
	return field
}

func buildOptions(prop property) []schema.Option {
	enum := prop.ref.Enum
	if len(enum) == 0 && prop.ref.Items != nil && prop.ref.Items.Value != nil {
		enum = prop.ref.Items.Value.Enum
	}
	if len(enum) == 0 {
		return nil
	}
	options := make([]schema.Option, 0, len(enum))
	for _, raw := range enum {
		value := strings.TrimSpace(fmt.Sprint(raw))
		if value == "" {
			continue
		}
		options = append(options, schema.Option{ID: value, Value: value, Label: value})
	}
	return options
}

func buildTriggers(prop property) []schema.VisibilityTrigger {
	raw, ok := prop.ext["triggers"].([]any)
	if !ok {
		return nil
	}
	var triggers []schema.VisibilityTrigger
	for _, item := range raw {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}
		trigger := schema.VisibilityTrigger{
			FieldID:       prop.name,
			OptionID:      extString(entry, "option"),
			TargetSection: extString(entry, "section"),
		}
		if trigger.OptionID == "" || trigger.TargetSection == "" {
			continue
		}
		triggers = append(triggers, trigger)
	}
	return triggers
}

func fieldType(prop property) schema.FieldType {
	if control := extString(prop.ext, "control"); control != "" {
		return schema.FieldType(control)
	}

	switch firstType(prop.ref.Type) {
	case "boolean":
		return schema.FieldTypeCheckbox
	case "array":
		return schema.FieldTypeMultiSelect
	default:
		if len(prop.ref.Enum) > 0 {
			return schema.FieldTypeSelect
		}
		switch prop.ref.Format {
		case "date", "date-time":
			return schema.FieldTypeDate
		case "binary":
			return schema.FieldTypeFile
		}
		return schema.FieldTypeText
	}
}

func firstType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	values := types.Slice()
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

// extensionMap pulls the x-formflow payload out of a schema's extensions.
func extensionMap(extensions map[string]any) map[string]any {
	if len(extensions) == 0 {
		return nil
	}
	mapped, ok := extensions[ExtensionKey].(map[string]any)
	if !ok {
		return nil
	}
	return mapped
}

func extString(ext map[string]any, key string) string {
	if ext == nil {
		return ""
	}
	value, ok := ext[key].(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(value)
}

func extBool(ext map[string]any, key string) bool {
	if ext == nil {
		return false
	}
	value, ok := ext[key].(bool)
	return ok && value
}

func extInt(ext map[string]any, key string) int {
	if ext == nil {
		return 0
	}
	switch v := ext[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	default:
		return 0
	}
}

func extStrings(ext map[string]any, key string) []string {
	if ext == nil {
		return nil
	}
	raw, ok := ext[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		value := strings.TrimSpace(fmt.Sprint(item))
		if value != "" {
			out = append(out, value)
		}
	}
	return out
}
