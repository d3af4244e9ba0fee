package schema

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Library keeps parsed schemas keyed by id. It is safe for concurrent readers
// when treated as immutable after construction.
type Library struct {
	schemas map[string]Schema
	order   []string
}

// Schema looks a schema up by id.
func (l *Library) Schema(id string) (Schema, bool) {
	if l == nil || l.schemas == nil {
		return Schema{}, false
	}
	s, ok := l.schemas[id]
	return s, ok
}

// IDs returns the schema ids in load order.
func (l *Library) IDs() []string {
	if l == nil {
		return nil
	}
	return append([]string(nil), l.order...)
}

// Len reports the number of loaded schemas.
func (l *Library) Len() int {
	if l == nil {
		return 0
	}
	return len(l.schemas)
}

// LoadFS walks the provided filesystem and parses JSON/YAML schema documents.
// When fsys is nil or no schema files are present, the returned library is
// empty. Duplicate schema ids across files are an error.
func LoadFS(fsys fs.FS) (*Library, error) {
	library := &Library{schemas: make(map[string]Schema)}
	if fsys == nil {
		return library, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() {
			return nil
		}
		if !isSchemaFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("schema: read %s: %w", path, err)
		}

		parsed, err := Parse(data, path)
		if err != nil {
			return err
		}
		if _, exists := library.schemas[parsed.ID]; exists {
			return fmt.Errorf("schema: duplicate schema %q (file %s)", parsed.ID, path)
		}
		library.schemas[parsed.ID] = parsed
		library.order = append(library.order, parsed.ID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return library, nil
}

// Parse decodes one schema document. JSON payloads are detected by file
// extension; everything else goes through the YAML decoder, which also
// accepts JSON.
func Parse(data []byte, path string) (Schema, error) {
	var parsed Schema
	if strings.EqualFold(filepath.Ext(path), ".json") {
		if err := json.Unmarshal(data, &parsed); err != nil {
			return Schema{}, fmt.Errorf("schema: parse %s: %w", path, err)
		}
	} else {
		if err := yaml.Unmarshal(data, &parsed); err != nil {
			return Schema{}, fmt.Errorf("schema: parse %s: %w", path, err)
		}
	}
	if err := validate(parsed, path); err != nil {
		return Schema{}, err
	}
	return parsed, nil
}

// validate enforces authoring-time well-formedness the loaders can catch
// cheaply: ids must be present and unique. Dangling condition or trigger
// references are tolerated here; resolution treats them as never satisfied.
func validate(s Schema, path string) error {
	if strings.TrimSpace(s.ID) == "" {
		return fmt.Errorf("schema: file %s defines an empty schema id", path)
	}

	sectionIDs := make(map[string]struct{}, len(s.Sections))
	fieldIDs := make(map[string]struct{})
	for _, section := range s.Sections {
		if strings.TrimSpace(section.ID) == "" {
			return fmt.Errorf("schema: %s: section with empty id (file %s)", s.ID, path)
		}
		if _, dup := sectionIDs[section.ID]; dup {
			return fmt.Errorf("schema: %s: duplicate section %q (file %s)", s.ID, section.ID, path)
		}
		sectionIDs[section.ID] = struct{}{}

		for _, field := range section.Fields {
			if strings.TrimSpace(field.ID) == "" {
				return fmt.Errorf("schema: %s: section %q has a field with empty id (file %s)", s.ID, section.ID, path)
			}
			if _, dup := fieldIDs[field.ID]; dup {
				return fmt.Errorf("schema: %s: duplicate field %q (file %s)", s.ID, field.ID, path)
			}
			fieldIDs[field.ID] = struct{}{}

			if field.Condition != nil && field.Condition.DependsOn == field.ID {
				return fmt.Errorf("schema: %s: field %q depends on itself (file %s)", s.ID, field.ID, path)
			}
		}
	}
	return nil
}

func isSchemaFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
