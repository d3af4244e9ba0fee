package faq

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFS walks the provided filesystem and parses every JSON/YAML pattern
// file into one library, preserving file order and in-file authoring order.
// Pattern libraries come from a storage collaborator; this loader is the
// filesystem-backed reference implementation of that contract.
func LoadFS(fsys fs.FS) ([]Pattern, error) {
	if fsys == nil {
		return nil, nil
	}

	var patterns []Pattern
	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isPatternFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("faq: read %s: %w", path, err)
		}
		parsed, err := ParsePatterns(data, path)
		if err != nil {
			return err
		}
		patterns = append(patterns, parsed...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return patterns, nil
}

// ParsePatterns decodes one pattern document, a list of patterns.
func ParsePatterns(data []byte, path string) ([]Pattern, error) {
	var parsed []Pattern
	if strings.EqualFold(filepath.Ext(path), ".json") {
		if err := json.Unmarshal(data, &parsed); err != nil {
			return nil, fmt.Errorf("faq: parse %s: %w", path, err)
		}
	} else {
		if err := yaml.Unmarshal(data, &parsed); err != nil {
			return nil, fmt.Errorf("faq: parse %s: %w", path, err)
		}
	}
	return parsed, nil
}

func isPatternFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
