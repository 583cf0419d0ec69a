package engine

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EnsureKnowledgeFile writes the default disease/symptom table to the given
// path when the file does not exist yet. This gives operators a starting
// point for editing the candidate set outside of the binary.
func EnsureKnowledgeFile(path string, entries []KnowledgeEntry) error {
	clean := strings.TrimSpace(path)
	if clean == "" {
		return nil
	}
	clean = filepath.Clean(clean)
	if _, err := os.Stat(clean); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("stat knowledge file: %w", err)
	}

	dir := filepath.Dir(clean)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create knowledge dir: %w", err)
		}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encode knowledge: %w", err)
	}
	if err := os.WriteFile(clean, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write knowledge file: %w", err)
	}
	return nil
}

// LoadKnowledge returns the disease/symptom table. When the path is empty or
// loading fails the built-in defaults are returned. The boolean indicates
// whether a custom file was successfully loaded.
func LoadKnowledge(path string) ([]KnowledgeEntry, bool, error) {
	defaults := DefaultKnowledge()

	clean := strings.TrimSpace(path)
	if clean == "" {
		return defaults, false, nil
	}
	data, err := os.ReadFile(filepath.Clean(clean))
	if err != nil {
		return defaults, false, err
	}
	var entries []KnowledgeEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return defaults, false, err
	}
	cleaned := make([]KnowledgeEntry, 0, len(entries))
	for _, e := range entries {
		if strings.TrimSpace(e.Disease) == "" || len(e.Symptoms) == 0 {
			continue
		}
		cleaned = append(cleaned, e)
	}
	if len(cleaned) == 0 {
		return defaults, false, nil
	}
	return cleaned, true, nil
}
