package prompt

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LoadFromDirectory loads all prompt JSON files from baseDir/prompts.
// Expected structure:
//
//	baseDir/
//	  prompts/
//	    explain/
//	      cost_explanation.json
//	    advisor/
//	      labour_advice.json
func LoadFromDirectory(baseDir string) error {
	registry := Get()
	promptDir := filepath.Join(baseDir, "prompts")
	if _, err := os.Stat(promptDir); os.IsNotExist(err) {
		return fmt.Errorf("prompts directory not found: %s", promptDir)
	}

	err := filepath.Walk(promptDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || filepath.Ext(path) != ".json" {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		var t Template
		if err := json.Unmarshal(data, &t); err != nil {
			return fmt.Errorf("failed to parse %s: %w", path, err)
		}

		// ID and category default from the path:
		// prompts/explain/cost_explanation.json -> explain.cost_explanation
		if t.ID == "" {
			rel, _ := filepath.Rel(promptDir, path)
			rel = strings.TrimSuffix(rel, ".json")
			t.ID = strings.ReplaceAll(rel, string(filepath.Separator), ".")
		}
		if t.Category == "" {
			if i := strings.IndexByte(t.ID, '.'); i > 0 {
				t.Category = t.ID[:i]
			}
		}

		return registry.Register(&t)
	})
	if err != nil {
		return fmt.Errorf("failed to load prompts: %w", err)
	}

	fmt.Printf("[PROMPT] Loaded %d prompts from %s\n", registry.Count(), baseDir)
	return nil
}
