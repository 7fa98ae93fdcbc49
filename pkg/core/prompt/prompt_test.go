package prompt

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRegistryRegisterAndGet(t *testing.T) {
	r := Get()
	r.Clear()

	if err := r.Register(&Template{ID: "explain.cost_explanation", SystemPrompt: "tutor"}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if err := r.Register(&Template{}); err == nil {
		t.Errorf("Expected error for empty ID")
	}

	sys, err := r.GetSystemPrompt("explain.cost_explanation")
	if err != nil || sys != "tutor" {
		t.Errorf("Expected system prompt back, got %q err=%v", sys, err)
	}
	if _, err := r.GetPrompt("missing.id"); err == nil {
		t.Errorf("Expected miss for unknown prompt")
	}
}

func TestTemplateRender(t *testing.T) {
	pt := &Template{
		ID:             "advisor.labour_advice",
		UserPromptTmpl: "Capital: {{.CapitalName}}\n{{.CostTable}}",
	}
	out, err := pt.Render(map[string]interface{}{
		"CapitalName": "Standard Oven",
		"CostTable":   "1 | 10",
	})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if out != "Capital: Standard Oven\n1 | 10" {
		t.Errorf("Unexpected render output: %q", out)
	}
}

func TestLoadFromDirectory(t *testing.T) {
	dir := t.TempDir()
	promptDir := filepath.Join(dir, "prompts", "explain")
	if err := os.MkdirAll(promptDir, 0o755); err != nil {
		t.Fatal(err)
	}
	// No id field: it derives from the path.
	data := []byte(`{"system_prompt": "tutor", "user_prompt_template": "{{.CostTable}}"}`)
	if err := os.WriteFile(filepath.Join(promptDir, "cost_explanation.json"), data, 0o644); err != nil {
		t.Fatal(err)
	}

	Get().Clear()
	if err := LoadFromDirectory(dir); err != nil {
		t.Fatalf("LoadFromDirectory failed: %v", err)
	}
	pt, err := Get().GetPrompt("explain.cost_explanation")
	if err != nil {
		t.Fatalf("Expected path-derived ID, got %v", err)
	}
	if pt.Category != "explain" {
		t.Errorf("Expected category explain, got %q", pt.Category)
	}
}
