package prompt

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writePrompt(t *testing.T, base, rel, body string) {
	t.Helper()
	path := filepath.Join(base, "prompts", rel)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadFromDirectory(t *testing.T) {
	base := t.TempDir()
	writePrompt(t, base, "memo/investment_memo.json", `{
		"name": "Investment Memo",
		"system_prompt": "You are a Managing Director.",
		"user_prompt_template": "Acquirer: {{.AcquirerName}}"
	}`)
	writePrompt(t, base, "memo/notes.txt", "ignored")

	r := NewRegistry()
	if err := LoadFromDirectory(r, base); err != nil {
		t.Fatalf("LoadFromDirectory failed: %v", err)
	}
	if r.Count() != 1 {
		t.Fatalf("expected 1 prompt, got %d", r.Count())
	}

	pt, err := r.GetPrompt(MemoInvestment)
	if err != nil {
		t.Fatalf("expected %s, got error %v", MemoInvestment, err)
	}
	if pt.Category != "memo" {
		t.Errorf("expected category memo, got %s", pt.Category)
	}
}

func TestLoadFromDirectory_Errors(t *testing.T) {
	if err := LoadFromDirectory(NewRegistry(), t.TempDir()); err == nil {
		t.Errorf("expected error for missing prompts dir")
	}

	base := t.TempDir()
	writePrompt(t, base, "memo/broken.json", `{"name": `)
	if err := LoadFromDirectory(NewRegistry(), base); err == nil {
		t.Errorf("expected parse error")
	}
}

func TestLoadFromDirectory_ShippedPrompts(t *testing.T) {
	r := NewRegistry()
	if err := LoadFromDirectory(r, filepath.Join("..", "..", "..", "resources")); err != nil {
		t.Fatalf("shipped prompts failed to load: %v", err)
	}
	if _, err := r.GetPrompt(MemoInvestment); err != nil {
		t.Errorf("shipped library is missing %s", MemoInvestment)
	}
}

func TestRenderUserPrompt(t *testing.T) {
	pt := &PromptTemplate{ID: "t", UserPromptTmpl: `{{.Name}} at {{printf "%.2f" .Price}}`}
	out, err := RenderUserPrompt(pt, struct {
		Name  string
		Price float64
	}{"OmniCorp", 150})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if out != "OmniCorp at 150.00" {
		t.Errorf("unexpected output %q", out)
	}

	if _, err := RenderUserPrompt(pt, map[string]interface{}{"Name": "x"}); err == nil {
		t.Errorf("expected missing key error")
	}
	if _, err := RenderUserPrompt(&PromptTemplate{ID: "bad", UserPromptTmpl: "{{.Name"}, nil); err == nil || !strings.Contains(err.Error(), "parse") {
		t.Errorf("expected parse error, got %v", err)
	}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(&PromptTemplate{}); err == nil {
		t.Errorf("expected error for empty ID")
	}
	r.Register(&PromptTemplate{ID: "b.two"})
	r.Register(&PromptTemplate{ID: "a.one"})
	ids := r.ListPrompts()
	if len(ids) != 2 || ids[0] != "a.one" {
		t.Errorf("expected sorted ids, got %v", ids)
	}
	if _, err := r.GetPrompt("missing"); err == nil {
		t.Errorf("expected not found")
	}
}
