package utils

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestCleanMarkdown(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"```markdown\n## Title\nbody\n```", "## Title\nbody"},
		{"```\n## Title\n```", "## Title"},
		{"  ## Plain  ", "## Plain"},
	}
	for _, tt := range tests {
		if got := CleanMarkdown(tt.in); got != tt.want {
			t.Errorf("CleanMarkdown(%q) expected %q, got %q", tt.in, tt.want, got)
		}
	}
}

func TestRenderMarkdown(t *testing.T) {
	html, err := RenderMarkdown("## Financial Impact\n\n- accretive\n- **0.84%**")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"<h2>Financial Impact</h2>", "<li>accretive</li>", "<strong>0.84%</strong>"} {
		if !strings.Contains(html, want) {
			t.Errorf("expected %q in %q", want, html)
		}
	}
	if !ValidateMarkdown("## Risk Factors") {
		t.Errorf("expected heading to validate")
	}
	if ValidateMarkdown("") {
		t.Errorf("expected empty input to fail validation")
	}
}

type sample struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

func TestLenientUnmarshal(t *testing.T) {
	inputs := map[string]string{
		"json":   `{"name": "OmniCorp", "price": 150}`,
		"hjson":  "{\n  # acquirer\n  name: OmniCorp\n  price: 150\n}",
		"repair": `{"name": "OmniCorp", "price": 150`,
	}
	for label, in := range inputs {
		var s sample
		if _, err := LenientUnmarshal([]byte(in), &s); err != nil {
			t.Errorf("%s: unexpected error: %v", label, err)
			continue
		}
		if s.Name != "OmniCorp" || s.Price != 150 {
			t.Errorf("%s: unexpected value %+v", label, s)
		}
	}
}

func TestLenientUnmarshal_ReturnsStrictJSON(t *testing.T) {
	var s struct {
		Name string `json:"name"`
	}
	for label, in := range map[string]string{
		"json":   `{"name": "OmniCorp"}`,
		"hjson":  "{\n  # acquirer\n  name: OmniCorp\n}",
		"repair": `{"name": "OmniCorp"`,
	} {
		out, err := LenientUnmarshal([]byte(in), &s)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", label, err)
			continue
		}
		if !json.Valid([]byte(out)) {
			t.Errorf("%s: expected strict JSON, got %q", label, out)
		}
	}
}
