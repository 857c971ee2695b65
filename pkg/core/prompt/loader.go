package prompt

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

// LoadFromDirectory loads every prompt under baseDir/prompts into r.
//
//	baseDir/
//	  prompts/
//	    memo/
//	      investment_memo.json   -> "memo.investment_memo"
func LoadFromDirectory(r *Registry, baseDir string) error {
	dir := filepath.Join(baseDir, "prompts")
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return fmt.Errorf("prompts directory not found: %s", dir)
	}

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
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

		var pt PromptTemplate
		if err := json.Unmarshal(data, &pt); err != nil {
			return fmt.Errorf("failed to parse %s: %w", path, err)
		}
		if pt.ID == "" {
			pt.ID = idFromPath(path, dir)
		}
		if pt.Category == "" {
			pt.Category = strings.SplitN(pt.ID, ".", 2)[0]
		}

		if err := r.Register(&pt); err != nil {
			return fmt.Errorf("failed to register %s: %w", pt.ID, err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to load prompts: %w", err)
	}

	fmt.Printf("[PROMPT] Loaded %d prompts from %s\n", r.Count(), baseDir)
	return nil
}

// idFromPath maps "prompts/memo/investment_memo.json" to "memo.investment_memo".
func idFromPath(path string, baseDir string) string {
	relPath, _ := filepath.Rel(baseDir, path)
	relPath = strings.TrimSuffix(relPath, ".json")
	return strings.ReplaceAll(relPath, string(filepath.Separator), ".")
}

// RenderUserPrompt executes the user prompt template against vars.
// Missing keys are an error rather than "<no value>".
func RenderUserPrompt(pt *PromptTemplate, vars interface{}) (string, error) {
	if pt.UserPromptTmpl == "" {
		return "", nil
	}

	tmpl, err := template.New(pt.ID).Option("missingkey=error").Parse(pt.UserPromptTmpl)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, vars); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.String(), nil
}
