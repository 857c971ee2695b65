package utils

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

var renderer = goldmark.New(goldmark.WithExtensions(extension.GFM))

// CleanMarkdown strips outer code fences some models wrap their answer in.
func CleanMarkdown(input string) string {
	cleaned := strings.TrimSpace(input)

	if strings.HasPrefix(cleaned, "```markdown") && strings.HasSuffix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```markdown")
		cleaned = strings.TrimSuffix(cleaned, "```")
		cleaned = strings.TrimSpace(cleaned)
	} else if strings.HasPrefix(cleaned, "```") && strings.HasSuffix(cleaned, "```") && len(cleaned) >= 6 {
		cleaned = strings.TrimPrefix(cleaned, "```")
		cleaned = strings.TrimSuffix(cleaned, "```")
		cleaned = strings.TrimSpace(cleaned)
	}

	return cleaned
}

// ValidateMarkdown checks that the input parses into a document with content.
func ValidateMarkdown(input string) bool {
	doc := renderer.Parser().Parse(text.NewReader([]byte(input)))
	return doc != nil && doc.HasChildren()
}

// RenderMarkdown converts markdown to HTML (GitHub flavored: tables, lists, strikethrough).
func RenderMarkdown(input string) (string, error) {
	var buf bytes.Buffer
	if err := renderer.Convert([]byte(input), &buf); err != nil {
		return "", fmt.Errorf("markdown render failed: %w", err)
	}
	return buf.String(), nil
}
