// Package prompt holds the prompt library used for LLM calls. Prompts are
// JSON files loaded at runtime so wording can change without a rebuild.
package prompt

// PromptTemplate represents a reusable prompt with metadata
type PromptTemplate struct {
	ID             string           `json:"id"`                   // e.g. "memo.investment_memo"
	Name           string           `json:"name"`                 // Human-readable name
	Category       string           `json:"category"`             // Folder under prompts/
	Description    string           `json:"description"`          // Description of prompt purpose
	SystemPrompt   string           `json:"system_prompt"`        // The system prompt content
	UserPromptTmpl string           `json:"user_prompt_template"` // Go template for user prompt
	Variables      []PromptVariable `json:"variables"`            // Variables used in template
	Version        string           `json:"version"`
}

// PromptVariable defines a variable used in a prompt template
type PromptVariable struct {
	Name        string `json:"name"`
	Type        string `json:"type"` // string, float, ...
	Description string `json:"description"`
	Required    bool   `json:"required"`
}

// Known prompt identifiers.
const (
	MemoInvestment = "memo.investment_memo"
)
