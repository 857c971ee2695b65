package llm

import (
	"context"
	"errors"
)

// ErrMissingAPIKey is wrapped by providers that have no credential configured.
var ErrMissingAPIKey = errors.New("api key missing")

// Provider is the interface for all LLM providers.
type Provider interface {
	GenerateResponse(ctx context.Context, prompt string, systemPrompt string, options map[string]interface{}) (string, error)
	// AdaptInstructions transforms raw instructions into model-specific formats
	AdaptInstructions(rawInstructions string) string
}

// resolveAPIKey returns the api_key option, else the first non-empty env var.
func resolveAPIKey(options map[string]interface{}, getenv func(string) string, envNames ...string) string {
	if val, ok := options["api_key"].(string); ok && val != "" {
		return val
	}
	for _, name := range envNames {
		if v := getenv(name); v != "" {
			return v
		}
	}
	return ""
}

// APIKeyEnv names the environment variable a built-in provider reads its key
// from, or "" for an unknown provider.
func APIKeyEnv(provider string) string {
	switch provider {
	case "gemini":
		return "GEMINI_API_KEY"
	case "deepseek":
		return "DEEPSEEK_API_KEY"
	case "qwen":
		return "DASHSCOPE_API_KEY"
	}
	return ""
}
