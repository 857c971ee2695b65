package llm

import (
	"context"
	"fmt"
	"os"
	"strings"

	"google.golang.org/genai"
)

const defaultGeminiModel = "gemini-3-flash-preview"

// GeminiProvider implements the Provider interface for Google's Gemini models.
type GeminiProvider struct {
	Model string // e.g. "gemini-2.5-flash"
}

// Ensure interface compliance
var _ Provider = (*GeminiProvider)(nil)

// GenerateResponse sends a generateContent request to the Gemini API using the official GenAI SDK.
// The key comes from options["api_key"], GEMINI_API_KEY or API_KEY, in that order.
func (p *GeminiProvider) GenerateResponse(ctx context.Context, prompt string, systemPrompt string, options map[string]interface{}) (string, error) {
	apiKey := resolveAPIKey(options, os.Getenv, "GEMINI_API_KEY", "API_KEY")
	if apiKey == "" {
		return "", fmt.Errorf("gemini: GEMINI_API_KEY not set: %w", ErrMissingAPIKey)
	}

	model := p.Model
	if model == "" {
		model = defaultGeminiModel
	}
	if val, ok := options["model"].(string); ok && val != "" {
		model = val
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create GenAI client: %w", err)
	}

	temperature := float32(0.4)
	if val, ok := options["temperature"].(float64); ok {
		temperature = float32(val)
	}
	config := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(temperature),
	}

	if val, ok := options["response_format"].(map[string]interface{}); ok && val["type"] == "json_object" {
		config.ResponseMIMEType = "application/json"
	}

	if systemPrompt != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{
				{Text: systemPrompt},
			},
		}
	}

	result, err := client.Models.GenerateContent(
		ctx,
		model,
		genai.Text(prompt),
		config,
	)
	if err != nil {
		return "", fmt.Errorf("gemini generation failed: %w", err)
	}

	return strings.TrimSpace(result.Text()), nil
}

func (p *GeminiProvider) AdaptInstructions(raw string) string {
	return raw
}
