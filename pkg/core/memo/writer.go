package memo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"merger_maestro/pkg/core/llm"
	"merger_maestro/pkg/core/merger"
	"merger_maestro/pkg/core/prompt"
	"merger_maestro/pkg/core/utils"

	"github.com/google/uuid"
)

// Placeholder texts shown instead of a generated memo.
const (
	MissingKeyText = "## API Key Missing\n\nPlease ensure the provider's API key is set to generate the AI Investment Memo."
	ErrorText      = "## Memo Unavailable\n\nError generating investment memo. Please check API Key and quotas."
	EmptyText      = "## Memo Unavailable\n\nUnable to generate analysis."
)

type Status string

const (
	StatusOK         Status = "ok"
	StatusMissingKey Status = "missing_key"
	StatusError      Status = "error"
	StatusEmpty      Status = "empty"
)

const DefaultTimeout = 60 * time.Second

// Memo is the outcome of one generation request.
type Memo struct {
	ID          string    `json:"id"`
	Fingerprint string    `json:"fingerprint"` // CacheKey of inputs, provider, model and prompt version
	Status      Status    `json:"status"`
	Markdown    string    `json:"markdown"`
	HTML        string    `json:"html"`
	Provider    string    `json:"provider,omitempty"`
	Cached      bool      `json:"cached"`
	GeneratedAt time.Time `json:"generated_at"`
}

// Cache stores successfully generated memos by CacheKey.
// Get returns nil, nil on a miss.
type Cache interface {
	Get(ctx context.Context, fingerprint string) (*Memo, error)
	Save(ctx context.Context, m *Memo) error
}

// Writer drafts memos. Provider is required; the other fields are optional.
type Writer struct {
	Provider     llm.Provider
	ProviderName string
	Options      map[string]interface{}
	Prompts      *prompt.Registry
	Cache        Cache
	Timeout      time.Duration
}

func NewWriter(provider llm.Provider, cache Cache) *Writer {
	return &Writer{
		Provider: provider,
		Cache:    cache,
		Timeout:  DefaultTimeout,
	}
}

// Generate returns a memo for the simulated deal. It never returns an error:
// collaborator failures come back as a placeholder memo with a non-ok Status.
func (w *Writer) Generate(ctx context.Context, acquirer, target merger.CompanyMetrics, deal merger.DealStructure, res merger.SimulationResult) *Memo {
	model, _ := w.Options["model"].(string)
	fp := CacheKey(Fingerprint(acquirer, target, deal), w.ProviderName, model, selectPrompt(w.Prompts).Version)

	if w.Cache != nil {
		cached, err := w.Cache.Get(ctx, fp)
		if err != nil {
			fmt.Printf("[WARNING] memo cache lookup failed: %v\n", err)
		} else if cached != nil {
			fmt.Printf("[MEMO] Cache hit %s\n", fp[:12])
			cached.Cached = true
			return cached
		}
	}

	text, err := w.call(ctx, NewDealSummary(acquirer, target, deal, res))
	switch {
	case errors.Is(err, llm.ErrMissingAPIKey):
		fmt.Printf("[MEMO] No credential for provider %s\n", w.ProviderName)
		return w.newMemo(fp, StatusMissingKey, missingKeyText(w.ProviderName))
	case err != nil:
		fmt.Printf("[ERROR] Memo generation failed: %v\n", err)
		return w.newMemo(fp, StatusError, ErrorText)
	}

	markdown := utils.CleanMarkdown(text)
	if markdown == "" || !utils.ValidateMarkdown(markdown) {
		return w.newMemo(fp, StatusEmpty, EmptyText)
	}

	m := w.newMemo(fp, StatusOK, markdown)
	if w.Cache != nil {
		if err := w.Cache.Save(ctx, m); err != nil {
			fmt.Printf("[WARNING] memo cache save failed: %v\n", err)
		}
	}
	return m
}

// call performs the single provider round trip. A panicking provider is
// reported as an error.
func (w *Writer) call(ctx context.Context, summary DealSummary) (text string, err error) {
	if w.Provider == nil {
		return "", fmt.Errorf("no llm provider configured")
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("provider panic: %v", r)
		}
	}()

	system, user, err := BuildPrompt(w.Prompts, summary)
	if err != nil {
		return "", err
	}

	timeout := w.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	out, err := w.Provider.GenerateResponse(ctx, user, w.Provider.AdaptInstructions(system), w.Options)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// missingKeyText names the environment variable of a known provider.
func missingKeyText(provider string) string {
	env := llm.APIKeyEnv(provider)
	if env == "" {
		return MissingKeyText
	}
	return fmt.Sprintf("## API Key Missing\n\nPlease ensure the `%s` environment variable is set to generate the AI Investment Memo.", env)
}

func (w *Writer) newMemo(fp string, status Status, markdown string) *Memo {
	html, err := utils.RenderMarkdown(markdown)
	if err != nil {
		fmt.Printf("[WARNING] memo html render failed: %v\n", err)
		html = ""
	}
	return &Memo{
		ID:          uuid.New().String(),
		Fingerprint: fp,
		Status:      status,
		Markdown:    markdown,
		HTML:        html,
		Provider:    w.ProviderName,
		GeneratedAt: time.Now().UTC(),
	}
}
