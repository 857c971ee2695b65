package memo

import (
	"fmt"

	"merger_maestro/pkg/core/prompt"
)

// builtinPrompt is used when the prompt library has no memo.investment_memo entry.
var builtinPrompt = &prompt.PromptTemplate{
	ID:       prompt.MemoInvestment,
	Name:     "Investment Memo",
	Category: "memo",
	SystemPrompt: "You are a Managing Director at a top-tier investment bank. " +
		"Write a concise, professional Executive Summary for an M&A model.",
	UserPromptTmpl: `**Deal Overview:**
Acquirer: {{.AcquirerName}}
Target: {{.TargetName}}

**Financials:**
- Offer Price: ${{printf "%.2f" .OfferPrice}} ({{.OfferPremium}}% Premium)
- Total Transaction Value: ${{printf "%.2f" .DealValueBn}} Billion
- Consideration: {{.CashPercent}}% Cash, {{.StockPercent}}% Stock

**Accretion/Dilution Analysis:**
- Status: {{.Status}}
- Impact: {{printf "%.2f" .AccretionPct}}% to FY EPS
- Pro Forma EPS: ${{printf "%.2f" .ProFormaEPS}} (vs Standalone ${{printf "%.2f" .StandaloneEPS}})
- Synergies Included: ${{.Synergies}}M
- Breakeven Synergies Needed: ${{printf "%.1f" .BreakevenNeeded}}M

**Instructions:**
1. Start with a "Strategic Rationale" section analyzing why this deal might make sense (infer plausible strategic reasons from the company names, or stay generic if the names are generic).
2. Provide a "Financial Impact" section summarizing the accretion/dilution and valuation.
3. End with a "Risk Factors" bullet list (e.g., integration risk, synergy realization).
4. Keep it crisp, use professional finance terminology, and format in Markdown.
5. Do NOT include greetings. Go straight to the content.
`,
	Version: "1",
}

// selectPrompt returns the registry's memo prompt, or the built-in one when
// r is nil or has none.
func selectPrompt(r *prompt.Registry) *prompt.PromptTemplate {
	if r != nil {
		if loaded, err := r.GetPrompt(prompt.MemoInvestment); err == nil {
			return loaded
		}
	}
	return builtinPrompt
}

// BuildPrompt renders the system and user prompts for summary. A nil
// registry, or one without the memo prompt, falls back to the built-in text.
func BuildPrompt(r *prompt.Registry, summary DealSummary) (string, string, error) {
	pt := selectPrompt(r)

	user, err := prompt.RenderUserPrompt(pt, summary)
	if err != nil {
		return "", "", fmt.Errorf("render %s: %w", pt.ID, err)
	}
	return pt.SystemPrompt, user, nil
}
