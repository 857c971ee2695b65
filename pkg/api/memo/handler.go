package memo

import (
	"fmt"
	"net/http"

	"merger_maestro/pkg/api/respond"
	"merger_maestro/pkg/core/agent"
	coreMemo "merger_maestro/pkg/core/memo"
	"merger_maestro/pkg/core/merger"
	"merger_maestro/pkg/core/prompt"
	"merger_maestro/pkg/core/report"
	"merger_maestro/pkg/core/scenario"
)

// Handler serves POST /api/memo.
type Handler struct {
	AgentMgr *agent.Manager
	Prompts  *prompt.Registry
	Cache    coreMemo.Cache
}

func NewHandler(agentMgr *agent.Manager, prompts *prompt.Registry, cache coreMemo.Cache) *Handler {
	return &Handler{AgentMgr: agentMgr, Prompts: prompts, Cache: cache}
}

// Request is a scenario plus an optional provider that overrides the
// memo_writer routing for this call.
type Request struct {
	scenario.Scenario
	Provider string `json:"provider,omitempty"`
}

type Response struct {
	Memo   *coreMemo.Memo `json:"memo"`
	Result report.Result  `json:"result"`
}

// HandleMemo simulates the posted deal and drafts the memo. Provider failures
// still answer 200 with a placeholder memo.
func (h *Handler) HandleMemo(w http.ResponseWriter, r *http.Request) {
	if !respond.RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req Request
	if err := respond.Decode(w, r, &req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	s := req.Scenario

	// Select provider: prefer the request, then the memo_writer routing
	provider := h.AgentMgr.GetProvider(agent.MemoWriter)
	providerName := h.AgentMgr.ProviderName(agent.MemoWriter)
	options := h.AgentMgr.Options(agent.MemoWriter)
	if req.Provider != "" && req.Provider != providerName {
		provider = h.AgentMgr.GetProviderByName(req.Provider)
		if provider == nil {
			respond.Error(w, http.StatusBadRequest, fmt.Sprintf("unknown provider %q", req.Provider))
			return
		}
		// the configured model belongs to the routed provider
		providerName, options = req.Provider, nil
	}

	res := merger.Simulate(s.Acquirer.Metrics, s.Target.Metrics, s.Deal)

	writer := coreMemo.NewWriter(provider, h.Cache)
	writer.ProviderName = providerName
	writer.Options = options
	writer.Prompts = h.Prompts

	m := writer.Generate(r.Context(), s.Acquirer.Metrics, s.Target.Metrics, s.Deal, res)
	respond.JSON(w, http.StatusOK, Response{Memo: m, Result: report.NewResult(res)})
}
