package config

import (
	"encoding/json"
	"net/http"

	"merger_maestro/pkg/api/respond"
	"merger_maestro/pkg/core/agent"
)

type Response struct {
	ActiveProvider string   `json:"active_provider"`
	MemoProvider   string   `json:"memo_provider"`
	Available      []string `json:"available"`
}

type SwitchRequest struct {
	Provider string `json:"provider"`
}

// Handler holds dependencies for config endpoints
type Handler struct {
	AgentMgr *agent.Manager
}

// NewHandler creates a new config handler
func NewHandler(agentMgr *agent.Manager) *Handler {
	return &Handler{AgentMgr: agentMgr}
}

func (h *Handler) current() Response {
	return Response{
		ActiveProvider: h.AgentMgr.GetActiveProvider(),
		MemoProvider:   h.AgentMgr.ProviderName(agent.MemoWriter),
		Available:      h.AgentMgr.Available(),
	}
}

func (h *Handler) HandleConfig(w http.ResponseWriter, r *http.Request) {
	if !respond.RequireMethod(w, r, http.MethodGet) {
		return
	}
	respond.JSON(w, http.StatusOK, h.current())
}

func (h *Handler) HandleSwitch(w http.ResponseWriter, r *http.Request) {
	if !respond.RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req SwitchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.AgentMgr.SetGlobalProvider(req.Provider); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	respond.JSON(w, http.StatusOK, h.current())
}
