package simulation

import (
	"net/http"

	"merger_maestro/pkg/api/respond"
	"merger_maestro/pkg/core/merger"
	"merger_maestro/pkg/core/report"
	"merger_maestro/pkg/core/scenario"
)

// Response is the body of POST /api/simulate.
type Response struct {
	Result    report.Result    `json:"result"`
	Dashboard report.Dashboard `json:"dashboard"`
}

// HandleSimulate recomputes the deal for the posted inputs. Called on every
// input change; each call is independent.
func HandleSimulate(w http.ResponseWriter, r *http.Request) {
	if !respond.RequireMethod(w, r, http.MethodPost) {
		return
	}

	s, err := respond.DecodeScenario(w, r)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	res := merger.Simulate(s.Acquirer.Metrics, s.Target.Metrics, s.Deal)
	respond.JSON(w, http.StatusOK, Response{
		Result:    report.NewResult(res),
		Dashboard: report.BuildDashboard(s.Acquirer, s.Target, s.Deal, res),
	})
}

// HandleDefaults returns the seeded scenario the UI starts from.
func HandleDefaults(w http.ResponseWriter, r *http.Request) {
	if !respond.RequireMethod(w, r, http.MethodGet) {
		return
	}
	respond.JSON(w, http.StatusOK, scenario.Default())
}
