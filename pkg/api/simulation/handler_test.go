package simulation

import (
	"bytes"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"merger_maestro/pkg/core/scenario"
)

func post(t *testing.T, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/simulate", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	HandleSimulate(rec, req)
	return rec
}

func TestHandleSimulate_Default(t *testing.T) {
	body, _ := json.Marshal(scenario.Default())
	rec := post(t, body)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Result struct {
			OfferPricePerShare float64 `json:"offer_price_per_share"`
			TotalDealValue     float64 `json:"total_deal_value"`
			NewSharesIssued    float64 `json:"new_shares_issued"`
			ProFormaEPS        float64 `json:"pro_forma_eps"`
			Accretive          bool    `json:"accretive"`
		} `json:"result"`
		Dashboard struct {
			TransactionValue string `json:"transaction_value"`
		} `json:"dashboard"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad JSON: %v", err)
	}
	if resp.Result.OfferPricePerShare != 56.25 || resp.Result.TotalDealValue != 22500 {
		t.Errorf("unexpected pricing: %+v", resp.Result)
	}
	if math.Abs(resp.Result.NewSharesIssued-90) > 1e-9 {
		t.Errorf("expected 90 new shares, got %f", resp.Result.NewSharesIssued)
	}
	if !resp.Result.Accretive || resp.Dashboard.TransactionValue != "$22.5B" {
		t.Errorf("unexpected summary: %+v / %+v", resp.Result, resp.Dashboard)
	}
}

func TestHandleSimulate_NonFiniteBecomesNull(t *testing.T) {
	s := scenario.Default()
	s.Acquirer.Metrics.NetIncome = 0
	body, _ := json.Marshal(s)

	rec := post(t, body)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Result map[string]interface{} `json:"result"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad JSON: %v", err)
	}
	if v, ok := resp.Result["accretion_dilution_percent"]; !ok || v != nil {
		t.Errorf("expected accretion_dilution_percent null, got %v", v)
	}
}

func TestHandleSimulate_BadRequests(t *testing.T) {
	if rec := post(t, []byte(`{"deal": {"offer_premium": "lots"}}`)); rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for wrong type, got %d", rec.Code)
	}
	if rec := post(t, []byte(`{"acquirer": {"metrics": {"ticker": "X"}}}`)); rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for unknown field, got %d", rec.Code)
	}

	rec := httptest.NewRecorder()
	HandleSimulate(rec, httptest.NewRequest(http.MethodGet, "/api/simulate", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", rec.Code)
	}
}

func TestHandleDefaults(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleDefaults(rec, httptest.NewRequest(http.MethodGet, "/api/simulate/defaults", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var s scenario.Scenario
	if err := json.Unmarshal(rec.Body.Bytes(), &s); err != nil {
		t.Fatalf("bad JSON: %v", err)
	}
	if s.Acquirer.Metrics.Name != "OmniCorp" || s.Deal.TaxRate != 21 {
		t.Errorf("unexpected defaults: %+v", s)
	}
}
