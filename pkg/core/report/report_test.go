package report

import (
	"encoding/json"
	"math"
	"testing"

	"merger_maestro/pkg/core/merger"
)

func TestFormatters(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"currency", FormatCurrency(1234.567), "$1,234.57"},
		{"currency small", FormatCurrency(6.0507), "$6.05"},
		{"currency negative", FormatCurrency(-0.0493), "-$0.05"},
		{"currency millions", FormatCurrency(22500000), "$22,500,000.00"},
		{"large number", FormatLargeNumber(12645.95), "12,646"},
		{"large number small", FormatLargeNumber(90), "90"},
		{"large number negative", FormatLargeNumber(-1500.4), "-1,500"},
		{"percent two decimals", FormatPercent(0.8449), "0.84%"},
		{"percent one decimal", FormatPercent(12.5), "12.5%"},
		{"percent whole", FormatPercent(3), "3.0%"},
		{"percent negative", FormatPercent(-1.237), "-1.24%"},
		{"multiple", FormatMultiple(28.125), "28.1x"},
		{"billions", FormatBillions(22500), "$22.5B"},
		{"nan currency", FormatCurrency(math.NaN()), NotAvailable},
		{"inf percent", FormatPercent(math.Inf(1)), NotAvailable},
		{"inf multiple", FormatMultiple(math.Inf(-1)), NotAvailable},
		{"nan large", FormatLargeNumber(math.NaN()), NotAvailable},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: expected %q, got %q", tt.name, tt.want, tt.got)
		}
	}
}

func TestNumberJSON(t *testing.T) {
	payload := struct {
		A Number `json:"a"`
		B Number `json:"b"`
		C Number `json:"c"`
	}{Number(6.5), Number(math.NaN()), Number(math.Inf(1))}

	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(data) != `{"a":6.5,"b":null,"c":null}` {
		t.Errorf("unexpected JSON: %s", data)
	}

	var back struct {
		A Number `json:"a"`
		B Number `json:"b"`
	}
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if float64(back.A) != 6.5 || !math.IsNaN(float64(back.B)) {
		t.Errorf("unexpected round trip: %v %v", back.A, back.B)
	}
}

func TestBuildDashboard_Baseline(t *testing.T) {
	acq, tgt, deal := merger.DefaultAcquirer(), merger.DefaultTarget(), merger.DefaultDeal()
	res := merger.Simulate(acq.Metrics, tgt.Metrics, deal)
	d := BuildDashboard(acq, tgt, deal, res)

	if d.Acquirer.LogoURL != "https://logo.clearbit.com/microsoft.com" {
		t.Errorf("unexpected acquirer logo: %s", d.Acquirer.LogoURL)
	}
	if d.Target.Initial != "S" {
		t.Errorf("expected target initial S, got %q", d.Target.Initial)
	}
	if d.TransactionValue != "$22.5B" {
		t.Errorf("expected $22.5B, got %s", d.TransactionValue)
	}
	if !d.Accretive || d.Cards[0].Trend != "up" {
		t.Errorf("expected accretive dashboard, got %+v", d.Cards[0])
	}
	if d.Cards[0].SubValue != "+$0.05 / share" {
		t.Errorf("unexpected accretion sub value: %s", d.Cards[0].SubValue)
	}
	if d.Cards[1].SubValue != "$56.25 per share" {
		t.Errorf("unexpected offer price: %s", d.Cards[1].SubValue)
	}
	if d.Cards[3].Value != "28.1x" {
		t.Errorf("unexpected implied P/E: %s", d.Cards[3].Value)
	}

	wantRows := map[string]string{
		"New Shares Issued":   "90 M",
		"Cash Consideration":  "$9,000 M",
		"Stock Consideration": "$13,500 M",
		"Breakeven Synergies": "$166 M",
	}
	for _, row := range d.DealMechanics {
		if want := wantRows[row.Metric]; row.Output != want {
			t.Errorf("%s: expected %q, got %q", row.Metric, want, row.Output)
		}
	}
}

func TestBuildDashboard_DegenerateInputsStillEncode(t *testing.T) {
	acq, tgt, deal := merger.DefaultAcquirer(), merger.DefaultTarget(), merger.DefaultDeal()
	acq.Metrics.NetIncome = 0
	tgt.Metrics.NetIncome = 0
	acq.Display.Domain = ""

	res := merger.Simulate(acq.Metrics, tgt.Metrics, deal)
	d := BuildDashboard(acq, tgt, deal, res)

	if d.Cards[0].Value != NotAvailable {
		t.Errorf("expected accretion percent n/a, got %s", d.Cards[0].Value)
	}
	if d.Cards[3].Value != NotAvailable {
		t.Errorf("expected implied P/E n/a, got %s", d.Cards[3].Value)
	}
	if d.Acquirer.LogoURL != "" {
		t.Errorf("expected no logo URL, got %s", d.Acquirer.LogoURL)
	}
	if _, err := json.Marshal(d); err != nil {
		t.Errorf("dashboard failed to encode: %v", err)
	}
}
