package report

import (
	"fmt"

	"merger_maestro/pkg/core/merger"
)

const logoBaseURL = "https://logo.clearbit.com/"

// Party is one side of the deal header.
type Party struct {
	Role    string `json:"role"`
	Name    string `json:"name"`
	LogoURL string `json:"logo_url,omitempty"`
	Initial string `json:"initial"` // fallback when there is no logo
}

// KPICard is one headline figure.
type KPICard struct {
	Title     string `json:"title"`
	Value     string `json:"value"`
	SubValue  string `json:"sub_value"`
	Trend     string `json:"trend,omitempty"` // "up", "down" or empty
	Highlight bool   `json:"highlight"`
}

// Bar is one entry of the standalone vs pro-forma EPS chart.
type Bar struct {
	Label string `json:"label"`
	Value Number `json:"value"`
}

// Row is a line of the sources & uses table.
type Row struct {
	Metric    string `json:"metric"`
	Output    string `json:"output"`
	Highlight bool   `json:"highlight"`
}

// Dashboard is the full presentation view of one simulation.
type Dashboard struct {
	Acquirer         Party     `json:"acquirer"`
	Target           Party     `json:"target"`
	TransactionValue string    `json:"transaction_value"`
	Accretive        bool      `json:"accretive"`
	Cards            []KPICard `json:"cards"`
	EPSBars          []Bar     `json:"eps_bars"`
	DealMechanics    []Row     `json:"deal_mechanics"`
}

// BuildDashboard lays out the result for display. Non-finite figures
// render as NotAvailable.
func BuildDashboard(acquirer, target merger.Company, deal merger.DealStructure, res merger.SimulationResult) Dashboard {
	accretive := res.IsAccretive()
	trend := "down"
	if accretive {
		trend = "up"
	}

	sign := ""
	if res.AccretionDilutionAmount > 0 {
		sign = "+"
	}

	return Dashboard{
		Acquirer:         newParty("Acquirer", acquirer),
		Target:           newParty("Target", target),
		TransactionValue: FormatBillions(res.TotalDealValue),
		Accretive:        accretive,
		Cards: []KPICard{
			{
				Title:     "Accretion / (Dilution)",
				Value:     FormatPercent(res.AccretionDilutionPercent),
				SubValue:  fmt.Sprintf("%s%s / share", sign, FormatCurrency(res.AccretionDilutionAmount)),
				Trend:     trend,
				Highlight: true,
			},
			{
				Title:    "Total Deal Value",
				Value:    FormatBillions(res.TotalDealValue),
				SubValue: fmt.Sprintf("%s per share", FormatCurrency(res.OfferPricePerShare)),
			},
			{
				Title:    "Pro Forma EPS",
				Value:    FormatCurrency(res.ProFormaEPS),
				SubValue: fmt.Sprintf("vs. %s Standalone", FormatCurrency(res.AcquirerEPS)),
			},
			{
				Title:    "Implied P/E (Target)",
				Value:    FormatMultiple(res.ImpliedPE),
				SubValue: "Price / Earnings",
			},
		},
		EPSBars: []Bar{
			{Label: "Standalone", Value: Number(res.AcquirerEPS)},
			{Label: "Pro Forma", Value: Number(res.ProFormaEPS)},
		},
		DealMechanics: []Row{
			{Metric: "New Shares Issued", Output: FormatLargeNumber(res.NewSharesIssued) + " M"},
			{Metric: "Cash Consideration", Output: millions(res.CashRequired)},
			{Metric: "Stock Consideration", Output: millions(res.StockRequired)},
			{Metric: "Breakeven Synergies", Output: millions(res.BreakevenSynergies), Highlight: true},
		},
	}
}

func newParty(role string, c merger.Company) Party {
	p := Party{Role: role, Name: c.Metrics.Name}
	if c.Metrics.Name != "" {
		p.Initial = string([]rune(c.Metrics.Name)[:1])
	}
	if c.Display.Domain != "" {
		p.LogoURL = logoBaseURL + c.Display.Domain
	}
	return p
}

func millions(v float64) string {
	s := FormatLargeNumber(v)
	if s == NotAvailable {
		return s
	}
	return "$" + s + " M"
}
