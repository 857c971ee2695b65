package report

import "merger_maestro/pkg/core/merger"

// Result is the wire form of merger.SimulationResult; non-finite fields encode as null.
type Result struct {
	OfferPricePerShare       Number `json:"offer_price_per_share"`
	TotalDealValue           Number `json:"total_deal_value"`
	CashRequired             Number `json:"cash_required"`
	StockRequired            Number `json:"stock_required"`
	NewSharesIssued          Number `json:"new_shares_issued"`
	AcquirerEPS              Number `json:"acquirer_eps"`
	TargetEPS                Number `json:"target_eps"`
	ProFormaNetIncome        Number `json:"pro_forma_net_income"`
	ProFormaShares           Number `json:"pro_forma_shares"`
	ProFormaEPS              Number `json:"pro_forma_eps"`
	AccretionDilutionAmount  Number `json:"accretion_dilution_amount"`
	AccretionDilutionPercent Number `json:"accretion_dilution_percent"`
	ImpliedPE                Number `json:"implied_pe"`
	BreakevenSynergies       Number `json:"breakeven_synergies"`
	Accretive                bool   `json:"accretive"`
}

func NewResult(r merger.SimulationResult) Result {
	return Result{
		OfferPricePerShare:       Number(r.OfferPricePerShare),
		TotalDealValue:           Number(r.TotalDealValue),
		CashRequired:             Number(r.CashRequired),
		StockRequired:            Number(r.StockRequired),
		NewSharesIssued:          Number(r.NewSharesIssued),
		AcquirerEPS:              Number(r.AcquirerEPS),
		TargetEPS:                Number(r.TargetEPS),
		ProFormaNetIncome:        Number(r.ProFormaNetIncome),
		ProFormaShares:           Number(r.ProFormaShares),
		ProFormaEPS:              Number(r.ProFormaEPS),
		AccretionDilutionAmount:  Number(r.AccretionDilutionAmount),
		AccretionDilutionPercent: Number(r.AccretionDilutionPercent),
		ImpliedPE:                Number(r.ImpliedPE),
		BreakevenSynergies:       Number(r.BreakevenSynergies),
		Accretive:                r.IsAccretive(),
	}
}
