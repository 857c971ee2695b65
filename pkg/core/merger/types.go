// Package merger models the pro-forma outcome of an acquisition: deal value,
// financing mix, accretion/dilution to EPS and the breakeven synergy level.
package merger

// CompanyMetrics is the simulation input for one side of the deal.
// Share counts and money amounts are in millions; SharePrice is per share.
type CompanyMetrics struct {
	Name              string  `json:"name"`
	SharePrice        float64 `json:"share_price"`
	SharesOutstanding float64 `json:"shares_outstanding"`
	NetIncome         float64 `json:"net_income"` // signed, losses allowed
	Revenue           float64 `json:"revenue"`    // informational
	EBITDA            float64 `json:"ebitda"`     // informational
}

// DisplayMetadata carries fields only the presentation layer reads.
type DisplayMetadata struct {
	Domain  string   `json:"domain,omitempty"` // logo lookup
	PERatio *float64 `json:"pe_ratio,omitempty"`
}

// Company pairs simulation input with its display metadata.
type Company struct {
	Metrics CompanyMetrics  `json:"metrics"`
	Display DisplayMetadata `json:"display"`
}

// DealStructure holds the proposed terms. Percent fields are percentage points (25 = 25%).
type DealStructure struct {
	OfferPremium       float64 `json:"offer_premium"`
	CashConsideration  float64 `json:"cash_consideration"` // remainder paid in acquirer stock
	Synergies          float64 `json:"synergies"`          // pre-tax run-rate, millions
	TransactionFees    float64 `json:"transaction_fees"`   // one-time, not in run-rate EPS
	InterestRateOnDebt float64 `json:"interest_rate_on_debt"`
	TaxRate            float64 `json:"tax_rate"`
}

// SimulationResult is fully derived from the three inputs.
// Fields may be NaN or ±Inf for degenerate inputs (zero acquirer EPS,
// zero target net income, zero acquirer share price).
type SimulationResult struct {
	OfferPricePerShare float64
	TotalDealValue     float64
	CashRequired       float64
	StockRequired      float64
	NewSharesIssued    float64

	AcquirerEPS float64
	TargetEPS   float64

	ProFormaNetIncome float64
	ProFormaShares    float64
	ProFormaEPS       float64

	AccretionDilutionAmount  float64
	AccretionDilutionPercent float64

	ImpliedPE          float64
	BreakevenSynergies float64
}

// IsAccretive reports whether pro-forma EPS is at least the acquirer's standalone EPS.
func (r SimulationResult) IsAccretive() bool {
	return r.AccretionDilutionAmount >= 0
}
