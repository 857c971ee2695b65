package merger

// CalculateEPS returns netIncome / shares, or 0 when there are no shares.
func CalculateEPS(netIncome, shares float64) float64 {
	if shares == 0 {
		return 0
	}
	return netIncome / shares
}

// Simulate computes the pro-forma outcome of the deal.
//
// It never fails: division by a zero acquirer share price, zero standalone
// EPS or zero target net income yields NaN/±Inf in the affected fields and
// the caller decides how to present them. Inputs are passed by value and
// never modified.
func Simulate(acquirer, target CompanyMetrics, deal DealStructure) SimulationResult {
	// 1. Offer pricing
	offerPrice := target.SharePrice * (1 + deal.OfferPremium/100)
	totalDealValue := offerPrice * target.SharesOutstanding

	// 2. Consideration mix
	cashRequired := totalDealValue * (deal.CashConsideration / 100)
	stockRequired := totalDealValue * ((100 - deal.CashConsideration) / 100)

	// 3. Stock issuance
	newSharesIssued := stockRequired / acquirer.SharePrice

	// 4. Standalone EPS
	acquirerEPS := CalculateEPS(acquirer.NetIncome, acquirer.SharesOutstanding)
	targetEPS := CalculateEPS(target.NetIncome, target.SharesOutstanding)

	// 5. Synergies, tax affected
	taxShield := 1 - deal.TaxRate/100
	afterTaxSynergies := deal.Synergies * taxShield

	// 6. Cost of the cash portion: new debt or foregone interest, one rate for both
	preTaxInterest := cashRequired * (deal.InterestRateOnDebt / 100)
	afterTaxInterest := preTaxInterest * taxShield

	// 7. Run-rate net income; one-time transaction fees are left out
	proFormaNetIncome := acquirer.NetIncome + target.NetIncome + afterTaxSynergies - afterTaxInterest

	// 8-9. Pro-forma share base and EPS
	proFormaShares := acquirer.SharesOutstanding + newSharesIssued
	proFormaEPS := CalculateEPS(proFormaNetIncome, proFormaShares)

	// 10. Accretion / dilution. Non-finite when acquirerEPS is 0.
	accretionAmount := proFormaEPS - acquirerEPS
	accretionPercent := accretionAmount / acquirerEPS * 100

	// 11. Implied P/E. Non-finite when target net income is 0.
	impliedPE := totalDealValue / target.NetIncome

	// 12. Breakeven synergies: pre-tax synergies for which accretionAmount == 0
	requiredNetIncome := acquirerEPS * proFormaShares
	netIncomeExSynergies := acquirer.NetIncome + target.NetIncome - afterTaxInterest
	breakeven := (requiredNetIncome - netIncomeExSynergies) / taxShield

	return SimulationResult{
		OfferPricePerShare:       offerPrice,
		TotalDealValue:           totalDealValue,
		CashRequired:             cashRequired,
		StockRequired:            stockRequired,
		NewSharesIssued:          newSharesIssued,
		AcquirerEPS:              acquirerEPS,
		TargetEPS:                targetEPS,
		ProFormaNetIncome:        proFormaNetIncome,
		ProFormaShares:           proFormaShares,
		ProFormaEPS:              proFormaEPS,
		AccretionDilutionAmount:  accretionAmount,
		AccretionDilutionPercent: accretionPercent,
		ImpliedPE:                impliedPE,
		BreakevenSynergies:       clampBreakeven(breakeven),
	}
}

// clampBreakeven reports a deal that is accretive without synergies as needing 0.
// NaN is passed through.
func clampBreakeven(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
