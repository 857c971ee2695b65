package merger

// Seeded scenario: a large-cap tech acquirer buying a streaming platform.

func DefaultAcquirer() Company {
	return Company{
		Metrics: CompanyMetrics{
			Name:              "OmniCorp",
			SharePrice:        150.00,
			SharesOutstanding: 2000,  // 2B shares
			NetIncome:         12000, // $12B
			Revenue:           45000,
			EBITDA:            18000,
		},
		Display: DisplayMetadata{Domain: "microsoft.com"},
	}
}

func DefaultTarget() Company {
	return Company{
		Metrics: CompanyMetrics{
			Name:              "StreamLine",
			SharePrice:        45.00,
			SharesOutstanding: 400, // 400M shares
			NetIncome:         800, // $800M
			Revenue:           5500,
			EBITDA:            1200,
		},
		Display: DisplayMetadata{Domain: "spotify.com"},
	}
}

func DefaultDeal() DealStructure {
	return DealStructure{
		OfferPremium:       25,
		CashConsideration:  40,
		Synergies:          300,
		TransactionFees:    50,
		InterestRateOnDebt: 5.5,
		TaxRate:            21,
	}
}
