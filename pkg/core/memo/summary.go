// Package memo drafts the prose executive summary of a simulated deal through
// an LLM provider. Failures never escape: every outcome is a readable Memo.
package memo

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"merger_maestro/pkg/core/merger"
)

// DealSummary is the flattened view of a simulation handed to the model.
type DealSummary struct {
	AcquirerName string
	TargetName   string

	OfferPrice      float64
	OfferPremium    float64
	DealValueBn     float64
	CashPercent     float64
	StockPercent    float64
	Status          string // ACCRETIVE or DILUTIVE
	AccretionPct    float64
	ProFormaEPS     float64
	StandaloneEPS   float64
	Synergies       float64
	BreakevenNeeded float64
}

func NewDealSummary(acquirer, target merger.CompanyMetrics, deal merger.DealStructure, res merger.SimulationResult) DealSummary {
	status := "DILUTIVE"
	if res.IsAccretive() {
		status = "ACCRETIVE"
	}
	return DealSummary{
		AcquirerName:    acquirer.Name,
		TargetName:      target.Name,
		OfferPrice:      res.OfferPricePerShare,
		OfferPremium:    deal.OfferPremium,
		DealValueBn:     res.TotalDealValue / 1000,
		CashPercent:     deal.CashConsideration,
		StockPercent:    100 - deal.CashConsideration,
		Status:          status,
		AccretionPct:    res.AccretionDilutionPercent,
		ProFormaEPS:     res.ProFormaEPS,
		StandaloneEPS:   res.AcquirerEPS,
		Synergies:       deal.Synergies,
		BreakevenNeeded: res.BreakevenSynergies,
	}
}

// Fingerprint identifies a set of simulation inputs. Display metadata is not
// part of it.
func Fingerprint(acquirer, target merger.CompanyMetrics, deal merger.DealStructure) string {
	h := sha256.New()
	fmt.Fprintf(h, "v1|%+v|%+v|%+v", acquirer, target, deal)
	return hex.EncodeToString(h.Sum(nil))
}

// CacheKey scopes an input fingerprint to the provider, model and prompt
// version that drafted the memo.
func CacheKey(fingerprint, provider, model, promptVersion string) string {
	h := sha256.New()
	fmt.Fprintf(h, "v1|%s|%s|%s|%s", fingerprint, provider, model, promptVersion)
	return hex.EncodeToString(h.Sum(nil))
}
