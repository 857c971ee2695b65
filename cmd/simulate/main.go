package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"merger_maestro/pkg/core/agent"
	"merger_maestro/pkg/core/memo"
	"merger_maestro/pkg/core/prompt"
	"merger_maestro/pkg/core/report"
	"merger_maestro/pkg/core/scenario"
	"merger_maestro/pkg/core/store"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env not found, using environment variables")
	}

	def := scenario.Default()
	var (
		scenarioFile = flag.String("scenario", "", "Path to a JSON or Hjson scenario file")
		asJSON       = flag.Bool("json", false, "Print the result and dashboard as JSON")
		withMemo     = flag.Bool("memo", false, "Draft the investment memo with the configured LLM")
		modelsFile   = flag.String("models", "config/models.yaml", "Path to the model config")

		acqName   = flag.String("acquirer", def.Acquirer.Metrics.Name, "Acquirer name")
		acqPrice  = flag.Float64("acquirer-price", def.Acquirer.Metrics.SharePrice, "Acquirer share price ($)")
		acqShares = flag.Float64("acquirer-shares", def.Acquirer.Metrics.SharesOutstanding, "Acquirer shares outstanding (M)")
		acqNI     = flag.Float64("acquirer-net-income", def.Acquirer.Metrics.NetIncome, "Acquirer net income ($M)")

		tgtName   = flag.String("target", def.Target.Metrics.Name, "Target name")
		tgtPrice  = flag.Float64("target-price", def.Target.Metrics.SharePrice, "Target share price ($)")
		tgtShares = flag.Float64("target-shares", def.Target.Metrics.SharesOutstanding, "Target shares outstanding (M)")
		tgtNI     = flag.Float64("target-net-income", def.Target.Metrics.NetIncome, "Target net income ($M)")

		premium   = flag.Float64("premium", def.Deal.OfferPremium, "Offer premium (%)")
		cash      = flag.Float64("cash", def.Deal.CashConsideration, "Cash consideration (%)")
		synergies = flag.Float64("synergies", def.Deal.Synergies, "Pre-tax synergies ($M)")
		fees      = flag.Float64("fees", def.Deal.TransactionFees, "Transaction fees ($M)")
		rate      = flag.Float64("interest-rate", def.Deal.InterestRateOnDebt, "Interest rate on new debt (%)")
		tax       = flag.Float64("tax-rate", def.Deal.TaxRate, "Tax rate (%)")
	)
	flag.Parse()

	s := def
	if *scenarioFile != "" {
		loaded, err := scenario.Load(*scenarioFile)
		if err != nil {
			log.Fatalf("Error: %v", err)
		}
		s = loaded
	}

	// Explicit flags win over the scenario file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "acquirer":
			s.Acquirer.Metrics.Name = *acqName
		case "acquirer-price":
			s.Acquirer.Metrics.SharePrice = *acqPrice
		case "acquirer-shares":
			s.Acquirer.Metrics.SharesOutstanding = *acqShares
		case "acquirer-net-income":
			s.Acquirer.Metrics.NetIncome = *acqNI
		case "target":
			s.Target.Metrics.Name = *tgtName
		case "target-price":
			s.Target.Metrics.SharePrice = *tgtPrice
		case "target-shares":
			s.Target.Metrics.SharesOutstanding = *tgtShares
		case "target-net-income":
			s.Target.Metrics.NetIncome = *tgtNI
		case "premium":
			s.Deal.OfferPremium = *premium
		case "cash":
			s.Deal.CashConsideration = *cash
		case "synergies":
			s.Deal.Synergies = *synergies
		case "fees":
			s.Deal.TransactionFees = *fees
		case "interest-rate":
			s.Deal.InterestRateOnDebt = *rate
		case "tax-rate":
			s.Deal.TaxRate = *tax
		}
	})

	res := s.Run()
	dash := report.BuildDashboard(s.Acquirer, s.Target, s.Deal, res)

	var m *memo.Memo
	if *withMemo {
		m = draftMemo(s, *modelsFile)
	}

	if *asJSON {
		out := struct {
			Result    report.Result    `json:"result"`
			Dashboard report.Dashboard `json:"dashboard"`
			Memo      *memo.Memo       `json:"memo,omitempty"`
		}{report.NewResult(res), dash, m}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			log.Fatalf("Error: %v", err)
		}
		return
	}

	printDashboard(dash)
	if m != nil {
		fmt.Println()
		fmt.Println(m.Markdown)
	}
}

func draftMemo(s scenario.Scenario, modelsFile string) *memo.Memo {
	cfg := agent.Config{ActiveProvider: "gemini"}
	if data, err := os.ReadFile(modelsFile); err == nil {
		if parsed, err := agent.ParseConfig(data); err == nil {
			cfg = parsed
		} else {
			log.Printf("Warning: %v", err)
		}
	}
	mgr := agent.NewManager(cfg)

	if err := prompt.LoadFromDirectory(prompt.Get(), "resources"); err != nil {
		log.Printf("Warning: %v, using built-in memo prompt", err)
	}

	w := memo.NewWriter(mgr.GetProvider(agent.MemoWriter), store.NewMemoCache(nil, os.Getenv("MEMO_CACHE_DIR")))
	w.ProviderName = mgr.ProviderName(agent.MemoWriter)
	w.Options = mgr.Options(agent.MemoWriter)
	w.Prompts = prompt.Get()

	res := s.Run()
	return w.Generate(context.Background(), s.Acquirer.Metrics, s.Target.Metrics, s.Deal, res)
}

func printDashboard(d report.Dashboard) {
	fmt.Printf("%s (%s) acquires %s (%s)\n", d.Acquirer.Name, d.Acquirer.Role, d.Target.Name, d.Target.Role)
	fmt.Printf("Transaction Value: %s\n\n", d.TransactionValue)

	for _, c := range d.Cards {
		fmt.Printf("  %-24s %12s   %s\n", c.Title, c.Value, c.SubValue)
	}

	fmt.Println("\nEPS")
	for _, b := range d.EPSBars {
		fmt.Printf("  %-24s %12s\n", b.Label, report.FormatCurrency(float64(b.Value)))
	}

	fmt.Println("\nDeal Mechanics")
	for _, r := range d.DealMechanics {
		marker := " "
		if r.Highlight {
			marker = "*"
		}
		fmt.Printf(" %s%-24s %12s\n", marker, r.Metric, r.Output)
	}
}
