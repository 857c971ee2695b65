// Package scenario reads deal inputs from hand-edited files.
package scenario

import (
	"bytes"
	"fmt"
	"os"

	"merger_maestro/pkg/core/merger"
	"merger_maestro/pkg/core/utils"
)

// Scenario is one complete set of simulation inputs.
type Scenario struct {
	Acquirer merger.Company       `json:"acquirer"`
	Target   merger.Company       `json:"target"`
	Deal     merger.DealStructure `json:"deal"`
}

// Default returns the seeded OmniCorp / StreamLine scenario.
func Default() Scenario {
	return Scenario{
		Acquirer: merger.DefaultAcquirer(),
		Target:   merger.DefaultTarget(),
		Deal:     merger.DefaultDeal(),
	}
}

// Parse decodes JSON, Hjson or lightly malformed JSON. Fields missing from
// the document keep their value from Default. Blank input is an error.
func Parse(data []byte) (Scenario, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Scenario{}, fmt.Errorf("scenario: empty document")
	}
	s := Default()
	if _, err := utils.LenientUnmarshal(data, &s); err != nil {
		return Scenario{}, fmt.Errorf("scenario: %w", err)
	}
	return s, nil
}

// Load reads and parses a scenario file.
func Load(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("scenario: read %s: %w", path, err)
	}
	return Parse(data)
}

// Run simulates the scenario.
func (s Scenario) Run() merger.SimulationResult {
	return merger.Simulate(s.Acquirer.Metrics, s.Target.Metrics, s.Deal)
}
