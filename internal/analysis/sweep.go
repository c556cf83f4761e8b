package analysis

import (
	"fmt"
	"sort"

	"solarcap-sim/internal/model"
	"solarcap-sim/internal/sim"
)

// SweepResult is the summary for one on-state load power of a sweep.
type SweepResult struct {
	LoadPowerW float64
	Summary    TraceSummary
}

// SweepLoadPower runs the simulation once per candidate on-state load power
// and sorts the results by on-time fraction, then by delivered load energy,
// descending. Each run starts from a fresh node; runs are independent.
func SweepLoadPower(base model.NodeParams, powersW []float64, integ sim.Integrator) ([]SweepResult, error) {
	if len(powersW) == 0 {
		return nil, fmt.Errorf("no load powers to sweep")
	}

	engine := sim.New()
	out := make([]SweepResult, 0, len(powersW))
	for _, pw := range powersW {
		if pw < 0 {
			return nil, fmt.Errorf("load power %g: %w: all parameters must be non-negative", pw, model.ErrInvalidParameter)
		}
		params := base
		params.LoadPowerW = pw

		node, err := model.NewNode(params)
		if err != nil {
			return nil, fmt.Errorf("load power %g: %w", pw, err)
		}
		res, err := engine.Run(node, integ)
		if err != nil {
			return nil, fmt.Errorf("load power %g: %w", pw, err)
		}
		out = append(out, SweepResult{
			LoadPowerW: pw,
			Summary:    Summarize(res.Trace, params.TimeStepS),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Summary.OnFraction != out[j].Summary.OnFraction {
			return out[i].Summary.OnFraction > out[j].Summary.OnFraction
		}
		return out[i].Summary.LoadEnergyJ > out[j].Summary.LoadEnergyJ
	})
	return out, nil
}
