package sim

import (
	"fmt"
	"math"

	"solarcap-sim/internal/model"
)

type Engine struct{}

func New() *Engine { return &Engine{} }

// Run integrates the node from its initial state to the duration bound and
// materializes the full series. One sample is emitted per step including t=0;
// the bound is checked on the accumulated time, so the count is
// floor(duration/dt)+1 and the final sample's time can land slightly short of
// the duration. Times are never snapped.
//
// A domain error aborts the run with no partial result.
func (e *Engine) Run(n *model.Node, integ Integrator) (*Result, error) {
	if n == nil {
		return nil, fmt.Errorf("node is nil")
	}
	if integ == nil {
		return nil, fmt.Errorf("integrator is nil")
	}

	est := sampleCapacity(n.Params.DurationS, n.Params.TimeStepS)
	samples := make([]model.Sample, 0, est)
	trace := make([]TraceRow, 0, est)

	idx := 0
	for n.State.TimeS <= n.Params.DurationS {
		res, err := integ.Step(n)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", idx, err)
		}

		samples = append(samples, model.Sample{TimeS: res.TimeS, VoltageV: res.VoltageV})
		trace = append(trace, TraceRow{
			Index:          idx,
			TimeS:          res.TimeS,
			VoltageV:       res.VoltageV,
			ChargeC:        res.ChargeC,
			SourceCurrentA: res.SourceCurrentA,
			LoadPowerW:     res.LoadPowerW,
			LoadCurrentA:   res.LoadCurrentA,
			Mode:           model.ModeFromPowerW(res.LoadPowerW),
		})
		idx++
	}

	return &Result{
		Samples: samples,
		Trace:   trace,
		Final:   n.State,
	}, nil
}

// sampleCapacity sizes the result slices up front. The duration/step ratio
// can exceed int range for extreme parameter combinations, and a converted
// overflow would make a negative capacity; the value is only a hint, so it
// is capped instead.
func sampleCapacity(durS, dtS float64) int {
	const maxHint = 1 << 20

	q := durS / dtS
	if math.IsNaN(q) || q < 0 {
		return 0
	}
	if q >= maxHint {
		return maxHint
	}
	return int(q) + 1
}
