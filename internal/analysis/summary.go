package analysis

import (
	"math"

	"solarcap-sim/internal/sim"
)

// TraceSummary is a run-level rollup of the per-step trace, suitable for
// ranking parameter sweeps or returning from the API without shipping the
// full trace.
type TraceSummary struct {
	Samples int

	MinVoltageV   float64
	MaxVoltageV   float64
	MeanVoltageV  float64
	FinalVoltageV float64

	FinalChargeC float64

	// OnTimeS is the simulated time the load spent on; OnFraction is its
	// share of the run. LoadEnergyJ is the energy delivered to the load,
	// sum of p*dt over on steps.
	OnTimeS     float64
	OnFraction  float64
	LoadEnergyJ float64
}

func Summarize(trace []sim.TraceRow, dtS float64) TraceSummary {
	s := TraceSummary{}
	if len(trace) == 0 {
		return s
	}
	s.Samples = len(trace)

	sum := 0.0
	minv := math.Inf(1)
	maxv := math.Inf(-1)
	for _, r := range trace {
		v := r.VoltageV
		sum += v
		if v < minv {
			minv = v
		}
		if v > maxv {
			maxv = v
		}
		if r.LoadPowerW > 0 {
			s.OnTimeS += dtS
			s.LoadEnergyJ += r.LoadPowerW * dtS
		}
	}
	last := trace[len(trace)-1]

	s.MinVoltageV = minv
	s.MaxVoltageV = maxv
	s.MeanVoltageV = sum / float64(len(trace))
	s.FinalVoltageV = last.VoltageV
	s.FinalChargeC = last.ChargeC

	total := float64(len(trace)) * dtS
	if total > 0 {
		s.OnFraction = s.OnTimeS / total
	}
	return s
}
