package sim

import "solarcap-sim/internal/model"

// TraceRow is one step of per-step output.
// This is the primary artifact for "what happened" in a run; the Samples
// series is its (t_s, volts) projection.
type TraceRow struct {
	Index int

	TimeS    float64
	VoltageV float64

	ChargeC        float64
	SourceCurrentA float64

	LoadPowerW   float64
	LoadCurrentA float64

	Mode model.Mode
}

type Result struct {
	Samples []model.Sample
	Trace   []TraceRow
	Final   model.NodeState
}
