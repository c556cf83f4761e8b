package models

// SimulateRequest represents the request body for running a simulation
type SimulateRequest struct {
	Config  SimConfig       `json:"config" binding:"required"`
	Options SimulateOptions `json:"options,omitempty"`
}

// SimConfig contains node and solver configuration
type SimConfig struct {
	NodeFile string       `json:"node_file,omitempty"`
	Node     NodeConfig   `json:"node,omitempty"`
	Solver   SolverConfig `json:"solver,omitempty"`
}

// NodeConfig defines node parameters
type NodeConfig struct {
	Name           string  `json:"name,omitempty"`
	ArrayAreaM2    float64 `json:"array_area_m2"`
	Efficiency     float64 `json:"efficiency"`
	OpenCircuitV   float64 `json:"open_circuit_v"`
	CapacitanceF   float64 `json:"capacitance_f"`
	ESROhms        float64 `json:"esr_ohms"`
	InitialChargeC float64 `json:"initial_charge_c,omitempty"`
	LoadPowerW     float64 `json:"load_power_w,omitempty"`
	VThreshV       float64 `json:"v_thresh_v,omitempty"`
	TimeStepS      float64 `json:"time_step_s"`
	DurationS      float64 `json:"duration_s"`
}

// SolverConfig selects the integrator
type SolverConfig struct {
	Name string `json:"name,omitempty"` // "quadratic" (default) or "approx"
}

// SimulateOptions contains optional simulation parameters
type SimulateOptions struct {
	IncludeTrace bool `json:"include_trace,omitempty"` // default: false
	LimitSamples int  `json:"limit_samples,omitempty"` // 0 = all (trace rows in the response)
}

// SweepRequest represents a request to sweep the on-state load power
type SweepRequest struct {
	Config      SimConfig `json:"config" binding:"required"`
	LoadPowersW []float64 `json:"load_powers_w" binding:"required"`
}
