package models

// SimulateResponse represents the response from a simulation run
type SimulateResponse struct {
	ID      string     `json:"id"`
	Status  string     `json:"status"`
	Summary SimSummary `json:"summary"`
	Trace   []TraceRow `json:"trace,omitempty"`
}

// SimSummary contains aggregated run results
type SimSummary struct {
	Samples       int     `json:"samples"`
	MinVoltageV   float64 `json:"min_voltage_v"`
	MaxVoltageV   float64 `json:"max_voltage_v"`
	MeanVoltageV  float64 `json:"mean_voltage_v"`
	FinalVoltageV float64 `json:"final_voltage_v"`
	FinalChargeC  float64 `json:"final_charge_c"`
	OnTimeS       float64 `json:"on_time_s"`
	OnFraction    float64 `json:"on_fraction"`
	LoadEnergyJ   float64 `json:"load_energy_j"`
}

// TraceRow represents one step in the simulation trace
type TraceRow struct {
	Index          int     `json:"index"`
	TimeS          float64 `json:"t_s"`
	VoltageV       float64 `json:"volts"`
	ChargeC        float64 `json:"charge_c"`
	SourceCurrentA float64 `json:"source_current_a"`
	LoadPowerW     float64 `json:"load_power_w"`
	LoadCurrentA   float64 `json:"load_current_a"`
	Mode           string  `json:"mode"` // "ON", "OFF"
}

// TraceResponse represents a stored run's trace
type TraceResponse struct {
	ID    string     `json:"id"`
	Trace []TraceRow `json:"trace"`
}

// SweepResponse represents the response from a load-power sweep
type SweepResponse struct {
	Rankings []SweepRanking `json:"rankings"`
}

// SweepRanking represents one swept load power
type SweepRanking struct {
	Rank       int        `json:"rank"`
	LoadPowerW float64    `json:"load_power_w"`
	Summary    SimSummary `json:"summary"`
}

// NodeInfo represents information about a node preset
type NodeInfo struct {
	ID    string    `json:"id"`
	Name  string    `json:"name"`
	File  string    `json:"file"`
	Specs NodeSpecs `json:"specs"`
}

// NodeSpecs contains headline node parameters
type NodeSpecs struct {
	CapacitanceF float64 `json:"capacitance_f"`
	OpenCircuitV float64 `json:"open_circuit_v"`
	LoadPowerW   float64 `json:"load_power_w"`
}

// SolverInfo represents information about an integrator
type SolverInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
