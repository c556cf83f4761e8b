package model

// Sample is one (time, voltage) pair of the emitted series.
// Samples are produced in non-decreasing time order, one per step
// including t=0.
type Sample struct {
	TimeS    float64 `json:"t_s"`
	VoltageV float64 `json:"volts"`
}
