package model

import (
	"errors"
	"fmt"
	"math"
)

// SolarIrradianceWM2 is the insolation assumed at the array, W/m^2.
// Solar constant at 1 AU; the model does not attenuate for atmosphere
// or incidence angle.
const SolarIrradianceWM2 = 1366.1

// Error kinds surfaced by the model. Parameter problems are caught before
// the first step; domain errors abort a run mid-flight.
var (
	ErrInvalidParameter = errors.New("invalid parameter")
	ErrArithmeticDomain = errors.New("arithmetic domain error")
)

// NodeParams defines the physical parameters of the storage node.
// Units:
// - ArrayAreaM2: m^2
// - Efficiency: 0..1
// - OpenCircuitV: V
// - CapacitanceF: F
// - ESROhms: ohms (equivalent series resistance of the capacitor)
// - InitialChargeC: C
// - LoadPowerW: W drawn by the load when on
// - VThreshV: V below which the load switches off
// - TimeStepS, DurationS: s
type NodeParams struct {
	ArrayAreaM2    float64
	Efficiency     float64
	OpenCircuitV   float64
	CapacitanceF   float64
	ESROhms        float64
	InitialChargeC float64
	LoadPowerW     float64
	VThreshV       float64
	TimeStepS      float64
	DurationS      float64
}

func (p NodeParams) Validate() error {
	// NaN compares false against every bound below, so it has to be caught
	// up front or it slips through into the solve.
	for _, v := range []float64{
		p.ArrayAreaM2, p.Efficiency, p.OpenCircuitV, p.CapacitanceF,
		p.ESROhms, p.InitialChargeC, p.LoadPowerW, p.VThreshV,
		p.TimeStepS, p.DurationS,
	} {
		if math.IsNaN(v) {
			return fmt.Errorf("%w: parameters must not be NaN", ErrInvalidParameter)
		}
	}
	if p.Efficiency <= 0 || p.Efficiency > 1 {
		return fmt.Errorf("%w: Efficiency must be in (0, 1]", ErrInvalidParameter)
	}
	if p.ArrayAreaM2 < 0 || p.InitialChargeC < 0 || p.LoadPowerW < 0 || p.VThreshV < 0 || p.DurationS < 0 || p.ESROhms < 0 {
		return fmt.Errorf("%w: all parameters must be non-negative", ErrInvalidParameter)
	}
	// A zero time step would never reach the duration bound.
	if p.TimeStepS <= 0 {
		return fmt.Errorf("%w: TimeStepS must be > 0", ErrInvalidParameter)
	}
	// Both divide the node-voltage solve / source-current derivation.
	if p.CapacitanceF <= 0 {
		return fmt.Errorf("%w: CapacitanceF must be > 0", ErrInvalidParameter)
	}
	if p.OpenCircuitV <= 0 {
		return fmt.Errorf("%w: OpenCircuitV must be > 0", ErrInvalidParameter)
	}
	return nil
}

// NodeState captures mutable simulation state. It has a single owner and a
// single mutator (the stepping functions on Node).
type NodeState struct {
	// TimeS is elapsed simulation time in seconds.
	TimeS float64
	// ChargeC is the charge stored on the capacitor, never negative.
	ChargeC float64
	// SourceCurrentA is the current the array delivers into the node for the
	// next integration interval. Zeroed once the node saturates at Voc.
	SourceCurrentA float64
	// LoadPowerW is the power mode: 0 when the load is off, the configured
	// on-state power when on. Never interpolated.
	LoadPowerW float64
	// VoltageV is the node voltage from the most recent solve.
	VoltageV float64
}

// Node bundles params + state for one solar-charged capacitor node.
type Node struct {
	Params NodeParams
	State  NodeState

	// IscA is the short-circuit-equivalent source current,
	// irradiance * area * efficiency / Voc.
	IscA float64
}

// NewNode validates params and computes the initial operating point: the node
// voltage is solved with the on-state load applied; if that draw cannot be
// sustained, or the resulting voltage sits below the turn-on threshold, the
// load starts off.
func NewNode(params NodeParams) (*Node, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	n := &Node{
		Params: params,
		IscA:   SolarIrradianceWM2 * params.ArrayAreaM2 * params.Efficiency / params.OpenCircuitV,
	}
	n.State = NodeState{
		ChargeC:        params.InitialChargeC,
		SourceCurrentA: n.IscA,
		LoadPowerW:     params.LoadPowerW,
	}

	v, pEff, err := solveNodeVoltage(n.State.ChargeC, params.CapacitanceF, n.State.SourceCurrentA, params.ESROhms, n.State.LoadPowerW)
	if err != nil {
		return nil, err
	}
	n.State.VoltageV = v
	n.State.LoadPowerW = pEff
	if v < params.VThreshV {
		n.State.LoadPowerW = 0
	}
	return n, nil
}

// StepResult captures what happened in one time step, keyed by the time at
// which the sample is emitted (before the step advances the clock).
type StepResult struct {
	TimeS          float64
	VoltageV       float64
	ChargeC        float64
	SourceCurrentA float64
	LoadPowerW     float64
	LoadCurrentA   float64
}

// Step advances the node by exactly one time step. The stage order is load
// bearing; reordering changes the emitted series:
//  1. load current from the previous voltage (guarded against v=0)
//  2. charge integration, clamped at zero
//  3. source current reset to Isc
//  4. turn-on hysteresis: off and previous v >= Voc switches the load on
//  5. node-voltage re-solve, shedding the load if it cannot be sustained
//  6. source-current clamp once the node reaches Voc (affects the next
//     step's integration only)
//  7. turn-off hysteresis: v below threshold forces the load off
//
// The turn-on check against Voc and turn-off check against VThreshV are
// asymmetric on purpose; the node recharges to full before the load is
// allowed back on.
func (n *Node) Step() (StepResult, error) {
	p := n.Params
	s := &n.State

	iLoad := 0.0
	if s.VoltageV > 0 {
		iLoad = s.LoadPowerW / s.VoltageV
	}

	s.ChargeC += (s.SourceCurrentA - iLoad) * p.TimeStepS
	if s.ChargeC < 0 {
		s.ChargeC = 0
	}

	s.SourceCurrentA = n.IscA

	if s.LoadPowerW == 0 && s.VoltageV >= p.OpenCircuitV {
		s.LoadPowerW = p.LoadPowerW
	}

	v, pEff, err := solveNodeVoltage(s.ChargeC, p.CapacitanceF, s.SourceCurrentA, p.ESROhms, s.LoadPowerW)
	if err != nil {
		return StepResult{}, err
	}
	s.VoltageV = v
	s.LoadPowerW = pEff

	if p.OpenCircuitV <= v && s.SourceCurrentA != 0 {
		s.SourceCurrentA = 0
	}
	if v < p.VThreshV {
		s.LoadPowerW = 0
	}

	res := StepResult{
		TimeS:          s.TimeS,
		VoltageV:       s.VoltageV,
		ChargeC:        s.ChargeC,
		SourceCurrentA: s.SourceCurrentA,
		LoadPowerW:     s.LoadPowerW,
		LoadCurrentA:   iLoad,
	}
	s.TimeS += p.TimeStepS
	return res, nil
}
