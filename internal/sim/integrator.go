package sim

import (
	"fmt"

	"solarcap-sim/internal/model"
)

// Integrator advances a node by one fixed time step.
type Integrator interface {
	Name() string
	Step(n *model.Node) (model.StepResult, error)
}

// QuadraticIntegrator is the canonical model: per-step quadratic
// node-voltage solve with load shedding and hysteresis.
type QuadraticIntegrator struct{}

func (QuadraticIntegrator) Name() string { return "quadratic" }

func (QuadraticIntegrator) Step(n *model.Node) (model.StepResult, error) {
	return n.Step()
}

// ApproxIntegrator is the fast approximate model: bare q/C terminal voltage
// with a post-hoc ESR drop. Useful for quick parameter scans.
type ApproxIntegrator struct{}

func (ApproxIntegrator) Name() string { return "approx" }

func (ApproxIntegrator) Step(n *model.Node) (model.StepResult, error) {
	return n.StepApprox()
}

// NewIntegrator resolves a solver name from config. An empty name selects the
// canonical quadratic solver.
func NewIntegrator(name string) (Integrator, error) {
	switch name {
	case "", "quadratic":
		return QuadraticIntegrator{}, nil
	case "approx":
		return ApproxIntegrator{}, nil
	default:
		return nil, fmt.Errorf("unsupported solver: %q", name)
	}
}
