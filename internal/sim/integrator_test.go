package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solarcap-sim/internal/model"
)

func TestNewIntegrator(t *testing.T) {
	integ, err := NewIntegrator("")
	require.NoError(t, err)
	assert.Equal(t, "quadratic", integ.Name())

	integ, err = NewIntegrator("quadratic")
	require.NoError(t, err)
	assert.Equal(t, "quadratic", integ.Name())

	integ, err = NewIntegrator("approx")
	require.NoError(t, err)
	assert.Equal(t, "approx", integ.Name())

	_, err = NewIntegrator("rk4")
	assert.Error(t, err)
}

func TestApproxIntegrator_LinearUpdate(t *testing.T) {
	// Source power = 1 * 0.5 * 4 = 2 W. Starting at v = q/C = 4 V with the
	// 4 W load on (v >= 3 V threshold):
	//   step 1: i_in = 2/4 = 0.5, i_load = 4/4 = 1
	//           q = 8 + (0.5-1) = 7.5, esr drop = 0.5*(-0.5) = -0.25
	//           v = 4 + 0.25 = 4.25
	//   step 2: v_pre = 7.5/2 = 3.75, i_in = 0.5333, i_load = 1.0667
	//           q = 6.9667, v = 3.75 + 0.2667 = 4.0167
	p := model.NodeParams{
		ArrayAreaM2:    1,
		Efficiency:     0.5,
		OpenCircuitV:   4,
		CapacitanceF:   2,
		ESROhms:        0.5,
		InitialChargeC: 8,
		LoadPowerW:     4,
		VThreshV:       3,
		TimeStepS:      1,
		DurationS:      10,
	}
	n, err := model.NewNode(p)
	require.NoError(t, err)

	integ := ApproxIntegrator{}

	res, err := integ.Step(n)
	require.NoError(t, err)
	assert.InDelta(t, 7.5, res.ChargeC, 1e-9)
	assert.InDelta(t, 4.25, res.VoltageV, 1e-9)
	assert.Equal(t, 4.0, res.LoadPowerW)

	res, err = integ.Step(n)
	require.NoError(t, err)
	assert.InDelta(t, 6.9667, res.ChargeC, 1e-4)
	assert.InDelta(t, 4.0167, res.VoltageV, 1e-4)
}

func TestApproxIntegrator_LoadOffBelowThreshold(t *testing.T) {
	p := model.NodeParams{
		ArrayAreaM2:    1,
		Efficiency:     0.5,
		OpenCircuitV:   4,
		CapacitanceF:   2,
		ESROhms:        0.5,
		InitialChargeC: 2, // v = 1 V, under threshold
		LoadPowerW:     4,
		VThreshV:       3,
		TimeStepS:      1,
		DurationS:      10,
	}
	n, err := model.NewNode(p)
	require.NoError(t, err)

	res, err := ApproxIntegrator{}.Step(n)
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.LoadPowerW)
	assert.Equal(t, 0.0, res.LoadCurrentA)
	// Solar still charges: i_in = 2/1 = 2 A, q = 2 + 2 = 4 C.
	assert.InDelta(t, 4.0, res.ChargeC, 1e-9)
}
