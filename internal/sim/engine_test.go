package sim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solarcap-sim/internal/model"
)

func noLoadParams(dtS, durS float64) model.NodeParams {
	return model.NodeParams{
		ArrayAreaM2:    1,
		Efficiency:     0.2,
		OpenCircuitV:   5,
		CapacitanceF:   1,
		ESROhms:        0.1,
		InitialChargeC: 0,
		LoadPowerW:     0,
		VThreshV:       0,
		TimeStepS:      dtS,
		DurationS:      durS,
	}
}

func mustRun(t *testing.T, params model.NodeParams) *Result {
	t.Helper()
	n, err := model.NewNode(params)
	require.NoError(t, err)
	res, err := New().Run(n, QuadraticIntegrator{})
	require.NoError(t, err)
	return res
}

func TestEngineRun_SampleCount(t *testing.T) {
	cases := []struct {
		name string
		dtS  float64
		durS float64
		want int
	}{
		{"exact multiple", 1, 5, 6},
		{"zero duration", 1, 0, 1},
		{"fractional step", 0.3, 1, 4},
		{"accumulation drift", 0.1, 1, 11},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := mustRun(t, noLoadParams(tc.dtS, tc.durS))
			// floor(duration/dt) + 1, floats and all
			assert.Len(t, res.Samples, tc.want)
			assert.Len(t, res.Trace, tc.want)
		})
	}
}

func TestEngineRun_SampleTimes(t *testing.T) {
	res := mustRun(t, noLoadParams(0.3, 1))

	require.Len(t, res.Samples, 4)
	assert.Equal(t, 0.0, res.Samples[0].TimeS)
	for i := 1; i < len(res.Samples); i++ {
		gap := res.Samples[i].TimeS - res.Samples[i-1].TimeS
		assert.InDelta(t, 0.3, gap, 1e-9)
	}
	// The accumulated final time lands just short of the duration and is
	// not snapped to it.
	last := res.Samples[len(res.Samples)-1].TimeS
	assert.Less(t, last, 1.0)
	assert.InDelta(t, 0.9, last, 1e-9)
}

// The no-load reference scenario: Isc = 1366.1*0.2/5 = 54.644 A charges the
// 1 F capacitor in a single 1 s step, after which the node sits saturated at
// q/C + Isc*r = 54.644 + 5.4644 = 60.1084 V with the source current zeroed.
func TestEngineRun_NoLoadSaturates(t *testing.T) {
	res := mustRun(t, noLoadParams(1, 5))

	require.Len(t, res.Samples, 6)
	for i := 1; i < len(res.Samples); i++ {
		assert.GreaterOrEqual(t, res.Samples[i].VoltageV, res.Samples[i-1].VoltageV)
	}
	assert.InDelta(t, 60.1084, res.Samples[0].VoltageV, 1e-3)
	assert.InDelta(t, 60.1084, res.Samples[5].VoltageV, 1e-3)

	for _, row := range res.Trace {
		// v >= Voc every step, so the source is clamped every step.
		assert.Equal(t, 0.0, row.SourceCurrentA)
		// Once saturated no charge moves.
		assert.InDelta(t, 54.644, row.ChargeC, 1e-9)
	}
}

func TestEngineRun_ChargeAndVoltageNeverNegative(t *testing.T) {
	// No sun, heavy load: the node discharges to empty and stays there.
	p := model.NodeParams{
		ArrayAreaM2:    0,
		Efficiency:     1,
		OpenCircuitV:   10,
		CapacitanceF:   1,
		ESROhms:        0.1,
		InitialChargeC: 5,
		LoadPowerW:     10,
		VThreshV:       0,
		TimeStepS:      0.1,
		DurationS:      3,
	}
	res := mustRun(t, p)

	for _, row := range res.Trace {
		assert.GreaterOrEqual(t, row.ChargeC, 0.0)
		assert.GreaterOrEqual(t, row.VoltageV, 0.0)
		assert.False(t, math.IsNaN(row.VoltageV))
	}
}

func TestEngineRun_Deterministic(t *testing.T) {
	p := model.NodeParams{
		ArrayAreaM2:    0.05,
		Efficiency:     0.22,
		OpenCircuitV:   5.2,
		CapacitanceF:   10,
		ESROhms:        0.025,
		InitialChargeC: 12,
		LoadPowerW:     1.5,
		VThreshV:       3.1,
		TimeStepS:      0.5,
		DurationS:      120,
	}

	a := mustRun(t, p)
	b := mustRun(t, p)

	// Bit-identical, not merely close.
	require.Equal(t, a.Samples, b.Samples)
	require.Equal(t, a.Trace, b.Trace)
	require.Equal(t, a.Final, b.Final)
}

func TestSampleCapacity(t *testing.T) {
	assert.Equal(t, 6, sampleCapacity(5, 1))
	assert.Equal(t, 1, sampleCapacity(0, 1))
	assert.Equal(t, 4, sampleCapacity(1, 0.3))

	// Extreme but valid ratios overflow the float quotient; the hint is
	// capped instead of converting the overflow to a negative capacity.
	assert.Equal(t, 1<<20, sampleCapacity(1e300, 1e-300))
	assert.Equal(t, 1<<20, sampleCapacity(math.MaxFloat64, 1))
	assert.Equal(t, 0, sampleCapacity(math.NaN(), 1))
}

func TestEngineRun_NilArguments(t *testing.T) {
	n, err := model.NewNode(noLoadParams(1, 1))
	require.NoError(t, err)

	_, err = New().Run(nil, QuadraticIntegrator{})
	assert.Error(t, err)

	_, err = New().Run(n, nil)
	assert.Error(t, err)
}
