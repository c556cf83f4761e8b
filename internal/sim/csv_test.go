package sim

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solarcap-sim/internal/model"
)

func TestWriteLogCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.csv")
	samples := []model.Sample{
		{TimeS: 0, VoltageV: 1.5},
		{TimeS: 1, VoltageV: 2.25},
		{TimeS: 2, VoltageV: 0},
	}

	require.NoError(t, WriteLogCSV(path, samples))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	require.Len(t, rows, 4)
	assert.Equal(t, []string{"t_s", "volts"}, rows[0])
	assert.Equal(t, []string{"0", "1.5"}, rows[1])
	assert.Equal(t, []string{"1", "2.25"}, rows[2])
	assert.Equal(t, []string{"2", "0"}, rows[3])
}

func TestWriteLogCSV_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.csv")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0o644))

	require.NoError(t, WriteLogCSV(path, []model.Sample{{TimeS: 0, VoltageV: 3}}))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "t_s,volts\n0,3\n", string(raw))
}

func TestWriteTraceCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.csv")
	trace := []TraceRow{
		{Index: 0, TimeS: 0, VoltageV: 4.25, ChargeC: 7.5, SourceCurrentA: 0.5, LoadPowerW: 4, LoadCurrentA: 1, Mode: model.ModeOn},
	}

	require.NoError(t, WriteTraceCSV(path, trace))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	require.Len(t, rows, 2)
	assert.Equal(t, []string{
		"index", "t_s", "volts", "charge_c", "source_current_a", "load_power_w", "load_current_a", "mode",
	}, rows[0])
	assert.Equal(t, []string{
		"0", "0.000000", "4.250000", "7.500000", "0.500000", "4.000000", "1.000000", "ON",
	}, rows[1])
}
