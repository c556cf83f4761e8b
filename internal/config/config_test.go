package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validNodeYAML = `node:
  name: test-node
  array_area_m2: 0.05
  efficiency: 0.22
  open_circuit_v: 5.2
  capacitance_f: 10
  esr_ohms: 0.025
  initial_charge_c: 12
  load_power_w: 1.5
  v_thresh_v: 3.1
  time_step_s: 0.5
  duration_s: 300
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_InlineNode(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yaml", validNodeYAML)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "test-node", cfg.Node.Name)
	assert.Equal(t, 10.0, cfg.Node.CapacitanceF)
	// Defaults fill in.
	assert.Equal(t, "quadratic", cfg.Solver.Name)
	assert.Equal(t, "log.csv", cfg.Output.LogCSV)
}

func TestLoad_NodeFileWithOverride(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "base.yaml", validNodeYAML)
	cfgPath := writeFile(t, dir, "config.yaml", `node_file: base.yaml
node:
  load_power_w: 4.0
solver:
  name: approx
`)

	cfg, err := Load(cfgPath)
	require.NoError(t, err)

	// Base values survive, the override wins where set.
	assert.Equal(t, "test-node", cfg.Node.Name)
	assert.Equal(t, 4.0, cfg.Node.LoadPowerW)
	assert.Equal(t, 0.025, cfg.Node.ESROhms)
	assert.Equal(t, "approx", cfg.Solver.Name)
}

func TestLoad_RejectsInvalidNode(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yaml", `node:
  array_area_m2: 1
  efficiency: 2.0
  open_circuit_v: 5
  capacitance_f: 1
  time_step_s: 1
  duration_s: 5
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "node config invalid")
}

func TestLoad_RejectsUnknownSolver(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yaml", validNodeYAML+`solver:
  name: rk4
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported solver")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestMergeNode_ZeroFieldsKeepBase(t *testing.T) {
	base := NodeConfig{Name: "base", CapacitanceF: 10, ESROhms: 0.1, TimeStepS: 1, DurationS: 5}
	out := MergeNode(base, NodeConfig{CapacitanceF: 20})

	assert.Equal(t, "base", out.Name)
	assert.Equal(t, 20.0, out.CapacitanceF)
	assert.Equal(t, 0.1, out.ESROhms)
	assert.Equal(t, 5.0, out.DurationS)
}
