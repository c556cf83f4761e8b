package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"solarcap-sim/internal/model"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	// Optional: load node parameters from a separate YAML (e.g. examples/nodes/*.yaml).
	// If both NodeFile and Node are provided, Node overrides NodeFile.
	NodeFile string       `yaml:"node_file"`
	Node     NodeConfig   `yaml:"node"`
	Solver   SolverConfig `yaml:"solver"`
	Output   OutputConfig `yaml:"output"`
}

type NodeConfig struct {
	Name           string  `yaml:"name"`
	ArrayAreaM2    float64 `yaml:"array_area_m2"`
	Efficiency     float64 `yaml:"efficiency"`
	OpenCircuitV   float64 `yaml:"open_circuit_v"`
	CapacitanceF   float64 `yaml:"capacitance_f"`
	ESROhms        float64 `yaml:"esr_ohms"`
	InitialChargeC float64 `yaml:"initial_charge_c"`
	LoadPowerW     float64 `yaml:"load_power_w"`
	VThreshV       float64 `yaml:"v_thresh_v"`
	TimeStepS      float64 `yaml:"time_step_s"`
	DurationS      float64 `yaml:"duration_s"`
}

type SolverConfig struct {
	// Name selects the integrator: "quadratic" (default) or "approx".
	Name string `yaml:"name"`
}

type OutputConfig struct {
	// LogCSV is the (t_s, volts) series path. Defaults to log.csv.
	LogCSV string `yaml:"log_csv"`
	// TraceCSV, if set, receives the full per-step trace.
	TraceCSV string `yaml:"trace_csv"`
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if c.Solver.Name == "" {
		c.Solver.Name = "quadratic"
	}
	if c.Output.LogCSV == "" {
		c.Output.LogCSV = "log.csv"
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	if c.NodeFile != "" {
		nodePath := c.NodeFile
		if !filepath.IsAbs(nodePath) {
			// Prefer interpreting relative paths as relative to the config file directory,
			// but fall back to the provided path (relative to cwd) if that doesn't exist.
			cand := filepath.Join(filepath.Dir(path), nodePath)
			if _, err := os.Stat(cand); err == nil {
				nodePath = cand
			}
		}
		loaded, err := LoadNodeFile(nodePath)
		if err != nil {
			return nil, err
		}
		c.Node = MergeNode(loaded, c.Node)
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	// Validate node params by constructing a model.Node.
	if _, err := model.NewNode(c.Node.ToModelParams()); err != nil {
		return fmt.Errorf("node config invalid: %w", err)
	}
	switch c.Solver.Name {
	case "", "quadratic", "approx":
	default:
		return fmt.Errorf("unsupported solver: %q", c.Solver.Name)
	}
	return nil
}

func (n NodeConfig) ToModelParams() model.NodeParams {
	return model.NodeParams{
		ArrayAreaM2:    n.ArrayAreaM2,
		Efficiency:     n.Efficiency,
		OpenCircuitV:   n.OpenCircuitV,
		CapacitanceF:   n.CapacitanceF,
		ESROhms:        n.ESROhms,
		InitialChargeC: n.InitialChargeC,
		LoadPowerW:     n.LoadPowerW,
		VThreshV:       n.VThreshV,
		TimeStepS:      n.TimeStepS,
		DurationS:      n.DurationS,
	}
}

type nodeFileWrapper struct {
	Node NodeConfig `yaml:"node"`
}

// LoadNodeFile reads a standalone node parameter file of the shape
// `node: {...}`.
func LoadNodeFile(path string) (NodeConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return NodeConfig{}, err
	}
	var w nodeFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return NodeConfig{}, err
	}
	return w.Node, nil
}

// MergeNode overlays non-zero fields from override onto base.
// This is used when loading a node file and then applying overrides from the
// config or an API request.
func MergeNode(base, override NodeConfig) NodeConfig {
	out := base
	if override.Name != "" {
		out.Name = override.Name
	}
	if override.ArrayAreaM2 != 0 {
		out.ArrayAreaM2 = override.ArrayAreaM2
	}
	if override.Efficiency != 0 {
		out.Efficiency = override.Efficiency
	}
	if override.OpenCircuitV != 0 {
		out.OpenCircuitV = override.OpenCircuitV
	}
	if override.CapacitanceF != 0 {
		out.CapacitanceF = override.CapacitanceF
	}
	if override.ESROhms != 0 {
		out.ESROhms = override.ESROhms
	}
	// Note: zero is meaningful for charge, load power and threshold; node
	// files spell those out and overrides leave them alone unless set.
	if override.InitialChargeC != 0 {
		out.InitialChargeC = override.InitialChargeC
	}
	if override.LoadPowerW != 0 {
		out.LoadPowerW = override.LoadPowerW
	}
	if override.VThreshV != 0 {
		out.VThreshV = override.VThreshV
	}
	if override.TimeStepS != 0 {
		out.TimeStepS = override.TimeStepS
	}
	if override.DurationS != 0 {
		out.DurationS = override.DurationS
	}
	return out
}
