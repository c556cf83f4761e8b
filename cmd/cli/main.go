package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"solarcap-sim/internal/analysis"
	"solarcap-sim/internal/config"
	"solarcap-sim/internal/model"
	"solarcap-sim/internal/sim"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "run":
		cmdRun(os.Args[2:])
	case "sweep":
		cmdSweep(os.Args[2:])
	case "plot":
		cmdPlot(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli run --config examples/config.yaml [--out log.csv] [--trace trace.csv]")
	fmt.Println("  cli run sa_m2 eff voc c_f r_esr q0_c p_on_w v_thresh dt_s dur_s")
	fmt.Println("  cli sweep --config examples/config.yaml --powers 0.5,1,2,5")
	fmt.Println("  cli plot --config examples/config.yaml --out voltage.png")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - run writes the (t_s, volts) series as CSV; the positional form matches")
	fmt.Println("    the classic ten-argument invocation and writes ./log.csv")
	fmt.Println("  - sweep ranks on-state load powers by achieved on-time fraction")
}

func cmdRun(args []string) {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config")
	outPath := fs.String("out", "log.csv", "Output CSV path for the (t_s, volts) series")
	tracePath := fs.String("trace", "", "Optional output CSV path for the full trace")
	solverName := fs.String("solver", "", "Integrator override: quadratic or approx")
	_ = fs.Parse(args)

	var (
		params model.NodeParams
		solver string
		out    = *outPath
		trace  = *tracePath
	)

	switch {
	case fs.NArg() == 10:
		p, err := parsePositional(fs.Args())
		if err != nil {
			fail(err)
		}
		params = p
	case *cfgPath != "":
		cfg, err := config.Load(*cfgPath)
		if err != nil {
			fail(err)
		}
		params = cfg.Node.ToModelParams()
		solver = cfg.Solver.Name
		if *outPath == "log.csv" && cfg.Output.LogCSV != "" {
			out = cfg.Output.LogCSV
		}
		if trace == "" {
			trace = cfg.Output.TraceCSV
		}
	default:
		fmt.Println("run needs either --config or the ten positional parameters")
		usage()
		os.Exit(2)
	}
	if *solverName != "" {
		solver = *solverName
	}

	// Validation happens here, before any output file is touched.
	node, err := model.NewNode(params)
	if err != nil {
		fail(err)
	}
	integ, err := sim.NewIntegrator(solver)
	if err != nil {
		fail(err)
	}

	result, err := sim.New().Run(node, integ)
	if err != nil {
		fail(err)
	}

	if err := sim.WriteLogCSV(out, result.Samples); err != nil {
		fail(err)
	}
	if trace != "" {
		if err := sim.WriteTraceCSV(trace, result.Trace); err != nil {
			fail(err)
		}
	}

	summary := analysis.Summarize(result.Trace, params.TimeStepS)
	fmt.Printf("Wrote %d samples to %s\n", len(result.Samples), out)
	fmt.Printf("Final V=%.4f  On fraction=%.3f  Load energy=%.2f J\n",
		summary.FinalVoltageV, summary.OnFraction, summary.LoadEnergyJ)
}

func cmdSweep(args []string) {
	fs := flag.NewFlagSet("sweep", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config")
	powers := fs.String("powers", "", "Comma-separated on-state load powers in watts")
	_ = fs.Parse(args)

	if *cfgPath == "" || *powers == "" {
		fmt.Println("--config and --powers are required")
		os.Exit(2)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fail(err)
	}
	integ, err := sim.NewIntegrator(cfg.Solver.Name)
	if err != nil {
		fail(err)
	}

	powersW, err := parsePowers(*powers)
	if err != nil {
		fail(err)
	}

	ranked, err := analysis.SweepLoadPower(cfg.Node.ToModelParams(), powersW, integ)
	if err != nil {
		fail(err)
	}

	fmt.Printf("%-4s %-10s %-10s %-10s %-12s\n", "rank", "p_on_w", "on-frac", "final_v", "load_j")
	for i, r := range ranked {
		fmt.Printf("%-4d %-10.3f %-10.3f %-10.4f %-12.2f\n",
			i+1,
			r.LoadPowerW,
			r.Summary.OnFraction,
			r.Summary.FinalVoltageV,
			r.Summary.LoadEnergyJ,
		)
	}
}

func cmdPlot(args []string) {
	fs := flag.NewFlagSet("plot", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config")
	outPath := fs.String("out", "voltage.png", "Output image path (png, svg or pdf)")
	_ = fs.Parse(args)

	if *cfgPath == "" {
		fmt.Println("--config is required")
		os.Exit(2)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fail(err)
	}
	node, err := model.NewNode(cfg.Node.ToModelParams())
	if err != nil {
		fail(err)
	}
	integ, err := sim.NewIntegrator(cfg.Solver.Name)
	if err != nil {
		fail(err)
	}

	result, err := sim.New().Run(node, integ)
	if err != nil {
		fail(err)
	}
	if err := sim.RenderVoltagePlot(*outPath, result.Samples); err != nil {
		fail(err)
	}
	fmt.Printf("Wrote plot of %d samples to %s\n", len(result.Samples), *outPath)
}

// parsePositional maps the classic ten-argument invocation onto NodeParams:
// sa_m2 eff voc c_f r_esr q0_c p_on_w v_thresh dt_s dur_s.
func parsePositional(args []string) (model.NodeParams, error) {
	vals := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return model.NodeParams{}, fmt.Errorf("argument %d (%q) is not a number", i+1, a)
		}
		vals[i] = v
	}
	return model.NodeParams{
		ArrayAreaM2:    vals[0],
		Efficiency:     vals[1],
		OpenCircuitV:   vals[2],
		CapacitanceF:   vals[3],
		ESROhms:        vals[4],
		InitialChargeC: vals[5],
		LoadPowerW:     vals[6],
		VThreshV:       vals[7],
		TimeStepS:      vals[8],
		DurationS:      vals[9],
	}, nil
}

func parsePowers(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid power %q", p)
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no powers given")
	}
	return out, nil
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(1)
}
