package sim

import (
	"encoding/csv"
	"os"
	"strconv"

	"solarcap-sim/internal/model"
)

// WriteLogCSV writes the (t_s, volts) series in emission order, overwriting
// any existing file. Header and column order are a compatibility contract
// with downstream consumers of log.csv.
func WriteLogCSV(path string, samples []model.Sample) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"t_s", "volts"}); err != nil {
		return err
	}
	for _, s := range samples {
		row := []string{
			strconv.FormatFloat(s.TimeS, 'g', -1, 64),
			strconv.FormatFloat(s.VoltageV, 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

// WriteTraceCSV writes the full per-step trace.
func WriteTraceCSV(path string, trace []TraceRow) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"index",
		"t_s",
		"volts",
		"charge_c",
		"source_current_a",
		"load_power_w",
		"load_current_a",
		"mode",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range trace {
		row := []string{
			strconv.Itoa(r.Index),
			fmtFloat(r.TimeS),
			fmtFloat(r.VoltageV),
			fmtFloat(r.ChargeC),
			fmtFloat(r.SourceCurrentA),
			fmtFloat(r.LoadPowerW),
			fmtFloat(r.LoadCurrentA),
			string(r.Mode),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
