package sim

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"solarcap-sim/internal/model"
)

// RenderVoltagePlot writes a voltage-vs-time line plot to path. The image
// format follows the file extension (png, svg, pdf).
func RenderVoltagePlot(path string, samples []model.Sample) error {
	if len(samples) == 0 {
		return fmt.Errorf("no samples to plot")
	}

	p := plot.New()
	p.Title.Text = "Node voltage"
	p.X.Label.Text = "t (s)"
	p.Y.Label.Text = "V"
	p.Add(plotter.NewGrid())

	xys := make(plotter.XYs, len(samples))
	for i, s := range samples {
		xys[i].X = s.TimeS
		xys[i].Y = s.VoltageV
	}

	line, err := plotter.NewLine(xys)
	if err != nil {
		return err
	}
	p.Add(line)

	return p.Save(8*vg.Inch, 4*vg.Inch, path)
}
