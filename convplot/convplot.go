package convplot

import (
	"errors"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/polarkit/polar"
)

// ErrNoRecords is returned when the history is empty: nothing to plot.
var ErrNoRecords = errors.New("convplot: no records")

// logFloor keeps fully converged values (which can round to exactly
// zero) on the logarithmic axis.
const logFloor = 1e-16

// Canvas dimensions of saved charts.
const (
	defaultWidth  = 6 * vg.Inch
	defaultHeight = 4 * vg.Inch
)

// Line builds a log-scale chart with one line per diagnostic: the
// relative error and the orthonormality objective, both against the
// 1-based iteration index.
func Line(records []polar.Record, title string) (*plot.Plot, error) {
	if len(records) == 0 {
		return nil, ErrNoRecords
	}

	relerr := make(plotter.XYs, len(records))
	objective := make(plotter.XYs, len(records))
	for i, r := range records {
		x := float64(r.Iter)
		relerr[i] = plotter.XY{X: x, Y: floored(r.RelErr)}
		objective[i] = plotter.XY{X: x, Y: floored(r.Objective)}
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "iteration"
	p.Y.Label.Text = "magnitude"
	p.Y.Scale = plot.LogScale{}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}

	relLine, err := plotter.NewLine(relerr)
	if err != nil {
		return nil, err
	}
	objLine, err := plotter.NewLine(objective)
	if err != nil {
		return nil, err
	}
	objLine.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}

	p.Add(relLine, objLine, plotter.NewGrid())
	p.Legend.Add("relative error", relLine)
	p.Legend.Add("objective", objLine)
	p.Legend.Top = true

	return p, nil
}

// Save renders the chart to path; the format follows the file
// extension (png, pdf, svg, …) as understood by gonum/plot.
func Save(records []polar.Record, title, path string) error {
	p, err := Line(records, title)
	if err != nil {
		return err
	}

	return p.Save(defaultWidth, defaultHeight, path)
}

func floored(v float64) float64 {
	if v < logFloor {
		return logFloor
	}

	return v
}
