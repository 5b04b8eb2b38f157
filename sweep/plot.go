package sweep

import (
	"image/color"

	"github.com/pkg/errors"
	"go-hep.org/x/hep/hbook"
	"go-hep.org/x/hep/hplot"
	"gonum.org/v1/plot/vg"
)

// Series collects sweep rows as (N, area) scatters for plotting
type Series struct {
	Narrow *hbook.S2D
	Wide   *hbook.S2D
}

// NewSeries returns an empty Series
func NewSeries() *Series {
	return &Series{
		Narrow: hbook.NewS2D(),
		Wide:   hbook.NewS2D(),
	}
}

// WriteRow implements RowWriter
func (s *Series) WriteRow(r Row) error {
	x := float64(r.N)
	s.Narrow.Fill(hbook.Point2D{X: x, Y: r.Narrow})
	s.Wide.Fill(hbook.Point2D{X: x, Y: r.Wide})
	return nil
}

// Plot renders both series against N and saves the figure to fname.
// The format follows the file extension.
func (s *Series) Plot(fname string) error {
	p := hplot.New()
	p.Title.Text = "Monte Carlo intersection area"
	p.X.Label.Text = "N"
	p.Y.Label.Text = "area"

	narrow := hplot.NewS2D(s.Narrow)
	narrow.GlyphStyle.Color = color.NRGBA{255, 0, 0, 255} // red
	narrow.GlyphStyle.Radius = vg.Points(1.5)

	wide := hplot.NewS2D(s.Wide)
	wide.GlyphStyle.Color = color.NRGBA{0, 0, 255, 255} // blue
	wide.GlyphStyle.Radius = vg.Points(1.5)

	p.Add(narrow, wide, hplot.NewGrid())
	p.Legend.Add("narrow", narrow)
	p.Legend.Add("wide", wide)
	p.Legend.Top = true

	const (
		width  = 20 * vg.Centimeter
		height = -1 // choose height automatically
	)
	return errors.Wrap(p.Save(width, height, fname), "can't save plot")
}
