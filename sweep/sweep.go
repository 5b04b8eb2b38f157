// Package sweep drives the area estimator over a schedule of sample counts,
// averaging repeated runs over the narrow and wide bounding boxes and handing
// one Row per sample count to a RowWriter.
package sweep

import (
	"github.com/pkg/errors"

	"github.com/gopheracademy/mcarea/geom"
	"github.com/gopheracademy/mcarea/montecarlo"
)

// Config is the sample-count schedule
type Config struct {
	Start int64 // first N
	End   int64 // last N, inclusive when reached by Step
	Step  int64
	Runs  int // estimates averaged per N and box
}

// DefaultConfig returns the schedule 100, 600, ..., 99600 with 10 runs each
func DefaultConfig() Config {
	return Config{Start: 100, End: 100000, Step: 500, Runs: 10}
}

// Validate checks that the schedule is non-empty and finite
func (c Config) Validate() error {
	switch {
	case c.Start < 1:
		return errors.Errorf("start must be positive, got %d", c.Start)
	case c.Step < 1:
		return errors.Errorf("step must be positive, got %d", c.Step)
	case c.End < c.Start:
		return errors.Errorf("end %d is before start %d", c.End, c.Start)
	case c.Runs < 1:
		return errors.Errorf("runs must be positive, got %d", c.Runs)
	}
	return nil
}

// Count returns the number of sample counts in the schedule
func (c Config) Count() int {
	if c.Validate() != nil {
		return 0
	}
	return int((c.End-c.Start)/c.Step) + 1
}

// Row is the averaged estimate for one sample count
type Row struct {
	N      int64
	Narrow float64
	Wide   float64
}

// RowWriter receives rows in increasing N order
type RowWriter interface {
	WriteRow(Row) error
}

// Sweeper runs the schedule against one set of circles
type Sweeper struct {
	Circles []geom.Circle
	Narrow  geom.Rect
	Wide    geom.Rect
	Config  Config

	// Source is shared by every estimate in the sweep, in call order
	Source montecarlo.Source

	// Progress, if set, is called before each sample count is processed
	Progress func(n int64)
}

// New returns a Sweeper over circles with boxes derived from them
func New(circles []geom.Circle, cfg Config, src montecarlo.Source) *Sweeper {
	return &Sweeper{
		Circles: circles,
		Narrow:  geom.NarrowBox(circles),
		Wide:    geom.WideBox(circles),
		Config:  cfg,
		Source:  src,
	}
}

// Run walks the schedule and writes one row per sample count to w.
// It stops at the first write error.
func (s *Sweeper) Run(w RowWriter) error {
	if err := s.Config.Validate(); err != nil {
		return errors.Wrap(err, "invalid sweep")
	}

	for n := s.Config.Start; n <= s.Config.End; n += s.Config.Step {
		if s.Progress != nil {
			s.Progress(n)
		}
		if err := w.WriteRow(s.average(n)); err != nil {
			return errors.Wrapf(err, "can't write row for N = %d", n)
		}
		if n > s.Config.End-s.Config.Step {
			break // n += Step would overflow or pass End
		}
	}
	return nil
}

// average interleaves narrow and wide estimates run by run
func (s *Sweeper) average(n int64) Row {
	var narrow, wide float64
	for i := 0; i < s.Config.Runs; i++ {
		narrow += montecarlo.Area(s.Circles, n, s.Narrow, s.Source)
		wide += montecarlo.Area(s.Circles, n, s.Wide, s.Source)
	}
	runs := float64(s.Config.Runs)
	return Row{N: n, Narrow: narrow / runs, Wide: wide / runs}
}
