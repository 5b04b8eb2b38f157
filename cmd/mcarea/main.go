// Command mcarea estimates the area common to three circles by Monte Carlo
// sampling and writes the estimates for a sweep of sample counts as CSV.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"strconv"

	"github.com/cheggaaa/pb/v3"
	"github.com/pkg/errors"

	"github.com/gopheracademy/mcarea/geom"
	"github.com/gopheracademy/mcarea/montecarlo"
	"github.com/gopheracademy/mcarea/sweep"
)

const usage = `usage: %s [options] < circles

Read three circles as "x1 y1 r1 x2 y2 r2 x3 y3 r3" from standard input and
estimate the area of their intersection over the narrow and wide bounding
boxes for each sample count in the sweep.

Options:
`

var config struct {
	output   string
	plot     string
	seed     uint64
	progress bool
	sweep    sweep.Config
}

func main() {
	log.SetPrefix("mcarea: ")
	log.SetFlags(0)

	flag.StringVar(&config.output, "o", config.output, "output CSV file")
	flag.StringVar(&config.plot, "plot", "", "also plot the sweep to this image file")
	flag.Uint64Var(&config.seed, "seed", config.seed, "generator seed")
	flag.BoolVar(&config.progress, "progress", false, "show a progress bar on stderr")
	flag.Var(PositiveVar(&config.sweep.Start), "start", "first sample count")
	flag.Var(PositiveVar(&config.sweep.End), "end", "last sample count")
	flag.Var(PositiveVar(&config.sweep.Step), "step", "sample count increment")
	flag.Var(PositiveIntVar(&config.sweep.Runs), "runs", "runs averaged per sample count")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), usage, os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if config.seed > math.MaxUint32 {
		log.Fatalf("error: seed %d out of range [0:%d]", config.seed, uint32(math.MaxUint32))
	}

	if err := run(os.Stdin, os.Stdout); err != nil {
		log.Fatalf("error: %s", err)
	}
}

func run(in io.Reader, status io.Writer) error {
	if err := config.sweep.Validate(); err != nil {
		return err
	}

	circles, err := geom.ReadCircles(in, 3)
	if err != nil {
		return errors.Wrap(err, "can't read circles")
	}

	file, err := os.Create(config.output)
	if err != nil {
		return errors.Wrap(err, "can't create output file")
	}
	defer file.Close()

	s := sweep.New(circles, config.sweep, montecarlo.NewSource(uint32(config.seed)))

	var bar *pb.ProgressBar
	if config.progress {
		bar = pb.New(config.sweep.Count()).SetWriter(os.Stderr).Start()
	}
	s.Progress = func(n int64) {
		fmt.Fprintf(status, "Processing N = %d\n", n)
		if bar != nil {
			bar.Increment()
		}
	}

	out := sweep.NewCSVWriter(file)
	var series *sweep.Series
	var w sweep.RowWriter = out
	if config.plot != "" {
		series = sweep.NewSeries()
		w = sweep.MultiWriter(out, series)
	}

	err = s.Run(w)
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		return err
	}

	if err := out.Flush(); err != nil {
		return err
	}
	if err := file.Close(); err != nil {
		return errors.Wrap(err, "can't close output file")
	}

	if series != nil {
		if err := series.Plot(config.plot); err != nil {
			return err
		}
	}

	fmt.Fprintln(status, "OK")
	return nil
}

// PositiveVar returns a flag.Value storing a positive int64 in n
func PositiveVar(n *int64) *positiveVar {
	return &positiveVar{n}
}

type positiveVar struct {
	n *int64
}

func (p *positiveVar) String() string {
	if p.n == nil {
		return ""
	}

	return strconv.FormatInt(*p.n, 10)
}

func (p *positiveVar) Set(s string) error {
	val, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return err
	}

	if val < 1 {
		return fmt.Errorf("%d is not positive", val)
	}

	*p.n = val
	return nil
}

// PositiveIntVar is PositiveVar for an int
func PositiveIntVar(n *int) *positiveIntVar {
	return &positiveIntVar{n}
}

type positiveIntVar struct {
	n *int
}

func (p *positiveIntVar) String() string {
	if p.n == nil {
		return ""
	}

	return strconv.Itoa(*p.n)
}

func (p *positiveIntVar) Set(s string) error {
	val, err := strconv.Atoi(s)
	if err != nil {
		return err
	}

	if val < 1 {
		return fmt.Errorf("%d is not positive", val)
	}

	*p.n = val
	return nil
}

func init() {
	// Set defaults
	config.sweep = sweep.DefaultConfig()

	if o := os.Getenv("MCAREA_OUTPUT"); len(o) > 0 {
		config.output = o
	} else {
		config.output = "data.csv"
	}

	s := os.Getenv("MCAREA_SEED")
	seed, err := strconv.ParseUint(s, 10, 32)
	if err == nil {
		config.seed = seed
	} else {
		config.seed = montecarlo.DefaultSeed
	}
}
