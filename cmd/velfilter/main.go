// Command velfilter demonstrates the constant-velocity tracking filter.
//
// Usage:
//
//	velfilter [flags]
//
// Without -track it replays the reference sequence: a 3-D filter tuned with
// gains (1, 0.99, 0, 0.99) at dt 0.1 corrects [2 2 2], corrects [1 1 1] and
// predicts twice, printing position and velocity after every step.
//
// With -track it filters a deterministic noisy trajectory and reports RMS
// position and velocity errors against the ground truth. The default path is
// a straight line; -path circle uses a 2-D circle, where the constant-velocity
// model lags the turning tangent.
//
// Examples:
//
//	velfilter
//	velfilter -track -steps 200 -noise 0.05
//	velfilter -track -dim 4 -legacy-bound -every 10
//	velfilter -track -path circle -radius 5 -omega 0.5
//	velfilter -track -value-correction 0.3 -velocity-correction 0.1
package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-smooth/dsp/core"
	"github.com/cwbudde/algo-smooth/dsp/filter/gain"
	"github.com/cwbudde/algo-smooth/dsp/filter/velocity"
	"github.com/cwbudde/algo-smooth/dsp/signal"
	"gonum.org/v1/gonum/floats"
)

const (
	pathLine   = "line"
	pathCircle = "circle"
)

type settings struct {
	track       bool
	path        string
	radius      float64
	omega       float64
	steps       int
	every       int
	dim         int
	dt          float64
	speed       float64
	noise       float64
	seed        int64
	legacyBound bool

	referenceDT        float64
	valuePrediction    float64
	valueCorrection    float64
	velocityPrediction float64
	velocityCorrection float64
}

func main() {
	var s settings

	flag.BoolVar(&s.track, "track", false, "filter a noisy constant-velocity trajectory instead of the reference sequence")
	flag.StringVar(&s.path, "path", pathLine, "trajectory in -track mode: line or circle (circle is 2-D and ignores -dim)")
	flag.Float64Var(&s.radius, "radius", 5, "circle radius for -path circle")
	flag.Float64Var(&s.omega, "omega", 0.5, "circle angular speed in rad/s for -path circle")
	flag.IntVar(&s.steps, "steps", 100, "number of observations in -track mode")
	flag.IntVar(&s.every, "every", 10, "print every n-th step in -track mode (0 prints only the summary)")
	flag.IntVar(&s.dim, "dim", 3, "vector dimension")
	flag.Float64Var(&s.dt, "dt", 0.1, "observation interval")
	flag.Float64Var(&s.speed, "speed", 2, "trajectory speed per axis in -track mode")
	flag.Float64Var(&s.noise, "noise", 0.05, "observation noise amplitude in -track mode")
	flag.Int64Var(&s.seed, "seed", 1, "noise seed")
	flag.BoolVar(&s.legacyBound, "legacy-bound", false, "extrapolate only the first three elements during prediction")
	flag.Float64Var(&s.referenceDT, "reference-dt", 0.1, "interval the gains are calibrated for")
	flag.Float64Var(&s.valuePrediction, "value-prediction", 1, "position prediction gain")
	flag.Float64Var(&s.valueCorrection, "value-correction", 0.99, "position correction gain")
	flag.Float64Var(&s.velocityPrediction, "velocity-prediction", 0, "velocity prediction gain")
	flag.Float64Var(&s.velocityCorrection, "velocity-correction", 0.99, "velocity correction gain")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: velfilter [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Demonstrates the constant-velocity tracking filter.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if err := run(os.Stdout, s); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(w io.Writer, s settings) error {
	if s.track && s.path == pathCircle {
		s.dim = 2
	}

	f, err := newFilter(s)
	if err != nil {
		return err
	}

	if !s.track {
		return replay(w, f, s.dt)
	}

	return track(w, f, s)
}

func newFilter(s settings) (*velocity.Filter[float64], error) {
	pair := func(g float64) gain.Params[float64] {
		return gain.Params[float64]{Gain: g, ReferenceDT: s.referenceDT}
	}

	cfg := velocity.Config[float64]{
		ValuePrediction:    pair(s.valuePrediction),
		ValueCorrection:    pair(s.valueCorrection),
		VelocityPrediction: pair(s.velocityPrediction),
		VelocityCorrection: pair(s.velocityCorrection),
	}

	var opts []velocity.Option
	if s.legacyBound {
		opts = append(opts, velocity.WithLegacyForecastBound())
	}

	return velocity.New(s.dim, cfg, opts...)
}

func replay(w io.Writer, f *velocity.Filter[float64], dt float64) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Step\tValues\tVelocity\n----\t------\t--------\n"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	steps := []struct {
		label    string
		observed []float64
	}{
		{label: "initial"},
		{label: "correct", observed: fill(2, f.Dim())},
		{label: "correct", observed: fill(1, f.Dim())},
		{label: "predict"},
		{label: "predict"},
	}

	for i, st := range steps {
		label := st.label
		switch {
		case st.observed != nil:
			f.Correct(dt, st.observed)
			label = fmt.Sprintf("%s %s", st.label, formatVec(st.observed))
		case i > 0:
			f.Predict(dt)
		}

		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\n", label, formatVec(f.Values()), formatVec(f.Velocity())); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	return tw.Flush()
}

// trackReport holds RMS errors against the ground truth trajectory.
type trackReport struct {
	positionRMS float64
	velocityRMS float64
	rawPosRMS   float64
	rawVelRMS   float64
}

func track(w io.Writer, f *velocity.Filter[float64], s settings) error {
	if s.steps <= 1 {
		return fmt.Errorf("steps must be > 1: %d", s.steps)
	}

	g, err := signal.NewGenerator(signal.WithDT(s.dt), signal.WithSeed(s.seed))
	if err != nil {
		return err
	}

	truth, truthVel, err := trajectory(g, s, f.Dim())
	if err != nil {
		return err
	}

	observed, err := g.Noisy(truth, s.noise)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if s.every > 0 {
		if _, err := fmt.Fprintf(tw, "Step\tObserved\tEstimate\tVelocity\n----\t--------\t--------\t--------\n"); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}

	var rep trackReport
	rawVel := make([]float64, f.Dim())
	for k, z := range observed {
		f.Correct(s.dt, z)

		rep.positionRMS += sq(floats.Distance(f.Values(), truth[k], 2))
		rep.rawPosRMS += sq(floats.Distance(z, truth[k], 2))
		if k > 0 {
			floats.SubTo(rawVel, z, observed[k-1])
			floats.Scale(1/s.dt, rawVel)
			rep.velocityRMS += sq(floats.Distance(f.Velocity(), truthVel[k], 2))
			rep.rawVelRMS += sq(floats.Distance(rawVel, truthVel[k], 2))
		}

		if s.every > 0 && k%s.every == 0 {
			if _, err := fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", k, formatVec(z), formatVec(f.Values()), formatVec(f.Velocity())); err != nil {
				return fmt.Errorf("write row: %w", err)
			}
		}
	}

	if !core.AllFinite(f.Values()) || !core.AllFinite(f.Velocity()) {
		return fmt.Errorf("estimate is not finite after %d steps: reduce -speed or -steps", s.steps)
	}

	rep.finish(s.steps)

	if err := tw.Flush(); err != nil {
		return err
	}

	return rep.write(w)
}

// trajectory returns steps ground-truth positions and the matching
// velocities for the selected path.
func trajectory(g *signal.Generator, s settings, dim int) ([][]float64, [][]float64, error) {
	switch s.path {
	case pathLine:
		v := make([]float64, dim)
		for i := range v {
			v[i] = s.speed
			if i%2 == 1 {
				v[i] = -s.speed / 2
			}
		}

		truth, err := g.ConstantVelocity(make([]float64, dim), v, s.steps)
		if err != nil {
			return nil, nil, err
		}

		vel := make([][]float64, s.steps)
		for k := range vel {
			vel[k] = v
		}

		return truth, vel, nil
	case pathCircle:
		truth, err := g.Circle(s.radius, s.omega, s.steps)
		if err != nil {
			return nil, nil, err
		}

		// Tangent of (r cos wt, r sin wt).
		vel := make([][]float64, s.steps)
		for k, p := range truth {
			vel[k] = []float64{-s.omega * p[1], s.omega * p[0]}
		}

		return truth, vel, nil
	default:
		return nil, nil, fmt.Errorf("unknown path %q: want %s or %s", s.path, pathLine, pathCircle)
	}
}

func (r *trackReport) finish(steps int) {
	n := float64(steps)
	r.positionRMS = math.Sqrt(r.positionRMS / n)
	r.rawPosRMS = math.Sqrt(r.rawPosRMS / n)
	r.velocityRMS = math.Sqrt(r.velocityRMS / (n - 1))
	r.rawVelRMS = math.Sqrt(r.rawVelRMS / (n - 1))
}

func (r *trackReport) write(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	lines := []string{
		"\nRMS error\tFiltered\tRaw",
		fmt.Sprintf("position\t%.6f\t%.6f", r.positionRMS, r.rawPosRMS),
		fmt.Sprintf("velocity\t%.6f\t%.6f", r.velocityRMS, r.rawVelRMS),
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(tw, line); err != nil {
			return fmt.Errorf("write summary: %w", err)
		}
	}
	return tw.Flush()
}

func fill(v float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func formatVec(v []float64) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = fmt.Sprintf("%.4f", x)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func sq(x float64) float64 { return x * x }
