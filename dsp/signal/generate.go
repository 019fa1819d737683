// Package signal generates deterministic position trajectories and noise for
// exercising and demonstrating the tracking filters.
package signal

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-smooth/dsp/core"
)

const defaultDT = 0.1

// Generator creates deterministic trajectories sampled at a fixed interval.
type Generator struct {
	dt   float64
	seed int64
}

// Option configures a Generator.
type Option func(*Generator) error

// WithSeed sets deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) error {
		g.seed = seed
		return nil
	}
}

// WithDT sets the sample interval. Must be finite and > 0.
func WithDT(dt float64) Option {
	return func(g *Generator) error {
		if err := core.ValidatePositive(dt, "dt"); err != nil {
			return fmt.Errorf("signal: %w", err)
		}
		g.dt = dt
		return nil
	}
}

// NewGenerator creates a configured generator. The defaults are dt = 0.1 and
// seed = 1.
func NewGenerator(opts ...Option) (*Generator, error) {
	g := &Generator{dt: defaultDT, seed: 1}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(g); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// DT returns the sample interval.
func (g *Generator) DT() float64 {
	return g.dt
}

// Seed returns the noise seed.
func (g *Generator) Seed() int64 {
	return g.seed
}

// ConstantVelocity returns steps positions of a point starting at origin and
// moving with constant velocity. Sample k is origin + velocity*dt*k.
func (g *Generator) ConstantVelocity(origin, velocity []float64, steps int) ([][]float64, error) {
	if steps <= 0 {
		return nil, fmt.Errorf("signal: steps must be > 0: %d", steps)
	}
	if len(origin) == 0 || len(origin) != len(velocity) {
		return nil, fmt.Errorf("signal: origin and velocity must have the same non-zero length: %d, %d", len(origin), len(velocity))
	}

	out := make([][]float64, steps)
	for k := range out {
		p := make([]float64, len(origin))
		t := g.dt * float64(k)
		for i := range p {
			p[i] = origin[i] + velocity[i]*t
		}
		out[k] = p
	}
	return out, nil
}

// Circle returns steps 2-D positions on a circle of the given radius, turning
// at omega radians per unit time.
func (g *Generator) Circle(radius, omega float64, steps int) ([][]float64, error) {
	if steps <= 0 {
		return nil, fmt.Errorf("signal: steps must be > 0: %d", steps)
	}
	if radius < 0 || !core.IsFinite(radius) || !core.IsFinite(omega) {
		return nil, fmt.Errorf("signal: circle radius must be finite and >= 0: %f", radius)
	}

	out := make([][]float64, steps)
	for k := range out {
		phi := omega * g.dt * float64(k)
		out[k] = []float64{radius * math.Cos(phi), radius * math.Sin(phi)}
	}
	return out, nil
}

// WhiteNoise generates deterministic white noise in [-amplitude, amplitude].
func (g *Generator) WhiteNoise(amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("signal: noise samples must be > 0: %d", samples)
	}
	if amplitude < 0 {
		return nil, fmt.Errorf("signal: noise amplitude must be >= 0: %f", amplitude)
	}
	out := make([]float64, samples)
	rng := rand.New(rand.NewSource(g.seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out, nil
}

// Noisy returns a copy of path with deterministic white noise of the given
// amplitude added to every element. Noise is drawn from WhiteNoise in path
// order, element by element.
func (g *Generator) Noisy(path [][]float64, amplitude float64) ([][]float64, error) {
	if amplitude < 0 {
		return nil, fmt.Errorf("signal: noise amplitude must be >= 0: %f", amplitude)
	}

	total := 0
	for _, p := range path {
		total += len(p)
	}

	out := make([][]float64, len(path))
	if total == 0 {
		for k, p := range path {
			out[k] = make([]float64, len(p))
		}
		return out, nil
	}

	noise, err := g.WhiteNoise(amplitude, total)
	if err != nil {
		return nil, err
	}

	for k, p := range path {
		q := make([]float64, len(p))
		for i, v := range p {
			q[i] = v + noise[0]
			noise = noise[1:]
		}
		out[k] = q
	}
	return out, nil
}
