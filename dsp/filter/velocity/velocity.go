package velocity

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-smooth/dsp/core"
	"github.com/cwbudde/algo-smooth/dsp/filter/observe"
)

// Filter is a constant-velocity predictor-corrector over vectors of fixed
// length.
//
// Values and Velocity mirror the inner position and velocity filters after
// every call. The filter is uninitialized until the first Correct and
// tracking from then on; only Reset returns it to uninitialized.
type Filter[T core.Float] struct {
	values   []T
	velocity []T

	valueFilter    observe.Filter[T]
	velocityFilter observe.Filter[T]

	lastMeasurement    []T
	hasLastMeasurement bool
	predictedVelocity  []T

	// forecast and observed are per-call scratch, allocated once.
	forecast []T
	observed []T

	forecastDims  int
	minVelocityDT float64
}

// New returns a filter of dimension n with zero position, velocity and
// predicted velocity.
func New[T core.Float](n int, cfg Config[T], opts ...Option) (*Filter[T], error) {
	if n <= 0 {
		return nil, fmt.Errorf("velocity: dimension must be > 0: %d", n)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("velocity: %w", err)
	}

	o := defaultOptions()
	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&o); err != nil {
			return nil, fmt.Errorf("velocity: %w", err)
		}
	}

	valueFilter, err := observe.New(n, cfg.ValuePrediction, cfg.ValueCorrection)
	if err != nil {
		return nil, fmt.Errorf("velocity: value: %w", err)
	}

	velocityFilter, err := observe.New(n, cfg.VelocityPrediction, cfg.VelocityCorrection)
	if err != nil {
		return nil, fmt.Errorf("velocity: velocity: %w", err)
	}

	forecastDims := n
	if o.legacyBound {
		forecastDims = min(n, legacyForecastDims)
	}

	return &Filter[T]{
		values:            make([]T, n),
		velocity:          make([]T, n),
		valueFilter:       *valueFilter,
		velocityFilter:    *velocityFilter,
		lastMeasurement:   make([]T, n),
		predictedVelocity: make([]T, n),
		forecast:          make([]T, n),
		observed:          make([]T, n),
		forecastDims:      forecastDims,
		minVelocityDT:     o.minVelocityDT,
	}, nil
}

// Predict advances the estimate by dt: position is extrapolated by
// velocity*dt and velocity is blended toward PredictedVelocity.
func (f *Filter[T]) Predict(dt float64) {
	copy(f.forecast, f.values)
	for i := range f.forecastDims {
		step := float64(float64(f.velocity[i]) * dt)
		f.forecast[i] = T(float64(f.values[i]) + step)
	}

	f.valueFilter.Predict(dt, f.forecast)
	f.velocityFilter.Predict(dt, f.predictedVelocity)

	copy(f.values, f.valueFilter.Values())
	copy(f.velocity, f.velocityFilter.Values())
}

// Correct predicts forward by dt and then corrects velocity and position from
// the observation. Velocity is corrected only when a previous observation
// exists and |dt| exceeds the minimum velocity interval.
func (f *Filter[T]) Correct(dt float64, observed []T) {
	observed = observed[:len(f.values)]

	f.Predict(dt)

	if f.hasLastMeasurement && math.Abs(dt) > f.minVelocityDT {
		for i, x := range observed {
			f.observed[i] = T(float64(x-f.lastMeasurement[i]) / dt)
		}

		f.velocityFilter.Correct(dt, f.observed)
	}

	f.valueFilter.Correct(dt, observed)

	copy(f.values, f.valueFilter.Values())
	copy(f.velocity, f.velocityFilter.Values())
	copy(f.lastMeasurement, observed)
	f.hasLastMeasurement = true
}

// Values returns the position estimate. The slice is owned by the filter.
func (f *Filter[T]) Values() []T {
	return f.values
}

// Velocity returns the velocity estimate. The slice is owned by the filter.
func (f *Filter[T]) Velocity() []T {
	return f.velocity
}

// PredictedVelocity returns the velocity that Predict blends toward. The
// slice is live: callers may write to it between calls to steer prediction.
func (f *Filter[T]) PredictedVelocity() []T {
	return f.predictedVelocity
}

// SetPredictedVelocity copies v into the predicted velocity.
func (f *Filter[T]) SetPredictedVelocity(v []T) error {
	if len(v) != len(f.predictedVelocity) {
		return fmt.Errorf("velocity: predicted velocity length must be %d: %d", len(f.predictedVelocity), len(v))
	}

	copy(f.predictedVelocity, v)

	return nil
}

// LastMeasurement returns the most recent observation and whether one exists.
func (f *Filter[T]) LastMeasurement() ([]T, bool) {
	return f.lastMeasurement, f.hasLastMeasurement
}

// HasLastMeasurement reports whether Correct has been called.
func (f *Filter[T]) HasLastMeasurement() bool {
	return f.hasLastMeasurement
}

// Dim returns the vector length.
func (f *Filter[T]) Dim() int {
	return len(f.values)
}

// Reset returns the filter to its uninitialized state. PredictedVelocity is
// caller configuration and is kept.
func (f *Filter[T]) Reset() {
	core.Zero(f.values)
	core.Zero(f.velocity)
	core.Zero(f.lastMeasurement)
	f.hasLastMeasurement = false
	f.valueFilter.Reset()
	f.velocityFilter.Reset()
}
