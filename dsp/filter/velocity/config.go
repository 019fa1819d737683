package velocity

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-smooth/dsp/core"
	"github.com/cwbudde/algo-smooth/dsp/filter/gain"
)

const (
	defaultMinVelocityDT = 1e-6
	legacyForecastDims   = 3
)

// Config holds the four gain/reference-dt pairs of a Filter.
type Config[T core.Float] struct {
	// ValuePrediction blends position toward the extrapolated forecast.
	// High gain trusts the forecast, low gain keeps the last estimate.
	ValuePrediction gain.Params[T]
	// ValueCorrection blends position toward the observation.
	// High gain trusts the observation, low gain keeps the prediction.
	ValueCorrection gain.Params[T]
	// VelocityPrediction blends velocity toward PredictedVelocity.
	VelocityPrediction gain.Params[T]
	// VelocityCorrection blends velocity toward the observed finite difference.
	VelocityCorrection gain.Params[T]
}

// DefaultConfig returns the reference tuning: position follows the forecast
// fully and the observation at 0.99, velocity is held during prediction and
// corrected at 0.99. All gains are calibrated for referenceDT.
func DefaultConfig[T core.Float](referenceDT float64) Config[T] {
	return Config[T]{
		ValuePrediction:    gain.Params[T]{Gain: 1, ReferenceDT: referenceDT},
		ValueCorrection:    gain.Params[T]{Gain: 0.99, ReferenceDT: referenceDT},
		VelocityPrediction: gain.Params[T]{Gain: 0, ReferenceDT: referenceDT},
		VelocityCorrection: gain.Params[T]{Gain: 0.99, ReferenceDT: referenceDT},
	}
}

// Validate reports the first invalid gain pair.
func (c Config[T]) Validate() error {
	pairs := []struct {
		name string
		p    gain.Params[T]
	}{
		{"value prediction", c.ValuePrediction},
		{"value correction", c.ValueCorrection},
		{"velocity prediction", c.VelocityPrediction},
		{"velocity correction", c.VelocityCorrection},
	}

	for _, pair := range pairs {
		if err := pair.p.Validate(); err != nil {
			return fmt.Errorf("%s: %w", pair.name, err)
		}
	}

	return nil
}

// Option mutates constructor configuration.
type Option func(*options) error

type options struct {
	minVelocityDT float64
	legacyBound   bool
}

func defaultOptions() options {
	return options{minVelocityDT: defaultMinVelocityDT}
}

// WithMinVelocityDT sets the interval below which (in absolute value) the
// finite-difference velocity correction is skipped. Must be finite and >= 0.
func WithMinVelocityDT(eps float64) Option {
	return func(o *options) error {
		if err := core.ValidateFiniteRange(eps, 0, math.MaxFloat64, "min velocity dt"); err != nil {
			return err
		}

		o.minVelocityDT = eps

		return nil
	}
}

// WithLegacyForecastBound restricts position extrapolation in Predict to the
// first three elements. Remaining elements are forecast as their current
// value. Use it to reproduce filters tuned on three-axis data with extra
// passive channels appended. The default extrapolates every element.
func WithLegacyForecastBound() Option {
	return func(o *options) error {
		o.legacyBound = true
		return nil
	}
}
