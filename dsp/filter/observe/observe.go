package observe

import (
	"fmt"

	"github.com/cwbudde/algo-smooth/dsp/core"
	"github.com/cwbudde/algo-smooth/dsp/filter/gain"
)

// Filter holds one estimate updated alternately by a prediction and a
// correction gain filter. Values always equals the output of whichever inner
// filter ran last.
type Filter[T core.Float] struct {
	values []T

	prediction gain.Filter[T]
	correction gain.Filter[T]
}

// New returns a filter of dimension n with a zero estimate.
func New[T core.Float](n int, prediction, correction gain.Params[T]) (*Filter[T], error) {
	if n <= 0 {
		return nil, fmt.Errorf("observe: dimension must be > 0: %d", n)
	}

	p, err := gain.NewFromParams(n, prediction)
	if err != nil {
		return nil, fmt.Errorf("observe: prediction: %w", err)
	}

	c, err := gain.NewFromParams(n, correction)
	if err != nil {
		return nil, fmt.Errorf("observe: correction: %w", err)
	}

	return &Filter[T]{
		values:     make([]T, n),
		prediction: *p,
		correction: *c,
	}, nil
}

// Predict blends the estimate toward prediction over the interval dt.
func (f *Filter[T]) Predict(dt float64, prediction []T) {
	f.prediction.CopyFrom(f.values).ProcessDT(dt, prediction).CopyTo(f.values)
}

// Correct blends the estimate toward observed over the interval dt.
func (f *Filter[T]) Correct(dt float64, observed []T) {
	f.correction.CopyFrom(f.values).ProcessDT(dt, observed).CopyTo(f.values)
}

// Values returns the current estimate. The slice is owned by the filter.
func (f *Filter[T]) Values() []T {
	return f.values
}

// Prediction returns the prediction-step gain filter.
func (f *Filter[T]) Prediction() *gain.Filter[T] {
	return &f.prediction
}

// Correction returns the correction-step gain filter.
func (f *Filter[T]) Correction() *gain.Filter[T] {
	return &f.correction
}

// Dim returns the vector length.
func (f *Filter[T]) Dim() int {
	return len(f.values)
}

// Reset zeroes the estimate and resets both inner filters.
func (f *Filter[T]) Reset() {
	core.Zero(f.values)
	f.prediction.Reset()
	f.correction.Reset()
}
