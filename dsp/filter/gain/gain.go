package gain

import (
	"fmt"

	"github.com/cwbudde/algo-smooth/dsp/core"
)

// Params configures one exponential filter.
type Params[T core.Float] struct {
	// Gain is the blending weight in [0, 1] applied at ReferenceDT.
	// Values near 1 trust the new sample, values near 0 keep the estimate.
	Gain T
	// ReferenceDT is the sample interval at which Gain is the literal weight.
	ReferenceDT float64
}

// Validate checks that Gain is finite and in [0, 1] and that ReferenceDT is
// finite and > 0.
func (p Params[T]) Validate() error {
	if err := core.ValidateFiniteRange(float64(p.Gain), 0, 1, "gain"); err != nil {
		return err
	}

	return core.ValidatePositive(p.ReferenceDT, "reference dt")
}

// Filter is an exponential smoothing filter over a vector of fixed length.
//
// Values is meaningful once HasValues reports true. Process, ProcessDT,
// CopyFrom and CopyTo return the receiver so they can be chained:
//
//	f.CopyFrom(state).ProcessDT(dt, sample).CopyTo(state)
type Filter[T core.Float] struct {
	gain        T
	referenceDT float64

	values    []T
	hasValues bool

	// scratch and the float64 views are only used by the vecmath kernel.
	scratch   []T
	values64  []float64
	scratch64 []float64
}

// New returns a filter of dimension n with the given gain and reference
// sample interval.
func New[T core.Float](n int, g T, referenceDT float64) (*Filter[T], error) {
	return NewFromParams(n, Params[T]{Gain: g, ReferenceDT: referenceDT})
}

// NewFromParams returns a filter of dimension n configured by p.
func NewFromParams[T core.Float](n int, p Params[T]) (*Filter[T], error) {
	if n <= 0 {
		return nil, fmt.Errorf("gain: dimension must be > 0: %d", n)
	}

	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("gain: %w", err)
	}

	f := &Filter[T]{
		gain:        p.Gain,
		referenceDT: p.ReferenceDT,
		values:      make([]T, n),
		scratch:     make([]T, n),
	}
	f.values64, _ = core.Float64View(f.values)
	f.scratch64, _ = core.Float64View(f.scratch)

	return f, nil
}

// Process blends newValues into the estimate using the configured gain.
// The first call adopts newValues unchanged.
func (f *Filter[T]) Process(newValues []T) *Filter[T] {
	if !f.hasValues {
		return f.adopt(newValues)
	}

	f.blend(newValues, f.gain)

	return f
}

// ProcessDT blends newValues into the estimate using GainForDT(dt).
// The first call adopts newValues unchanged.
func (f *Filter[T]) ProcessDT(dt float64, newValues []T) *Filter[T] {
	if !f.hasValues {
		return f.adopt(newValues)
	}

	f.blend(newValues, f.GainForDT(dt))

	return f
}

// GainForDT rescales the configured gain for a sample interval dt.
//
// A gain of exactly 1 yields 1 and a gain of exactly 0 yields 0 for every dt.
func (f *Filter[T]) GainForDT(dt float64) T {
	switch f.gain {
	case 1:
		return 1
	case 0:
		return 0
	}

	// 1-gain is rounded in T before widening.
	g, keep := float64(f.gain), float64(1-f.gain)

	return T(dt / ((f.referenceDT*keep)/g + dt))
}

// CopyFrom overwrites the estimate with src without changing HasValues.
func (f *Filter[T]) CopyFrom(src []T) *Filter[T] {
	copy(f.values, src[:len(f.values)])
	return f
}

// CopyTo writes the estimate into dst.
func (f *Filter[T]) CopyTo(dst []T) *Filter[T] {
	copy(dst[:len(f.values)], f.values)
	return f
}

// Values returns the current estimate. The slice is owned by the filter and
// is overwritten by the next call.
func (f *Filter[T]) Values() []T {
	return f.values
}

// HasValues reports whether at least one sample has been processed.
func (f *Filter[T]) HasValues() bool {
	return f.hasValues
}

// Gain returns the configured gain.
func (f *Filter[T]) Gain() T {
	return f.gain
}

// ReferenceDT returns the sample interval the gain was configured for.
func (f *Filter[T]) ReferenceDT() float64 {
	return f.referenceDT
}

// Dim returns the vector length.
func (f *Filter[T]) Dim() int {
	return len(f.values)
}

// Reset clears the estimate to zero and forgets that a sample was seen.
func (f *Filter[T]) Reset() {
	core.Zero(f.values)
	f.hasValues = false
}

func (f *Filter[T]) adopt(newValues []T) *Filter[T] {
	f.CopyFrom(newValues)
	f.hasValues = true

	return f
}
