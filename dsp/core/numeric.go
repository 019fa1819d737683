package core

import (
	"fmt"
	"math"
)

const defaultEpsilon = 1e-12

// Float is the element type constraint shared by all filters in this module.
type Float interface {
	~float32 | ~float64
}

// IsFinite reports whether x is neither NaN nor ±Inf.
func IsFinite[T Float](x T) bool {
	v := float64(x)
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// AllFinite reports whether every element of values is finite.
func AllFinite[T Float](values []T) bool {
	for _, v := range values {
		if !IsFinite(v) {
			return false
		}
	}

	return true
}

// NearlyEqual reports whether a and b are equal within eps.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// ValidateFiniteRange returns an error naming the value if it is not finite or
// falls outside the inclusive range [min, max].
func ValidateFiniteRange(value, min, max float64, name string) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("%s must be finite: %v", name, value)
	}

	if value < min || value > max {
		return fmt.Errorf("%s must be in [%g, %g]: %g", name, min, max, value)
	}

	return nil
}

// ValidatePositive returns an error naming the value unless it is finite and > 0.
func ValidatePositive(value float64, name string) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("%s must be finite: %v", name, value)
	}

	if value <= 0 {
		return fmt.Errorf("%s must be > 0: %g", name, value)
	}

	return nil
}
