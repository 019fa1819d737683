package core

// Zero sets all values in buf to 0.
func Zero[T Float](buf []T) {
	for i := range buf {
		buf[i] = 0
	}
}

// Float64View returns buf as a []float64 sharing the same backing array when
// T is exactly float64. The second result is false for every other type.
func Float64View[T Float](buf []T) ([]float64, bool) {
	v, ok := any(buf).([]float64)
	return v, ok
}
