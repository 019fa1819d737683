package gain

import vecmath "github.com/cwbudde/algo-vecmath"

// blend computes values = newValues*g + (1-g)*values. Both products are
// rounded before the sum so the scalar loop matches the vecmath kernel.
func (f *Filter[T]) blend(newValues []T, g T) {
	newValues = newValues[:len(f.values)]

	if f.values64 != nil {
		copy(f.scratch, newValues)
		vecmath.ScaleBlockInPlace(f.scratch64, float64(g))
		vecmath.ScaleBlockInPlace(f.values64, float64(1-g))
		vecmath.AddBlockInPlace(f.values64, f.scratch64)

		return
	}

	for i, x := range newValues {
		f.values[i] = T(x*g) + T((1-g)*f.values[i])
	}
}
