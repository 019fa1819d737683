package gain

import (
	"fmt"
	"testing"
)

func BenchmarkProcessDT(b *testing.B) {
	for _, n := range []int{3, 16, 256} {
		b.Run(fmt.Sprintf("float64/n=%d", n), func(b *testing.B) {
			f, _ := New(n, 0.3, 0.01)
			x := make([]float64, n)
			for i := range x {
				x[i] = float64(i)
			}

			b.ReportAllocs()
			for b.Loop() {
				f.ProcessDT(0.01, x)
			}
		})

		b.Run(fmt.Sprintf("float32/n=%d", n), func(b *testing.B) {
			f, _ := New(n, float32(0.3), 0.01)
			x := make([]float32, n)
			for i := range x {
				x[i] = float32(i)
			}

			b.ReportAllocs()
			for b.Loop() {
				f.ProcessDT(0.01, x)
			}
		})
	}
}
