package signal

import (
	"math"
	"testing"
)

func TestNewGeneratorDefaults(t *testing.T) {
	g, err := NewGenerator()
	if err != nil {
		t.Fatalf("NewGenerator() error = %v", err)
	}
	if g.DT() != 0.1 || g.Seed() != 1 {
		t.Fatalf("defaults = (%v, %d), want (0.1, 1)", g.DT(), g.Seed())
	}
}

func TestWithDTValidation(t *testing.T) {
	for _, dt := range []float64{0, -1, math.NaN()} {
		if _, err := NewGenerator(WithDT(dt)); err == nil {
			t.Fatalf("WithDT(%v) accepted", dt)
		}
	}
}

func TestConstantVelocity(t *testing.T) {
	g, err := NewGenerator(WithDT(0.5))
	if err != nil {
		t.Fatal(err)
	}

	path, err := g.ConstantVelocity([]float64{0, 10}, []float64{1, -2}, 3)
	if err != nil {
		t.Fatalf("ConstantVelocity() error = %v", err)
	}
	if len(path) != 3 {
		t.Fatalf("len = %d, want 3", len(path))
	}
	if path[2][0] != 1 || path[2][1] != 8 {
		t.Fatalf("path[2] = %v, want [1 8]", path[2])
	}

	if _, err := g.ConstantVelocity([]float64{0}, []float64{1, 2}, 3); err == nil {
		t.Fatal("expected error for mismatched lengths")
	}
	if _, err := g.ConstantVelocity([]float64{0}, []float64{1}, 0); err == nil {
		t.Fatal("expected error for zero steps")
	}
}

func TestCircle(t *testing.T) {
	g, err := NewGenerator(WithDT(0.25))
	if err != nil {
		t.Fatal(err)
	}

	path, err := g.Circle(2, math.Pi, 5)
	if err != nil {
		t.Fatalf("Circle() error = %v", err)
	}
	for k, p := range path {
		if r := math.Hypot(p[0], p[1]); math.Abs(r-2) > 1e-12 {
			t.Fatalf("path[%d] radius = %v, want 2", k, r)
		}
	}
	if math.Abs(path[4][0]+2) > 1e-12 {
		t.Fatalf("half turn x = %v, want -2", path[4][0])
	}

	if _, err := g.Circle(-1, 1, 3); err == nil {
		t.Fatal("expected error for negative radius")
	}
}

func TestWhiteNoiseDeterministic(t *testing.T) {
	g1, _ := NewGenerator(WithSeed(42))
	g2, _ := NewGenerator(WithSeed(42))

	n1, err := g1.WhiteNoise(1, 16)
	if err != nil {
		t.Fatalf("WhiteNoise() error = %v", err)
	}
	n2, err := g2.WhiteNoise(1, 16)
	if err != nil {
		t.Fatalf("WhiteNoise() error = %v", err)
	}

	for i := range n1 {
		if n1[i] != n2[i] {
			t.Fatalf("noise mismatch at %d: %v != %v", i, n1[i], n2[i])
		}
	}
}

func TestSeedChangesNoise(t *testing.T) {
	g1, _ := NewGenerator(WithSeed(99))
	g2, _ := NewGenerator(WithSeed(100))
	if g1.Seed() != 99 {
		t.Fatalf("Seed()=%d, want 99", g1.Seed())
	}

	a, err := g1.WhiteNoise(1, 8)
	if err != nil {
		t.Fatalf("WhiteNoise() error = %v", err)
	}
	b, err := g2.WhiteNoise(1, 8)
	if err != nil {
		t.Fatalf("WhiteNoise() error = %v", err)
	}

	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different seeds produced identical noise")
	}
}

func TestWhiteNoiseValidation(t *testing.T) {
	g, _ := NewGenerator()
	if _, err := g.WhiteNoise(-1, 4); err == nil {
		t.Fatal("expected error for negative amplitude")
	}
	if _, err := g.WhiteNoise(1, 0); err == nil {
		t.Fatal("expected error for zero samples")
	}
}

func TestNoisyKeepsInput(t *testing.T) {
	g, _ := NewGenerator(WithSeed(7))
	clean, _ := g.ConstantVelocity([]float64{0, 0}, []float64{1, 1}, 8)
	before := clean[3][0]

	a, err := g.Noisy(clean, 0.2)
	if err != nil {
		t.Fatalf("Noisy() error = %v", err)
	}
	b, _ := g.Noisy(clean, 0.2)

	for k := range a {
		for i := range a[k] {
			if a[k][i] != b[k][i] {
				t.Fatalf("noise not deterministic at step %d index %d", k, i)
			}
			if d := math.Abs(a[k][i] - clean[k][i]); d > 0.2 {
				t.Fatalf("noise %v exceeds amplitude at step %d index %d", d, k, i)
			}
		}
	}

	if clean[3][0] != before {
		t.Fatalf("input path modified: %v", clean[3])
	}

	if _, err := g.Noisy(clean, -1); err == nil {
		t.Fatal("expected error for negative amplitude")
	}
}

func TestNoisyDrawsWhiteNoiseInPathOrder(t *testing.T) {
	g, _ := NewGenerator(WithSeed(3))
	path := [][]float64{{1, 2}, {3, 4}, {5, 6}}

	noisy, err := g.Noisy(path, 0.5)
	if err != nil {
		t.Fatalf("Noisy() error = %v", err)
	}
	noise, _ := g.WhiteNoise(0.5, 6)

	for k := range path {
		for i := range path[k] {
			if want := path[k][i] + noise[2*k+i]; noisy[k][i] != want {
				t.Fatalf("step %d index %d: got %v, want %v", k, i, noisy[k][i], want)
			}
		}
	}

	empty, err := g.Noisy(nil, 0.5)
	if err != nil || len(empty) != 0 {
		t.Fatalf("Noisy(nil) = %v, %v; want empty, nil", empty, err)
	}
}
