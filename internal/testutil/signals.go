package testutil

import "math/rand"

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Ramp returns length samples of start + speed*dt*k for k = 0..length-1.
func Ramp(start, speed, dt float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = start + speed*dt*float64(i)
	}
	return out
}
