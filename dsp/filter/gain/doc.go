// Package gain provides a fixed-dimension exponential (alpha) smoothing filter.
//
// A [Filter] blends each new vector into its running estimate:
//
//	values[i] = new[i]*g + (1-g)*values[i]
//
// The first sample is adopted as-is so the estimate is not biased toward
// zero. [Filter.ProcessDT] rescales the configured gain for the actual sample
// interval with [Filter.GainForDT], which keeps the smoothing time constant
// unchanged when samples arrive at irregular intervals:
//
//	g(dt) = dt / (referenceDT*(1-gain)/gain + dt)
//
// For float64 filters the blend runs on algo-vecmath block kernels.
package gain
