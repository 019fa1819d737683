// Package observe provides a predict/correct smoothing filter built from two
// exponential gain filters that share one estimate.
//
// Predict blends the estimate toward a model forecast with the prediction
// gain. Correct blends it toward an observation with the correction gain.
// A high prediction gain trusts the forecast; a high correction gain trusts
// the observation.
package observe
