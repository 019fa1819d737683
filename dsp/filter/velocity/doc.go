// Package velocity provides a constant-velocity predictor-corrector that
// tracks a position vector and its first derivative without storing history.
//
// The filter composes two observe filters, one for position and one for
// velocity. Predict extrapolates position by velocity*dt and blends velocity
// toward PredictedVelocity (zero unless the caller sets it, which means the
// velocity estimate is otherwise held). Correct always predicts first, then
// corrects velocity from the finite difference of consecutive observations
// and position from the observation itself.
//
// The first Correct has no previous observation, so velocity is left as
// predicted. Intervals with |dt| <= 1e-6 (see [WithMinVelocityDT]) skip the
// velocity correction in the same way.
//
// No operation reports an error after construction. Filters are not safe for
// concurrent use; callers that share one must serialise Predict and Correct.
package velocity
