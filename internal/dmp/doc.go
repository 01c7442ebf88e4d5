// Package dmp implements quaternion dynamic movement primitives: a
// goal-convergent orientation attractor shaped by a forcing term learned
// from a single demonstration.
//
// The package separates the trained artifact from the operations on it:
//
//   - [Model]: immutable training result (initial and goal orientation,
//     boundary derivatives, basis weights)
//   - [Imitate]: resamples a demonstration, differentiates it in tangent
//     space, and regresses the forcing term into a fresh [Model]
//   - [Rollout]: forward-integrates the attractor under a trained [Model],
//     optionally time-scaled
//
// [DMP] wraps the two operations around a current model for callers that
// want the train-then-replay state machine.
//
// # Example
//
//	d, _ := dmp.New(dmp.DefaultConfig())
//	desired, _ := d.Imitate(demo)
//	tr, _ := d.Rollout(1.0)
//
// # Thread Safety
//
// Imitate replaces the wrapped model and must not race with other calls on
// the same [DMP]. Rollout on a trained, no-longer-mutated DMP is safe to
// call concurrently; every call works on private buffers.
package dmp
