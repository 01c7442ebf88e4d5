package dmp

import "errors"

// Domain errors surfaced at the API boundary.
var (
	// ErrInvalidConfig indicates a non-positive basis count or a step size
	// that does not yield at least two samples over the horizon.
	ErrInvalidConfig = errors.New("dmp: invalid configuration")

	// ErrInsufficientDemonstration indicates a demonstration with fewer
	// than two samples.
	ErrInsufficientDemonstration = errors.New("dmp: demonstration needs at least two samples")

	// ErrUntrainedModel indicates a rollout requested before imitation.
	ErrUntrainedModel = errors.New("dmp: rollout requires a trained model")

	// ErrInvalidTemporalScale indicates a non-positive tau.
	ErrInvalidTemporalScale = errors.New("dmp: temporal scale must be positive")
)
