package dmp

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/skodra/quatdmp/internal/basis"
	"github.com/skodra/quatdmp/internal/quat"
)

// Fixed dynamics of the transformation and canonical systems.
const (
	// Horizon is the normalized duration of every primitive.
	Horizon = 1.0
	// AlphaX is the canonical phase decay rate.
	AlphaX = 1.0
	// AlphaZ and BetaZ are the critically damped attractor gains.
	AlphaZ = 12.0
	BetaZ  = 3.0

	DefaultNumBasis = 20
	DefaultDt       = 0.01
	DefaultTau      = 1.0
)

// Config holds the construction-time hyperparameters.
type Config struct {
	// NumBasis is the number of Gaussian basis functions.
	NumBasis int
	// Dt is the sampling and integration step over the horizon.
	Dt float64
}

func DefaultConfig() Config {
	return Config{NumBasis: DefaultNumBasis, Dt: DefaultDt}
}

func (c Config) Validate() error {
	if c.NumBasis <= 0 {
		return fmt.Errorf("%w: basis count %d", ErrInvalidConfig, c.NumBasis)
	}
	if c.Dt <= 0 || c.Steps() < 2 {
		return fmt.Errorf("%w: step size %g over horizon %g", ErrInvalidConfig, c.Dt, Horizon)
	}
	return nil
}

// Steps returns the trajectory length N = Horizon/Dt.
func (c Config) Steps() int {
	if c.Dt <= 0 {
		return 0
	}
	return int(Horizon / c.Dt)
}

// SampleTimes returns the N sample instants. The horizon spans Horizon/tau
// in wall time when played back at temporal scale tau.
func (c Config) SampleTimes(tau float64) []float64 {
	n := c.Steps()
	ts := make([]float64, n)
	for i := range ts {
		ts[i] = Horizon / tau * float64(i) / float64(n-1)
	}
	return ts
}

// Model is the immutable artifact produced by [Imitate]: everything a
// rollout needs, fully populated or absent.
type Model struct {
	// Q0 and Goal are the first and last resampled orientations.
	Q0   quat.Quaternion
	Goal quat.Quaternion
	// DQ0 and DDQ0 are the boundary tangent-space derivatives.
	DQ0  quat.Vec
	DDQ0 quat.Vec
	// Weights holds one basis-weight column per tangent dimension
	// (NumBasis×3).
	Weights *mat.Dense
}

// DMP binds a configuration and basis set to the most recent trained model.
type DMP struct {
	cfg   Config
	basis *basis.Set
	model *Model
}

// New validates cfg and constructs an untrained primitive.
func New(cfg Config) (*DMP, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &DMP{
		cfg:   cfg,
		basis: basis.New(cfg.NumBasis, AlphaX, Horizon),
	}, nil
}

// Config returns the construction configuration.
func (d *DMP) Config() Config { return d.cfg }

// Model returns the current trained artifact, or nil before imitation.
func (d *DMP) Model() *Model { return d.model }

// Imitate trains on a demonstration and returns the resampled desired
// trajectory. The previous model, if any, is replaced atomically: on error
// the existing model is kept.
func (d *DMP) Imitate(demo []quat.Quaternion) ([]quat.Quaternion, error) {
	model, desired, err := Imitate(d.cfg, d.basis, demo)
	if err != nil {
		return nil, err
	}
	d.model = model
	return desired, nil
}

// Rollout replays the trained primitive at temporal scale tau.
func (d *DMP) Rollout(tau float64) (*Trajectory, error) {
	if d.model == nil {
		return nil, ErrUntrainedModel
	}
	return Rollout(d.cfg, d.basis, d.model, tau)
}
