package dmp

import (
	"gonum.org/v1/gonum/mat"

	"github.com/skodra/quatdmp/internal/basis"
	"github.com/skodra/quatdmp/internal/quat"
)

// Trajectory is one rollout of a trained primitive: N orientations with
// their tangent-space velocities and accelerations.
type Trajectory struct {
	Orientations  []quat.Quaternion
	Velocities    []quat.Vec
	Accelerations []quat.Vec
}

// Len returns the number of samples.
func (t *Trajectory) Len() int { return len(t.Orientations) }

// Rollout forward-integrates the attractor system under a trained model at
// temporal scale tau (1 replays at demonstration speed, 2 twice as fast).
//
// The discrete scheme follows the reference dynamics exactly: the
// acceleration at step n is computed from the n−1 state, while the velocity
// and orientation updates advance on the n−1 derivatives, so a freshly
// computed acceleration only takes effect one step later.
//
// Output orientations are not renormalized; drift from unit norm over long
// horizons is the caller's to bound.
func Rollout(cfg Config, bs *basis.Set, m *Model, tau float64) (*Trajectory, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if m == nil || m.Weights == nil {
		return nil, ErrUntrainedModel
	}
	if tau <= 0 {
		return nil, ErrInvalidTemporalScale
	}

	n := cfg.Steps()
	x := bs.Design(basis.Phases(n, AlphaX, tau, Horizon))
	var forcing mat.Dense
	forcing.Mul(x, m.Weights)

	tr := &Trajectory{
		Orientations:  make([]quat.Quaternion, n),
		Velocities:    make([]quat.Vec, n),
		Accelerations: make([]quat.Vec, n),
	}
	tr.Orientations[0] = m.Q0
	tr.Velocities[0] = m.DQ0
	tr.Accelerations[0] = m.DDQ0

	step := tau * cfg.Dt
	for i := 1; i < n; i++ {
		prev := tr.Orientations[i-1]
		e := m.Goal.RelativeTo(prev).Log()
		f := quat.Vec{forcing.At(i, 0), forcing.At(i, 1), forcing.At(i, 2)}

		tr.Accelerations[i] = e.Scale(BetaZ).Sub(tr.Velocities[i-1]).Scale(AlphaZ).Add(f)
		tr.Velocities[i] = tr.Velocities[i-1].Add(tr.Accelerations[i-1].Scale(step))
		tr.Orientations[i] = quat.Exp(tr.Velocities[i-1].Scale(step)).Mul(prev)
	}
	return tr, nil
}
