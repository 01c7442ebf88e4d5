package dmp

import (
	"sync"

	"gonum.org/v1/gonum/mat"

	"github.com/skodra/quatdmp/internal/basis"
	"github.com/skodra/quatdmp/internal/quat"
	"github.com/skodra/quatdmp/internal/regress"
	"github.com/skodra/quatdmp/internal/traj"
)

// Imitate learns a model from a demonstration of at least two orientation
// samples assumed evenly spread over the horizon. It returns the trained
// model together with the resampled desired trajectory of length
// cfg.Steps().
func Imitate(cfg Config, bs *basis.Set, demo []quat.Quaternion) (*Model, []quat.Quaternion, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	if len(demo) < 2 {
		return nil, nil, ErrInsufficientDemonstration
	}

	n := cfg.Steps()
	desired := traj.Resample(demo, n)
	dq := traj.Differentiate(desired, cfg.Dt)
	ddq := traj.Gradient(dq, cfg.Dt)
	goal := desired[n-1]

	// Transformation system solved for the forcing term, tau fixed to 1:
	// f[n] = ddq[n] − αz·(βz·log(goal ⊗ conj(q[n])) − dq[n])
	target := make([]quat.Vec, n)
	for i := range target {
		e := goal.RelativeTo(desired[i]).Log()
		target[i] = ddq[i].Sub(e.Scale(BetaZ).Sub(dq[i]).Scale(AlphaZ))
	}

	x := bs.Design(basis.Phases(n, AlphaX, DefaultTau, Horizon))
	weights, err := fit(x, target, bs.Len())
	if err != nil {
		return nil, nil, err
	}

	model := &Model{
		Q0:      desired[0],
		Goal:    goal,
		DQ0:     dq[0],
		DDQ0:    ddq[0],
		Weights: weights,
	}
	return model, desired, nil
}

// fit regresses one weight column per tangent dimension against the shared
// design matrix. The three solves read only immutable inputs and write
// disjoint columns, so they run concurrently.
func fit(x *mat.Dense, target []quat.Vec, numBasis int) (*mat.Dense, error) {
	var (
		wg   sync.WaitGroup
		cols [3][]float64
		errs [3]error
	)
	for dim := 0; dim < 3; dim++ {
		wg.Add(1)
		go func(dim int) {
			defer wg.Done()
			y := make([]float64, len(target))
			for i := range target {
				y[i] = target[i][dim]
			}
			cols[dim], errs[dim] = regress.LeastSquares(x, y)
		}(dim)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	weights := mat.NewDense(numBasis, 3, nil)
	for dim, col := range cols {
		for i, w := range col {
			weights.Set(i, dim, w)
		}
	}
	return weights, nil
}
