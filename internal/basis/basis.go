// Package basis implements the canonical phase system and the Gaussian
// radial basis functions that schedule a movement primitive's forcing term.
package basis

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Set is a fixed family of Gaussian basis functions over the canonical
// phase variable. Centers sit on an exponential grid in phase space and
// widths are derived from the basis count; neither depends on any
// demonstration.
type Set struct {
	centers []float64
	widths  []float64
}

// New builds n basis functions for a canonical system decaying at rate
// alphaX over the given time horizon.
func New(n int, alphaX, horizon float64) *Set {
	s := &Set{
		centers: make([]float64, n),
		widths:  make([]float64, n),
	}
	spread := math.Pow(float64(n), 1.5)
	for i := range s.centers {
		t := horizon * grid(i, n)
		s.centers[i] = math.Exp(-alphaX * t)
		s.widths[i] = spread / s.centers[i] / alphaX
	}
	return s
}

// Len returns the number of basis functions.
func (s *Set) Len() int { return len(s.centers) }

// Activations evaluates every basis function at phase x into dst, which is
// allocated when nil or of the wrong length. All values lie in (0, 1].
func (s *Set) Activations(x float64, dst []float64) []float64 {
	if len(dst) != len(s.centers) {
		dst = make([]float64, len(s.centers))
	}
	for i, c := range s.centers {
		d := x - c
		dst[i] = math.Exp(-s.widths[i] * d * d)
	}
	return dst
}

// Design builds the normalized, phase-scaled regression matrix over a phase
// schedule: row n holds BF_i(x_n)·x_n / Σ_i BF_i(x_n). The same matrix
// multiplied by a weight matrix yields the forcing term, so fitting and
// rollout share one construction.
func (s *Set) Design(phases []float64) *mat.Dense {
	x := mat.NewDense(len(phases), len(s.centers), nil)
	act := make([]float64, len(s.centers))
	for n, p := range phases {
		s.Activations(p, act)
		sum := 0.0
		for _, a := range act {
			sum += a
		}
		for i, a := range act {
			x.Set(n, i, a*p/sum)
		}
	}
	return x
}

// Phases samples the canonical phase variable exp(−alphaX·tau·t) at n
// evenly spaced times spanning the horizon.
func Phases(n int, alphaX, tau, horizon float64) []float64 {
	p := make([]float64, n)
	for i := range p {
		p[i] = math.Exp(-alphaX * tau * horizon * grid(i, n))
	}
	return p
}

// grid returns position i of n points evenly spanning [0, 1].
func grid(i, n int) float64 {
	if n == 1 {
		return 0
	}
	return float64(i) / float64(n-1)
}
