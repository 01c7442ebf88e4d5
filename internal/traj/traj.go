// Package traj converts a raw orientation demonstration into a fixed-length
// uniformly sampled trajectory and its tangent-space derivatives.
//
// Demonstration samples are assumed evenly spread over the motion's
// duration. Resampling interpolates with shortest-arc slerp between the two
// bracketing samples, which keeps smooth demonstrations on one quaternion
// hemisphere. The differentiation step itself does not hemisphere-align
// consecutive samples; a demonstration that straddles q and −q produces a
// discontinuous logarithmic map.
package traj

import "github.com/skodra/quatdmp/internal/quat"

// Resample evaluates the demonstration at n evenly spaced times spanning its
// duration, slerping between the bracketing samples. The demonstration must
// have at least two samples and n must be at least two.
func Resample(demo []quat.Quaternion, n int) []quat.Quaternion {
	out := make([]quat.Quaternion, n)
	segs := float64(len(demo) - 1)
	for k := range out {
		u := segs * float64(k) / float64(n-1)
		i := int(u)
		if i >= len(demo)-1 {
			i = len(demo) - 2
		}
		out[k] = quat.Slerp(demo[i], demo[i+1], u-float64(i))
	}
	return out
}

// Differentiate returns the tangent-space velocity at every sample: central
// log-differences over two steps in the interior, one-sided at the ends.
func Differentiate(q []quat.Quaternion, dt float64) []quat.Vec {
	n := len(q)
	dq := make([]quat.Vec, n)
	dq[0] = q[1].RelativeTo(q[0]).Log().Scale(1 / dt)
	for i := 1; i < n-1; i++ {
		dq[i] = q[i+1].RelativeTo(q[i-1]).Log().Scale(1 / (2 * dt))
	}
	dq[n-1] = q[n-1].RelativeTo(q[n-2]).Log().Scale(1 / dt)
	return dq
}

// Gradient numerically differentiates a tangent-vector sequence with respect
// to time: central differences in the interior, one-sided at the ends.
func Gradient(v []quat.Vec, dt float64) []quat.Vec {
	n := len(v)
	g := make([]quat.Vec, n)
	g[0] = v[1].Sub(v[0]).Scale(1 / dt)
	for i := 1; i < n-1; i++ {
		g[i] = v[i+1].Sub(v[i-1]).Scale(1 / (2 * dt))
	}
	g[n-1] = v[n-1].Sub(v[n-2]).Scale(1 / dt)
	return g
}
