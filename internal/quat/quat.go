package quat

import "math"

// machEps is the double-precision machine epsilon, the threshold below
// which the logarithmic map treats a vector part as vanished.
const machEps = 2.220446049250313e-16

// Quaternion is a rotation stored as (x, y, z, w) with W the scalar part.
type Quaternion struct {
	X, Y, Z, W float64
}

// Identity returns the identity rotation.
func Identity() Quaternion {
	return Quaternion{W: 1}
}

// FromAxisAngle builds the quaternion rotating by angle radians about axis.
// The axis must be a unit vector.
func FromAxisAngle(axis Vec, angle float64) Quaternion {
	s := math.Sin(angle / 2)
	return Quaternion{
		X: axis[0] * s,
		Y: axis[1] * s,
		Z: axis[2] * s,
		W: math.Cos(angle / 2),
	}
}

// Conjugate negates the vector part and keeps the scalar part.
func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{X: -q.X, Y: -q.Y, Z: -q.Z, W: q.W}
}

// Neg negates all four components. q and q.Neg() represent the same
// rotation (double cover).
func (q Quaternion) Neg() Quaternion {
	return Quaternion{X: -q.X, Y: -q.Y, Z: -q.Z, W: -q.W}
}

// Mul returns the Hamilton product q ⊗ p.
func (q Quaternion) Mul(p Quaternion) Quaternion {
	return Quaternion{
		X: q.W*p.X + p.W*q.X + q.Y*p.Z - q.Z*p.Y,
		Y: q.W*p.Y + p.W*q.Y + q.Z*p.X - q.X*p.Z,
		Z: q.W*p.Z + p.W*q.Z + q.X*p.Y - q.Y*p.X,
		W: q.W*p.W - (q.X*p.X + q.Y*p.Y + q.Z*p.Z),
	}
}

// RelativeTo returns the relative rotation taking p to q, q ⊗ conj(p).
func (q Quaternion) RelativeTo(p Quaternion) Quaternion {
	return q.Mul(p.Conjugate())
}

// Dot returns the four-dimensional dot product.
func (q Quaternion) Dot(p Quaternion) float64 {
	return q.X*p.X + q.Y*p.Y + q.Z*p.Z + q.W*p.W
}

// Norm returns the Euclidean norm of the four components.
func (q Quaternion) Norm() float64 {
	return math.Sqrt(q.Dot(q))
}

// Normalize returns q scaled to unit norm. A degenerate norm resets to the
// identity rotation.
func (q Quaternion) Normalize() Quaternion {
	n := q.Norm()
	if n < machEps {
		return Identity()
	}
	inv := 1 / n
	return Quaternion{X: q.X * inv, Y: q.Y * inv, Z: q.Z * inv, W: q.W * inv}
}

// Exp maps a rotation vector to a unit quaternion. The zero vector maps to
// the identity exactly.
func Exp(r Vec) Quaternion {
	theta := r.Norm()
	if theta == 0 {
		return Identity()
	}
	s := math.Sin(theta/2) / theta
	return Quaternion{
		X: r[0] * s,
		Y: r[1] * s,
		Z: r[2] * s,
		W: math.Cos(theta / 2),
	}
}

// Log maps a unit quaternion to its rotation vector, the inverse of [Exp].
// A vector part below machine epsilon maps to the zero vector.
func (q Quaternion) Log() Vec {
	vn := math.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z)
	if vn < machEps {
		return Vec{}
	}
	theta := 2 * math.Atan2(vn, q.W)
	s := theta / vn
	return Vec{q.X * s, q.Y * s, q.Z * s}
}

// Rotate applies the rotation q to v, computing q ⊗ (v, 0) ⊗ conj(q).
func (q Quaternion) Rotate(v Vec) Vec {
	p := q.Mul(Quaternion{X: v[0], Y: v[1], Z: v[2]}).Mul(q.Conjugate())
	return Vec{p.X, p.Y, p.Z}
}

// AngleTo returns the great-circle angular distance between two unit
// quaternions in radians, insensitive to the double cover.
func (q Quaternion) AngleTo(p Quaternion) float64 {
	d := math.Abs(q.Dot(p))
	if d > 1 {
		d = 1
	}
	return 2 * math.Acos(d)
}

// Slerp interpolates from a to b along the shortest arc, t in [0, 1].
// Nearly parallel quaternions fall back to normalized linear interpolation
// to avoid dividing by a vanishing sine.
func Slerp(a, b Quaternion, t float64) Quaternion {
	dot := a.Dot(b)
	if dot < 0 {
		b = b.Neg()
		dot = -dot
	}
	if dot > 0.9995 {
		return Quaternion{
			X: a.X + t*(b.X-a.X),
			Y: a.Y + t*(b.Y-a.Y),
			Z: a.Z + t*(b.Z-a.Z),
			W: a.W + t*(b.W-a.W),
		}.Normalize()
	}
	theta0 := math.Acos(dot)
	theta := theta0 * t
	sin0 := math.Sin(theta0)
	s0 := math.Cos(theta) - dot*math.Sin(theta)/sin0
	s1 := math.Sin(theta) / sin0
	return Quaternion{
		X: a.X*s0 + b.X*s1,
		Y: a.Y*s0 + b.Y*s1,
		Z: a.Z*s0 + b.Z*s1,
		W: a.W*s0 + b.W*s1,
	}
}
