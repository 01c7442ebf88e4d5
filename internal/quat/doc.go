// Package quat implements unit quaternion algebra for orientation
// trajectories.
//
// Components are stored in (x, y, z, w) order with W as the scalar part.
// Every operation in this package, including [Slerp], assumes and preserves
// that convention; mixing in quaternions built under a (w, x, y, z)
// convention silently corrupts results.
//
// The tangent space at the identity is represented by [Vec], the image of
// the logarithmic map. Angular velocities and accelerations along a
// trajectory are ordinary [Vec] values.
//
// Degenerate inputs never produce errors: the exponential map of the zero
// vector is exactly the identity quaternion, and the logarithmic map of a
// quaternion whose vector part vanishes is exactly the zero vector.
package quat
