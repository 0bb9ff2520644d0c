// Package frame provides coordinate-frame and rigid-transform utilities for
// the visualiser: conversions between 4x4 homogeneous matrices, axis and
// origin/normal frame construction, quaternion/Euler interconversion, and
// frame interpolation.
//
// Conventions, fixed throughout the package:
//
//   - Matrices are 4x4 row-major ([4][4]float64), applied to column vectors,
//     with translation in the last column. The flat [16]float64 form
//     (m00..m03, m10..m13, ...) matches the pose layout used by the point
//     pipeline.
//   - Vectors are gonum spatial/r3 values.
//   - Quaternions are gonum num/quat values: component order (w, x, y, z) =
//     (Real, Imag, Jmag, Kmag). Quaternions extracted from matrices are
//     sign-normalised so w >= 0.
//   - Euler angles are roll/pitch/yaw about the fixed world X, Y and Z axes,
//     applied in that order, so the rotation matrix is Rz(yaw) Ry(pitch)
//     Rx(roll). Angles are radians unless a function documents degrees.
//
// Everything here is a stateless computation; the only mutable state is the
// Transform value a caller passes in and owns. Functions do no locking, so
// concurrent mutation of a shared Transform must be serialised by the caller.
package frame
