package frame

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// RPY is a roll/pitch/yaw Euler triple about the fixed world X, Y and Z
// axes, applied in that order. Units are documented per function: the
// conversion functions here use radians, the *Degrees constructors degrees.
type RPY struct {
	Roll  float64
	Pitch float64
	Yaw   float64
}

// Pose pairs a position with a unit orientation quaternion.
type Pose struct {
	Position    r3.Vec
	Orientation quat.Number
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }

// rotationMatrix expands q into a rotation matrix with zero translation.
// Non-unit quaternions are scaled through rather than rejected; a near-zero
// quaternion yields the identity.
func rotationMatrix(q quat.Number) Matrix4 {
	n := q.Real*q.Real + q.Imag*q.Imag + q.Jmag*q.Jmag + q.Kmag*q.Kmag
	m := Identity4()
	if n < 1e-15 {
		return m
	}
	s := 2 / n
	w, x, y, z := q.Real, q.Imag, q.Jmag, q.Kmag
	m[0][0] = 1 - s*(y*y+z*z)
	m[0][1] = s * (x*y - w*z)
	m[0][2] = s * (x*z + w*y)
	m[1][0] = s * (x*y + w*z)
	m[1][1] = 1 - s*(x*x+z*z)
	m[1][2] = s * (y*z - w*x)
	m[2][0] = s * (x*z - w*y)
	m[2][1] = s * (y*z + w*x)
	m[2][2] = 1 - s*(x*x+y*y)
	return m
}

// quaternionFromMatrix extracts a unit quaternion from the rotation block
// of m using the Bar-Itzhack eigendecomposition method: the quaternion is
// the eigenvector of a symmetric 4x4 built from the block, for its largest
// eigenvalue. Unlike trace-based extraction this stays stable for rotations
// at and near 180 degrees. The sign is normalised so w >= 0.
func quaternionFromMatrix(m Matrix4) quat.Number {
	k := make([]float64, 16)
	k[0*4+0] = m[0][0] - m[1][1] - m[2][2]
	k[1*4+1] = m[1][1] - m[0][0] - m[2][2]
	k[2*4+2] = m[2][2] - m[0][0] - m[1][1]
	k[3*4+3] = m[0][0] + m[1][1] + m[2][2]
	k[0*4+1] = m[0][1] + m[1][0]
	k[1*4+0] = k[0*4+1]
	k[0*4+2] = m[0][2] + m[2][0]
	k[2*4+0] = k[0*4+2]
	k[1*4+2] = m[1][2] + m[2][1]
	k[2*4+1] = k[1*4+2]
	k[0*4+3] = m[2][1] - m[1][2]
	k[3*4+0] = k[0*4+3]
	k[1*4+3] = m[0][2] - m[2][0]
	k[3*4+1] = k[1*4+3]
	k[2*4+3] = m[1][0] - m[0][1]
	k[3*4+2] = k[2*4+3]
	for i := range k {
		k[i] /= 3
	}

	var eig mat.EigenSym
	if !eig.Factorize(mat.NewSymDense(4, k), true) {
		// Factorization of a finite symmetric 4x4 does not fail in
		// practice; fall back to the identity orientation.
		return quat.Number{Real: 1}
	}
	var vecs mat.Dense
	eig.VectorsTo(&vecs)

	// Eigenvalues come back in ascending order; the quaternion is the
	// eigenvector of the largest.
	q := quat.Number{
		Real: vecs.At(3, 3),
		Imag: vecs.At(0, 3),
		Jmag: vecs.At(1, 3),
		Kmag: vecs.At(2, 3),
	}
	if q.Real < 0 {
		q = quat.Scale(-1, q)
	}
	return q
}

// PoseFromTransform extracts the position and unit orientation quaternion
// of t. The quaternion has w >= 0.
func PoseFromTransform(t *Transform) (r3.Vec, quat.Number) {
	m := t.Matrix()
	return m.Translation(), quaternionFromMatrix(m)
}

// TransformFromPose builds a transform rotating by q and translating to
// position.
func TransformFromPose(position r3.Vec, q quat.Number) *Transform {
	m := rotationMatrix(q)
	m[0][3] = position.X
	m[1][3] = position.Y
	m[2][3] = position.Z
	return TransformFromMatrix(m)
}

// RollPitchYawFromTransform returns the roll/pitch/yaw (radians) of the
// rotation carried by t.
func RollPitchYawFromTransform(t *Transform) RPY {
	_, q := PoseFromTransform(t)
	return QuaternionToRPY(q)
}

// FromPositionRPYDegrees builds a transform from a position and
// roll/pitch/yaw given in degrees.
func FromPositionRPYDegrees(position r3.Vec, rpy RPY) *Transform {
	m := EulerMatrix(radians(rpy.Roll), radians(rpy.Pitch), radians(rpy.Yaw))
	m[0][3] = position.X
	m[1][3] = position.Y
	m[2][3] = position.Z
	return TransformFromMatrix(m)
}

// RPYToQuaternion converts roll/pitch/yaw in radians to a unit quaternion.
// Composition order matches EulerMatrix: qz(yaw) qy(pitch) qx(roll).
func RPYToQuaternion(rpy RPY) quat.Number {
	sr, cr := math.Sincos(rpy.Roll / 2)
	sp, cp := math.Sincos(rpy.Pitch / 2)
	sy, cy := math.Sincos(rpy.Yaw / 2)
	qx := quat.Number{Real: cr, Imag: sr}
	qy := quat.Number{Real: cp, Jmag: sp}
	qz := quat.Number{Real: cy, Kmag: sy}
	return quat.Mul(qz, quat.Mul(qy, qx))
}

// QuaternionToRPY converts a unit quaternion to roll/pitch/yaw in radians.
// Pitch is reported in [-pi/2, pi/2]; at the gimbal-lock singularity
// (|pitch| = pi/2) yaw is fixed to zero and roll absorbs the remaining
// rotation.
func QuaternionToRPY(q quat.Number) RPY {
	m := rotationMatrix(q)
	sy := math.Hypot(m[0][0], m[1][0])
	if sy < 1e-6 {
		return RPY{
			Roll:  math.Atan2(-m[1][2], m[1][1]),
			Pitch: math.Atan2(-m[2][0], sy),
			Yaw:   0,
		}
	}
	return RPY{
		Roll:  math.Atan2(m[2][1], m[2][2]),
		Pitch: math.Atan2(-m[2][0], sy),
		Yaw:   math.Atan2(m[1][0], m[0][0]),
	}
}
