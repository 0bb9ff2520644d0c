package frame

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Slerp spherically interpolates from a to b along the shortest arc.
// t=0 yields a, t=1 yields b (up to quaternion double cover); t outside
// [0, 1] extrapolates. Inputs are normalised first, so slightly non-unit
// quaternions are tolerated. When the inputs are nearly parallel the great
// circle is ill-conditioned and a normalised linear interpolation is used
// instead.
func Slerp(a, b quat.Number, t float64) quat.Number {
	a = unitQuat(a)
	b = unitQuat(b)

	dot := a.Real*b.Real + a.Imag*b.Imag + a.Jmag*b.Jmag + a.Kmag*b.Kmag
	// q and -q are the same rotation; flip b to take the shorter path.
	if dot < 0 {
		b = quat.Scale(-1, b)
		dot = -dot
	}

	if dot > 0.9995 {
		q := quat.Add(a, quat.Scale(t, quat.Sub(b, a)))
		return unitQuat(q)
	}

	theta0 := math.Acos(dot)
	theta := theta0 * t
	sinTheta0 := math.Sin(theta0)
	s0 := math.Cos(theta) - dot*math.Sin(theta)/sinTheta0
	s1 := math.Sin(theta) / sinTheta0
	return quat.Add(quat.Scale(s0, a), quat.Scale(s1, b))
}

func unitQuat(q quat.Number) quat.Number {
	n := quat.Abs(q)
	if n == 0 {
		return quat.Number{Real: 1}
	}
	return quat.Scale(1/n, q)
}

// Interpolate blends two frames: position linearly, orientation by Slerp,
// with weightB selecting b's share. weightB outside [0, 1] extrapolates.
func Interpolate(a, b *Transform, weightB float64) *Transform {
	posA, quatA := PoseFromTransform(a)
	posB, quatB := PoseFromTransform(b)
	pos := r3.Add(r3.Scale(1-weightB, posA), r3.Scale(weightB, posB))
	q := Slerp(quatA, quatB, weightB)
	return TransformFromPose(pos, q)
}
