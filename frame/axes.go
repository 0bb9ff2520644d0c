package frame

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// orthonormalized3x3 returns the orthonormal matrix closest to the given
// rotation block, via the polar factor of its SVD (U Vᵀ). Row-major 3x3,
// matching the rotation block of Matrix4.
func orthonormalized3x3(block [9]float64) [9]float64 {
	var svd mat.SVD
	if !svd.Factorize(mat.NewDense(3, 3, block[:]), mat.SVDFull) {
		// SVD of a finite 3x3 does not fail in practice; keep the
		// input rather than guessing.
		return block
	}
	var u, v, r mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)
	r.Mul(&u, v.T())
	var out [9]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[3*i+j] = r.At(i, j)
		}
	}
	return out
}

// TransformFromAxes builds a frame whose X, Y and Z axis directions are the
// given vectors, as columns of the rotation block, orthonormalized, with
// zero translation. The result is in pre-multiply mode.
func TransformFromAxes(xaxis, yaxis, zaxis r3.Vec) *Transform {
	block := orthonormalized3x3([9]float64{
		xaxis.X, yaxis.X, zaxis.X,
		xaxis.Y, yaxis.Y, zaxis.Y,
		xaxis.Z, yaxis.Z, zaxis.Z,
	})
	m := Identity4()
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			m[r][c] = block[3*r+c]
		}
	}
	return TransformFromMatrix(m)
}

// TransformFromAxesAndOrigin builds the axis frame and post-multiplies a
// translation to origin.
func TransformFromAxesAndOrigin(xaxis, yaxis, zaxis, origin r3.Vec) *Transform {
	t := TransformFromAxes(xaxis, yaxis, zaxis)
	t.PostMultiply()
	t.Translate(origin)
	return t
}

// AxesFromTransform extracts the frame's three axis directions by mapping
// the world unit axes through the rotation block.
func AxesFromTransform(t *Transform) (xaxis, yaxis, zaxis r3.Vec) {
	xaxis = t.TransformVector(r3.Vec{X: 1})
	yaxis = t.TransformVector(r3.Vec{Y: 1})
	zaxis = t.TransformVector(r3.Vec{Z: 1})
	return xaxis, yaxis, zaxis
}

// Perpendiculars returns two unit vectors completing a right-handed
// orthonormal basis with v: both are perpendicular to v and to each other,
// with unit(v) × a = b. v must be non-zero.
func Perpendiculars(v r3.Vec) (a, b r3.Vec) {
	comp := [3]float64{v.X, v.Y, v.Z}
	x2 := v.X * v.X
	y2 := v.Y * v.Y
	z2 := v.Z * v.Z
	r := math.Sqrt(x2 + y2 + z2)

	// Permute so the largest component leads, avoiding a near-zero
	// denominator below.
	var dx, dy, dz int
	switch {
	case x2 > y2 && x2 > z2:
		dx, dy, dz = 0, 1, 2
	case y2 > z2:
		dx, dy, dz = 1, 2, 0
	default:
		dx, dy, dz = 2, 0, 1
	}

	va := comp[dx] / r
	vb := comp[dy] / r
	vc := comp[dz] / r
	tmp := math.Sqrt(va*va + vc*vc)

	var ac, bc [3]float64
	ac[dx] = -vc / tmp
	ac[dy] = 0
	ac[dz] = va / tmp
	bc[dx] = va * vb / tmp
	bc[dy] = -tmp
	bc[dz] = vb * vc / tmp
	a = r3.Vec{X: ac[0], Y: ac[1], Z: ac[2]}
	b = r3.Vec{X: bc[0], Y: bc[1], Z: bc[2]}
	return a, b
}

// TransformFromOriginAndNormal builds a frame at origin whose axis at index
// normalAxis (0, 1 or 2) is the unit direction of normal, with the two
// remaining axes derived via Perpendiculars.
func TransformFromOriginAndNormal(origin, normal r3.Vec, normalAxis int) *Transform {
	var axes [3]r3.Vec
	axes[normalAxis] = r3.Unit(normal)
	axes[(normalAxis+1)%3], axes[(normalAxis+2)%3] = Perpendiculars(axes[normalAxis])

	t := TransformFromAxes(axes[0], axes[1], axes[2])
	t.PostMultiply()
	t.Translate(origin)
	return t
}

// FindTransformAxis finds the frame axis of t most closely aligned with
// referenceVector: the one with the largest absolute dot product, earliest
// index winning ties. It returns the axis index, the axis direction itself,
// and the sign (+1 or -1) of the raw dot product.
func FindTransformAxis(t *Transform, referenceVector r3.Vec) (int, r3.Vec, float64) {
	ref := r3.Unit(referenceVector)
	xaxis, yaxis, zaxis := AxesFromTransform(t)
	axes := [3]r3.Vec{xaxis, yaxis, zaxis}

	matchIndex := 0
	best := math.Inf(-1)
	for i, axis := range axes {
		if p := math.Abs(r3.Dot(axis, ref)); p > best {
			best = p
			matchIndex = i
		}
	}
	matchAxis := axes[matchIndex]
	sign := 1.0
	if r3.Dot(matchAxis, ref) < 0 {
		sign = -1.0
	}
	return matchIndex, matchAxis, sign
}

// OrientationFromNormal returns the roll/pitch/yaw (radians) of a frame
// whose Z axis points along normal, with X and Y from Perpendiculars.
func OrientationFromNormal(normal r3.Vec) RPY {
	xaxis, yaxis := Perpendiculars(normal)
	return OrientationFromAxes(xaxis, yaxis, normal)
}

// OrientationFromAxes returns the roll/pitch/yaw (radians) of the frame
// built from the three axis directions.
func OrientationFromAxes(xaxis, yaxis, zaxis r3.Vec) RPY {
	t := TransformFromAxes(xaxis, yaxis, zaxis)
	return RollPitchYawFromTransform(t)
}
