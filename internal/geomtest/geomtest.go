// Package geomtest provides shared numeric assertion helpers and rotation
// fixtures for frame tests.
package geomtest

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/lightfield-viz/lightfield/frame"
)

// Tol is the default absolute tolerance for floating-point comparisons.
const Tol = 1e-9

// AssertVecApprox checks that got and want agree component-wise within tol.
func AssertVecApprox(t *testing.T, got, want r3.Vec, tol float64) {
	t.Helper()
	if math.Abs(got.X-want.X) > tol || math.Abs(got.Y-want.Y) > tol || math.Abs(got.Z-want.Z) > tol {
		t.Errorf("vector = %v, want %v (tol %g)", got, want, tol)
	}
}

// AssertQuatApprox checks that got and want represent the same rotation
// within tol, allowing the quaternion double cover (q and -q are equal).
func AssertQuatApprox(t *testing.T, got, want quat.Number, tol float64) {
	t.Helper()
	if quatClose(got, want, tol) || quatClose(got, quat.Scale(-1, want), tol) {
		return
	}
	t.Errorf("quaternion = %v, want %v or its negation (tol %g)", got, want, tol)
}

func quatClose(a, b quat.Number, tol float64) bool {
	return math.Abs(a.Real-b.Real) <= tol &&
		math.Abs(a.Imag-b.Imag) <= tol &&
		math.Abs(a.Jmag-b.Jmag) <= tol &&
		math.Abs(a.Kmag-b.Kmag) <= tol
}

// AssertMatrixApprox checks that got and want agree element-wise within tol.
func AssertMatrixApprox(t *testing.T, got, want frame.Matrix4, tol float64) {
	t.Helper()
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, tol)); diff != "" {
		t.Errorf("matrix mismatch (-want +got):\n%s", diff)
	}
}

// AssertOrthonormal checks that the rotation block of m is orthonormal and
// right-handed within tol.
func AssertOrthonormal(t *testing.T, m frame.Matrix4, tol float64) {
	t.Helper()
	x := r3.Vec{X: m[0][0], Y: m[1][0], Z: m[2][0]}
	y := r3.Vec{X: m[0][1], Y: m[1][1], Z: m[2][1]}
	z := r3.Vec{X: m[0][2], Y: m[1][2], Z: m[2][2]}
	for i, axis := range []r3.Vec{x, y, z} {
		if math.Abs(r3.Norm(axis)-1) > tol {
			t.Errorf("axis %d has norm %g, want 1", i, r3.Norm(axis))
		}
	}
	if d := math.Abs(r3.Dot(x, y)); d > tol {
		t.Errorf("x·y = %g, want 0", d)
	}
	if d := math.Abs(r3.Dot(y, z)); d > tol {
		t.Errorf("y·z = %g, want 0", d)
	}
	if d := math.Abs(r3.Dot(x, z)); d > tol {
		t.Errorf("x·z = %g, want 0", d)
	}
	AssertVecApprox(t, r3.Cross(x, y), z, tol)
}

// SampleQuaternions returns unit quaternions spread over a range of axes
// and angles, avoiding gimbal-lock pitch singularities.
func SampleQuaternions() []quat.Number {
	axes := []r3.Vec{
		{X: 1},
		{Y: 1},
		{Z: 1},
		{X: 1, Y: 1, Z: 1},
		{X: -2, Y: 1, Z: 3},
		{X: 0.5, Y: -0.5, Z: 1},
	}
	angles := []float64{-2.5, -1.2, -0.3, 0.1, 0.9, 1.7, 3.0}
	var qs []quat.Number
	for _, axis := range axes {
		u := r3.Unit(axis)
		for _, angle := range angles {
			s, c := math.Sincos(angle / 2)
			qs = append(qs, quat.Number{Real: c, Imag: s * u.X, Jmag: s * u.Y, Kmag: s * u.Z})
		}
	}
	return qs
}
