package frame_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/lightfield-viz/lightfield/frame"
	"github.com/lightfield-viz/lightfield/internal/geomtest"
)

func TestTransformFromAxes(t *testing.T) {
	t.Run("orthonormal input is preserved", func(t *testing.T) {
		s, c := math.Sincos(0.6)
		x := r3.Vec{X: c, Y: s}
		y := r3.Vec{X: -s, Y: c}
		z := r3.Vec{Z: 1}

		tr := frame.TransformFromAxes(x, y, z)
		gx, gy, gz := frame.AxesFromTransform(tr)
		geomtest.AssertVecApprox(t, gx, x, 1e-12)
		geomtest.AssertVecApprox(t, gy, y, 1e-12)
		geomtest.AssertVecApprox(t, gz, z, 1e-12)
		geomtest.AssertVecApprox(t, tr.Matrix().Translation(), r3.Vec{}, 0)
	})

	t.Run("skewed input is orthonormalized", func(t *testing.T) {
		x := r3.Vec{X: 1, Y: 0.1}
		y := r3.Vec{X: 0.05, Y: 1, Z: 0.02}
		z := r3.Vec{X: -0.03, Z: 1}

		tr := frame.TransformFromAxes(x, y, z)
		geomtest.AssertOrthonormal(t, tr.Matrix(), 1e-12)
	})
}

func TestTransformFromAxesAndOrigin(t *testing.T) {
	origin := r3.Vec{X: 5, Y: -4, Z: 3}
	tr := frame.TransformFromAxesAndOrigin(r3.Vec{X: 1}, r3.Vec{Y: 1}, r3.Vec{Z: 1}, origin)

	geomtest.AssertVecApprox(t, tr.Matrix().Translation(), origin, 1e-15)
	geomtest.AssertVecApprox(t, tr.TransformPoint(r3.Vec{}), origin, 1e-15)
}

func TestPerpendiculars(t *testing.T) {
	t.Run("world Z gives the documented pair", func(t *testing.T) {
		a, b := frame.Perpendiculars(r3.Vec{Z: 1})
		geomtest.AssertVecApprox(t, a, r3.Vec{Y: 1}, 1e-15)
		geomtest.AssertVecApprox(t, b, r3.Vec{X: -1}, 1e-15)
	})

	t.Run("arbitrary vectors give a right-handed basis", func(t *testing.T) {
		for _, v := range []r3.Vec{
			{X: 1}, {Y: 1}, {Z: -1},
			{X: 1, Y: 2, Z: 3},
			{X: -0.2, Y: 0.1, Z: 5},
			{X: 1e-3, Y: -1e-3, Z: 1e-3},
		} {
			a, b := frame.Perpendiculars(v)
			u := r3.Unit(v)
			assert.InDelta(t, 1, r3.Norm(a), 1e-12)
			assert.InDelta(t, 1, r3.Norm(b), 1e-12)
			assert.InDelta(t, 0, r3.Dot(u, a), 1e-12)
			assert.InDelta(t, 0, r3.Dot(u, b), 1e-12)
			geomtest.AssertVecApprox(t, r3.Cross(u, a), b, 1e-12)
		}
	})
}

func TestTransformFromOriginAndNormal(t *testing.T) {
	origin := r3.Vec{X: 1, Y: 2, Z: 3}
	normal := r3.Vec{Z: 2} // non-unit on purpose

	for _, axis := range []int{0, 1, 2} {
		tr := frame.TransformFromOriginAndNormal(origin, normal, axis)
		geomtest.AssertOrthonormal(t, tr.Matrix(), 1e-12)
		geomtest.AssertVecApprox(t, tr.Matrix().Translation(), origin, 1e-12)

		// The frame axis at the requested index must be the unit
		// normal.
		var axes [3]r3.Vec
		axes[0], axes[1], axes[2] = frame.AxesFromTransform(tr)
		geomtest.AssertVecApprox(t, axes[axis], r3.Vec{Z: 1}, 1e-12)
	}
}

func TestFindTransformAxis(t *testing.T) {
	identity := frame.NewTransform()

	t.Run("positive x", func(t *testing.T) {
		idx, axis, sign := frame.FindTransformAxis(identity, r3.Vec{X: 1})
		assert.Equal(t, 0, idx)
		geomtest.AssertVecApprox(t, axis, r3.Vec{X: 1}, 0)
		assert.Equal(t, 1.0, sign)
	})

	t.Run("negative x keeps the axis, flips the sign", func(t *testing.T) {
		idx, axis, sign := frame.FindTransformAxis(identity, r3.Vec{X: -1})
		assert.Equal(t, 0, idx)
		geomtest.AssertVecApprox(t, axis, r3.Vec{X: 1}, 0)
		assert.Equal(t, -1.0, sign)
	})

	t.Run("rotated frame", func(t *testing.T) {
		tr := frame.FromPositionRPYDegrees(r3.Vec{}, frame.RPY{Yaw: 90})
		// Frame X now points along world Y.
		idx, axis, sign := frame.FindTransformAxis(tr, r3.Vec{Y: 1})
		assert.Equal(t, 0, idx)
		geomtest.AssertVecApprox(t, axis, r3.Vec{Y: 1}, 1e-12)
		assert.Equal(t, 1.0, sign)
	})

	t.Run("ties break toward the lowest index", func(t *testing.T) {
		// The reference projects equally onto X and Y.
		idx, _, sign := frame.FindTransformAxis(identity, r3.Vec{X: 1, Y: 1})
		assert.Equal(t, 0, idx)
		assert.Equal(t, 1.0, sign)
	})
}

func TestOrientationFromNormal(t *testing.T) {
	// A frame built back from the returned angles must carry Z onto the
	// normal.
	for _, normal := range []r3.Vec{
		{Z: 1},
		{X: 1},
		{X: 1, Y: 1, Z: 1},
		{X: -0.3, Y: 0.4, Z: -0.8},
	} {
		rpy := frame.OrientationFromNormal(normal)
		m := frame.EulerMatrix(rpy.Roll, rpy.Pitch, rpy.Yaw)
		got := frame.TransformFromMatrix(m).TransformVector(r3.Vec{Z: 1})
		geomtest.AssertVecApprox(t, got, r3.Unit(normal), 1e-9)
	}
}

func TestOrientationFromAxes(t *testing.T) {
	s, c := math.Sincos(math.Pi / 6)
	x := r3.Vec{X: c, Y: s}
	y := r3.Vec{X: -s, Y: c}
	z := r3.Vec{Z: 1}

	rpy := frame.OrientationFromAxes(x, y, z)
	assert.InDelta(t, 0, rpy.Roll, 1e-9)
	assert.InDelta(t, 0, rpy.Pitch, 1e-9)
	assert.InDelta(t, math.Pi/6, rpy.Yaw, 1e-9)
}
