package frame

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// ErrInvalidShape reports a matrix input that is not 4x4.
var ErrInvalidShape = errors.New("frame: matrix is not 4x4")

// Matrix4 is a 4x4 homogeneous transform matrix, row-major, translation in
// the last column.
type Matrix4 [4][4]float64

// Identity4 returns the 4x4 identity matrix.
func Identity4() Matrix4 {
	return Matrix4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Matrix4FromSlice builds a Matrix4 from 16 row-major values. It returns
// ErrInvalidShape if v does not hold exactly 16 elements.
func Matrix4FromSlice(v []float64) (Matrix4, error) {
	var m Matrix4
	if len(v) != 16 {
		return m, ErrInvalidShape
	}
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			m[r][c] = v[4*r+c]
		}
	}
	return m, nil
}

// Flat returns the matrix as 16 row-major values (m00..m03, m10..m13, ...),
// the layout the point pipeline consumes for poses.
func (m Matrix4) Flat() [16]float64 {
	var out [16]float64
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[4*r+c] = m[r][c]
		}
	}
	return out
}

// Mul returns m ⋅ n. Applied to a point, n acts first.
func (m Matrix4) Mul(n Matrix4) Matrix4 {
	var out Matrix4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			var s float64
			for k := 0; k < 4; k++ {
				s += m[r][k] * n[k][c]
			}
			out[r][c] = s
		}
	}
	return out
}

// Translation returns the translation column of m.
func (m Matrix4) Translation() r3.Vec {
	return r3.Vec{X: m[0][3], Y: m[1][3], Z: m[2][3]}
}

// TranslationMatrix returns the homogeneous matrix translating by t.
func TranslationMatrix(t r3.Vec) Matrix4 {
	m := Identity4()
	m[0][3] = t.X
	m[1][3] = t.Y
	m[2][3] = t.Z
	return m
}

// EulerMatrix returns the rotation matrix for roll, pitch, yaw in radians
// about the fixed X, Y and Z axes, applied in that order:
// Rz(yaw) Ry(pitch) Rx(roll).
func EulerMatrix(roll, pitch, yaw float64) Matrix4 {
	sr, cr := math.Sincos(roll)
	sp, cp := math.Sincos(pitch)
	sy, cy := math.Sincos(yaw)
	m := Identity4()
	m[0][0] = cy * cp
	m[0][1] = cy*sp*sr - sy*cr
	m[0][2] = cy*sp*cr + sy*sr
	m[1][0] = sy * cp
	m[1][1] = sy*sp*sr + cy*cr
	m[1][2] = sy*sp*cr - cy*sr
	m[2][0] = -sp
	m[2][1] = cp * sr
	m[2][2] = cp * cr
	return m
}
