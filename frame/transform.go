package frame

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Mode selects how Concatenate composes a new matrix onto a Transform.
type Mode int

const (
	// PreMultiply applies a newly concatenated matrix before the
	// accumulated transform when mapping a point (current ⋅ new).
	PreMultiply Mode = iota
	// PostMultiply applies it after (new ⋅ current).
	PostMultiply
)

func (m Mode) String() string {
	switch m {
	case PreMultiply:
		return "pre-multiply"
	case PostMultiply:
		return "post-multiply"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Transform is a mutable rigid/affine transform: a 4x4 matrix plus an
// explicit composition mode. The zero value is not useful; use NewTransform.
// A Transform is owned by its caller and does no internal locking.
type Transform struct {
	m    Matrix4
	mode Mode
}

// NewTransform returns an identity transform in pre-multiply mode.
func NewTransform() *Transform {
	return &Transform{m: Identity4(), mode: PreMultiply}
}

// SetMatrix replaces the transform's matrix.
func (t *Transform) SetMatrix(m Matrix4) { t.m = m }

// Matrix returns a copy of the transform's matrix.
func (t *Transform) Matrix() Matrix4 { return t.m }

// PreMultiply switches the composition mode so that subsequent
// concatenations act before the accumulated transform.
func (t *Transform) PreMultiply() { t.mode = PreMultiply }

// PostMultiply switches the composition mode so that subsequent
// concatenations act after the accumulated transform.
func (t *Transform) PostMultiply() { t.mode = PostMultiply }

// CompositionMode reports the current composition mode.
func (t *Transform) CompositionMode() Mode { return t.mode }

// Concatenate composes m onto the transform according to the current mode.
func (t *Transform) Concatenate(m Matrix4) {
	if t.mode == PostMultiply {
		t.m = m.Mul(t.m)
	} else {
		t.m = t.m.Mul(m)
	}
}

// ConcatenateTransform composes the matrix of other onto the transform
// according to the current mode. other is not modified.
func (t *Transform) ConcatenateTransform(other *Transform) {
	t.Concatenate(other.m)
}

// Translate concatenates a translation by v, honouring the current mode.
func (t *Transform) Translate(v r3.Vec) {
	t.Concatenate(TranslationMatrix(v))
}

// RotateRPY concatenates a fixed-axis XYZ rotation given in radians,
// honouring the current mode.
func (t *Transform) RotateRPY(roll, pitch, yaw float64) {
	t.Concatenate(EulerMatrix(roll, pitch, yaw))
}

// TransformPoint maps p through the full affine transform.
func (t *Transform) TransformPoint(p r3.Vec) r3.Vec {
	m := &t.m
	return r3.Vec{
		X: m[0][0]*p.X + m[0][1]*p.Y + m[0][2]*p.Z + m[0][3],
		Y: m[1][0]*p.X + m[1][1]*p.Y + m[1][2]*p.Z + m[1][3],
		Z: m[2][0]*p.X + m[2][1]*p.Y + m[2][2]*p.Z + m[2][3],
	}
}

// TransformVector maps a direction through the rotation block only,
// ignoring translation. For the orthonormal frames built by this package
// this is also the correct normal transform.
func (t *Transform) TransformVector(v r3.Vec) r3.Vec {
	m := &t.m
	return r3.Vec{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

// Inverse returns a new transform holding the matrix inverse, in the same
// composition mode. It fails if the matrix is singular.
func (t *Transform) Inverse() (*Transform, error) {
	flat := t.m.Flat()
	var inv mat.Dense
	if err := inv.Inverse(mat.NewDense(4, 4, flat[:])); err != nil {
		return nil, fmt.Errorf("inverting transform: %w", err)
	}
	var m Matrix4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			m[r][c] = inv.At(r, c)
		}
	}
	return &Transform{m: m, mode: t.mode}, nil
}

// TransformFromMatrix returns a new transform holding m, in pre-multiply
// mode.
func TransformFromMatrix(m Matrix4) *Transform {
	t := NewTransform()
	t.SetMatrix(m)
	return t
}

// TransformFromSlice builds a transform from 16 row-major matrix values.
// It returns ErrInvalidShape if v does not hold exactly 16 elements.
func TransformFromSlice(v []float64) (*Transform, error) {
	m, err := Matrix4FromSlice(v)
	if err != nil {
		return nil, fmt.Errorf("building transform: %w", err)
	}
	return TransformFromMatrix(m), nil
}

// MatrixFromTransform returns the transform's 4x4 matrix.
func MatrixFromTransform(t *Transform) Matrix4 {
	return t.Matrix()
}

// CopyFrame returns an independent transform with the same matrix, in
// post-multiply mode.
func CopyFrame(t *Transform) *Transform {
	c := NewTransform()
	c.PostMultiply()
	c.SetMatrix(t.Matrix())
	return c
}
