package frame

import "gonum.org/v1/gonum/spatial/r3"

// Order selects which of the two component matrices Apply concatenates
// first.
type Order int

const (
	// RotateThenTranslate concatenates the rotation before the
	// translation.
	RotateThenTranslate Order = iota
	// TranslateThenRotate concatenates the translation before the
	// rotation.
	TranslateThenRotate
)

// Apply composes the given translation and/or rotation matrices onto t in
// the requested order. A nil matrix is skipped. post selects post-multiply
// composition; otherwise pre-multiply is used. The mode remains set on t
// afterwards. Apply mutates t and returns the same handle.
func Apply(t *Transform, translation, rotation *Matrix4, order Order, post bool) *Transform {
	if post {
		t.PostMultiply()
	} else {
		t.PreMultiply()
	}
	if order == RotateThenTranslate {
		if rotation != nil {
			t.Concatenate(*rotation)
		}
		if translation != nil {
			t.Concatenate(*translation)
		}
	} else {
		if translation != nil {
			t.Concatenate(*translation)
		}
		if rotation != nil {
			t.Concatenate(*rotation)
		}
	}
	return t
}

// ApplyEuler builds a translation from (tx, ty, tz) and a rotation from
// roll/pitch/yaw given in degrees, then composes both onto t via Apply.
func ApplyEuler(t *Transform, tx, ty, tz, rollDeg, pitchDeg, yawDeg float64, order Order, post bool) *Transform {
	translation := TranslationMatrix(r3.Vec{X: tx, Y: ty, Z: tz})
	rotation := EulerMatrix(radians(rollDeg), radians(pitchDeg), radians(yawDeg))
	return Apply(t, &translation, &rotation, order, post)
}

// Concatenated returns a new post-multiply transform concatenating every
// element of list in order. An empty list yields the identity.
func Concatenated(list []*Transform) *Transform {
	result := NewTransform()
	result.PostMultiply()
	for _, t := range list {
		result.ConcatenateTransform(t)
	}
	return result
}
