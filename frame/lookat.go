package frame

import "gonum.org/v1/gonum/spatial/r3"

// coincidentTol is the distance below which the look-at and look-from
// points are treated as coincident.
const coincidentTol = 1e-8

// LookAt builds a frame at lookFrom whose X axis points toward lookAt.
// The Z axis starts from viewUp (default world Z when omitted), Y = Z × X,
// and Z is re-derived as X × Y so the frame is exactly orthonormal. If the
// two points coincide within tolerance the X axis falls back to world X.
func LookAt(lookAt, lookFrom r3.Vec, viewUp ...r3.Vec) *Transform {
	up := r3.Vec{Z: 1}
	if len(viewUp) > 0 {
		up = viewUp[0]
	}

	xaxis := r3.Sub(lookAt, lookFrom)
	if r3.Norm(xaxis) < coincidentTol {
		xaxis = r3.Vec{X: 1}
	}
	xaxis = r3.Unit(xaxis)
	zaxis := r3.Unit(up)
	yaxis := r3.Unit(r3.Cross(zaxis, xaxis))
	zaxis = r3.Cross(xaxis, yaxis)

	return TransformFromAxesAndOrigin(xaxis, yaxis, zaxis, lookFrom)
}
