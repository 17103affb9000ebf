package frustum

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// Culler classifies primitives against the six planes of a view frustum.
type Culler[S Float] struct {
	planes PlaneSet[S]
}

// New extracts a Culler from the column-major matrix m. Pass normalize=false
// only when the Culler is used for point and box tests; sphere tests need
// unit plane normals.
func New[S Float](m [16]S, normalize bool) Culler[S] {
	return Culler[S]{planes: Extract(m, normalize)}
}

// FromMatrix extracts a Culler with normalized planes from m.
func FromMatrix[S Float](m [16]S) Culler[S] {
	return New(m, true)
}

// FromPerspective builds the frustum of a perspective projection with
// vertical field of view fovy (radians) and the given clip distances.
func FromPerspective[S Float](fovy, aspect, near, far S) Culler[S] {
	var m [16]S
	switch p := any(&m).(type) {
	case *[16]float32:
		*p = mgl32.Perspective(float32(fovy), float32(aspect), float32(near), float32(far))
	case *[16]float64:
		*p = mgl64.Perspective(float64(fovy), float64(aspect), float64(near), float64(far))
	default:
		m = convert[S](mgl64.Perspective(float64(fovy), float64(aspect), float64(near), float64(far)))
	}
	return FromMatrix(m)
}

// FromFrustum builds the frustum of a possibly off-center perspective
// projection whose near plane spans [left, right] x [bottom, top].
func FromFrustum[S Float](left, right, bottom, top, near, far S) Culler[S] {
	var m [16]S
	switch p := any(&m).(type) {
	case *[16]float32:
		*p = mgl32.Frustum(float32(left), float32(right), float32(bottom), float32(top), float32(near), float32(far))
	case *[16]float64:
		*p = mgl64.Frustum(float64(left), float64(right), float64(bottom), float64(top), float64(near), float64(far))
	default:
		m = convert[S](mgl64.Frustum(float64(left), float64(right), float64(bottom), float64(top), float64(near), float64(far)))
	}
	return FromMatrix(m)
}

// FromOrthographic builds the box frustum of an orthographic projection.
func FromOrthographic[S Float](left, right, bottom, top, near, far S) Culler[S] {
	var m [16]S
	switch p := any(&m).(type) {
	case *[16]float32:
		*p = mgl32.Ortho(float32(left), float32(right), float32(bottom), float32(top), float32(near), float32(far))
	case *[16]float64:
		*p = mgl64.Ortho(float64(left), float64(right), float64(bottom), float64(top), float64(near), float64(far))
	default:
		m = convert[S](mgl64.Ortho(float64(left), float64(right), float64(bottom), float64(top), float64(near), float64(far)))
	}
	return FromMatrix(m)
}

// FromViewProjection extracts a Culler from proj * view, giving planes in
// world space.
func FromViewProjection[S Float](proj, view [16]S) Culler[S] {
	return FromMatrix(mul4(proj, view))
}

// Update re-derives all six planes from m, replacing the previous ones.
func (c *Culler[S]) Update(m [16]S, normalize bool) {
	c.planes = Extract(m, normalize)
}

// Planes returns the culler's plane set.
func (c Culler[S]) Planes() PlaneSet[S] {
	return c.planes
}

func mul4[S Float](a, b [16]S) [16]S {
	var out [16]S
	switch p := any(&out).(type) {
	case *[16]float32:
		*p = mgl32.Mat4(any(a).([16]float32)).Mul4(mgl32.Mat4(any(b).([16]float32)))
	default:
		out = convert[S](mgl64.Mat4(widen(a)).Mul4(mgl64.Mat4(widen(b))))
	}
	return out
}

func convert[S Float](m mgl64.Mat4) [16]S {
	var out [16]S
	for i, v := range m {
		out[i] = S(v)
	}
	return out
}

func widen[S Float](m [16]S) [16]float64 {
	var out [16]float64
	for i, v := range m {
		out[i] = float64(v)
	}
	return out
}
