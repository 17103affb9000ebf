package frustum

import "math"

// Float is the scalar type of planes, matrices and vectors.
type Float interface {
	~float32 | ~float64
}

// Plane is the half-space A*x + B*y + C*z + D >= 0.
type Plane[S Float] struct {
	A, B, C, D S
}

// Dot returns A*x + B*y + C*z, the plane's directional part applied to p.
func (p Plane[S]) Dot(v [3]S) S {
	return p.A*v[0] + p.B*v[1] + p.C*v[2]
}

// Distance returns the signed distance of v from the plane. It is only a
// Euclidean distance when the plane is normalized.
func (p Plane[S]) Distance(v [3]S) S {
	return p.Dot(v) + p.D
}

// Normal returns the (A, B, C) part of the plane.
func (p Plane[S]) Normal() [3]S {
	return [3]S{p.A, p.B, p.C}
}

// Normalize returns the plane scaled so that (A, B, C) has unit length.
// A plane with a zero normal becomes the zero plane, which admits every point.
func (p Plane[S]) Normalize() Plane[S] {
	l := S(math.Sqrt(float64(p.A*p.A + p.B*p.B + p.C*p.C)))
	if l == 0 {
		return Plane[S]{}
	}
	return Plane[S]{A: p.A / l, B: p.B / l, C: p.C / l, D: p.D / l}
}

// positiveCorner returns the corner of the box [min, max] that maximizes Dot.
func (p Plane[S]) positiveCorner(min, max [3]S) [3]S {
	v := max
	if p.A < 0 {
		v[0] = min[0]
	}
	if p.B < 0 {
		v[1] = min[1]
	}
	if p.C < 0 {
		v[2] = min[2]
	}
	return v
}

// negativeCorner returns the corner of the box [min, max] that minimizes Dot.
func (p Plane[S]) negativeCorner(min, max [3]S) [3]S {
	v := min
	if p.A < 0 {
		v[0] = max[0]
	}
	if p.B < 0 {
		v[1] = max[1]
	}
	if p.C < 0 {
		v[2] = max[2]
	}
	return v
}
