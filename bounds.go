package frustum

import "math"

// Box is an axis-aligned bounding box with Min <= Max on every axis.
// A box with Min == Max is a point.
type Box[S Float] struct {
	Min, Max [3]S
}

// NewBox returns the box spanned by two opposite corners given in any order.
func NewBox[S Float](a, b [3]S) Box[S] {
	var bx Box[S]
	for i := 0; i < 3; i++ {
		bx.Min[i] = min(a[i], b[i])
		bx.Max[i] = max(a[i], b[i])
	}
	return bx
}

// BoxFromPoints returns the smallest box containing all points.
// It returns the zero box when points is empty.
func BoxFromPoints[S Float](points ...[3]S) Box[S] {
	if len(points) == 0 {
		return Box[S]{}
	}
	b := Box[S]{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		b = b.ExpandByPoint(p)
	}
	return b
}

// Valid reports whether Min <= Max on every axis.
func (b Box[S]) Valid() bool {
	return b.Min[0] <= b.Max[0] && b.Min[1] <= b.Max[1] && b.Min[2] <= b.Max[2]
}

// Center returns the midpoint of the box.
func (b Box[S]) Center() [3]S {
	return [3]S{
		(b.Min[0] + b.Max[0]) / 2,
		(b.Min[1] + b.Max[1]) / 2,
		(b.Min[2] + b.Max[2]) / 2,
	}
}

// Size returns the box extent along each axis.
func (b Box[S]) Size() [3]S {
	return [3]S{b.Max[0] - b.Min[0], b.Max[1] - b.Min[1], b.Max[2] - b.Min[2]}
}

// ExpandByPoint returns the box grown to include p.
func (b Box[S]) ExpandByPoint(p [3]S) Box[S] {
	for i := 0; i < 3; i++ {
		b.Min[i] = min(b.Min[i], p[i])
		b.Max[i] = max(b.Max[i], p[i])
	}
	return b
}

// ExpandByScalar returns the box grown by s on every side.
func (b Box[S]) ExpandByScalar(s S) Box[S] {
	for i := 0; i < 3; i++ {
		b.Min[i] -= s
		b.Max[i] += s
	}
	return b
}

// Translate returns the box moved by offset.
func (b Box[S]) Translate(offset [3]S) Box[S] {
	for i := 0; i < 3; i++ {
		b.Min[i] += offset[i]
		b.Max[i] += offset[i]
	}
	return b
}

// BoundingSphere returns the sphere centered on the box passing through its corners.
func (b Box[S]) BoundingSphere() Sphere[S] {
	sz := b.Size()
	r := math.Sqrt(float64(sz[0]*sz[0]+sz[1]*sz[1]+sz[2]*sz[2])) / 2
	return Sphere[S]{Center: b.Center(), Radius: S(r)}
}

// Sphere is a ball given by center and non-negative radius.
// A zero radius is a point.
type Sphere[S Float] struct {
	Center [3]S
	Radius S
}
