package frustum

// ContainsPoint reports whether p lies on the non-negative side of all six planes.
func (c Culler[S]) ContainsPoint(p [3]S) bool {
	for _, pl := range c.planes.Planes() {
		if pl.Dot(p) < -pl.D {
			return false
		}
	}
	return true
}

// ClassifyPoint is ContainsPoint as an Intersection. It never returns Partial.
func (c Culler[S]) ClassifyPoint(p [3]S) Intersection {
	if c.ContainsPoint(p) {
		return Inside
	}
	return Outside
}

// IntersectsSphere reports whether the sphere touches the frustum. It does
// not distinguish Inside from Partial; use ClassifySphere for that.
// The planes must be normalized.
func (c Culler[S]) IntersectsSphere(center [3]S, radius S) bool {
	for _, pl := range c.planes.Planes() {
		if pl.Distance(center) < -radius {
			return false
		}
	}
	return true
}

// ClassifySphere classifies the sphere against the frustum. The planes must
// be normalized.
func (c Culler[S]) ClassifySphere(center [3]S, radius S) Intersection {
	res, _ := c.classifySphere(center, radius)
	return res
}

// SphereRejectedBy returns the first face, in evaluation order, that places
// the whole sphere outside the frustum.
func (c Culler[S]) SphereRejectedBy(center [3]S, radius S) (Face, bool) {
	res, f := c.classifySphere(center, radius)
	return f, res == Outside
}

func (c Culler[S]) classifySphere(center [3]S, radius S) (Intersection, Face) {
	inside := true
	for f, pl := range c.planes.Planes() {
		dist := pl.Distance(center)
		if dist < -radius {
			return Outside, Face(f)
		}
		inside = inside && dist >= radius
	}
	if inside {
		return Inside, -1
	}
	return Partial, -1
}

// IntersectsBox reports whether the axis-aligned box [min, max] touches the
// frustum. It does not distinguish Inside from Partial; use ClassifyBox for that.
func (c Culler[S]) IntersectsBox(min, max [3]S) bool {
	for _, pl := range c.planes.Planes() {
		if pl.Dot(pl.positiveCorner(min, max)) < -pl.D {
			return false
		}
	}
	return true
}

// ClassifyBox classifies the axis-aligned box [min, max] against the frustum.
func (c Culler[S]) ClassifyBox(min, max [3]S) Intersection {
	res, _ := c.classifyBox(min, max)
	return res
}

// BoxRejectedBy returns the first face, in evaluation order, that places the
// whole box outside the frustum.
func (c Culler[S]) BoxRejectedBy(min, max [3]S) (Face, bool) {
	res, f := c.classifyBox(min, max)
	return f, res == Outside
}

func (c Culler[S]) classifyBox(min, max [3]S) (Intersection, Face) {
	inside := true
	for f, pl := range c.planes.Planes() {
		if pl.Dot(pl.positiveCorner(min, max)) < -pl.D {
			return Outside, Face(f)
		}
		inside = inside && pl.Dot(pl.negativeCorner(min, max)) >= -pl.D
	}
	if inside {
		return Inside, -1
	}
	return Partial, -1
}

// IntersectsBounds is IntersectsBox for a Box value.
func (c Culler[S]) IntersectsBounds(b Box[S]) bool {
	return c.IntersectsBox(b.Min, b.Max)
}

// ClassifyBounds is ClassifyBox for a Box value.
func (c Culler[S]) ClassifyBounds(b Box[S]) Intersection {
	return c.ClassifyBox(b.Min, b.Max)
}

// ClassifySphereBounds is ClassifySphere for a Sphere value.
func (c Culler[S]) ClassifySphereBounds(s Sphere[S]) Intersection {
	return c.ClassifySphere(s.Center, s.Radius)
}
