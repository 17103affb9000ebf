package frustum

// Face names one of the six frustum planes. The numeric order is the order
// in which planes are evaluated by every classification.
type Face int

const (
	Left   Face = iota // -X
	Right              // +X
	Bottom             // -Y
	Top                // +Y
	Near               // -Z
	Far                // +Z
)

// NumFaces is the number of planes bounding a frustum.
const NumFaces = 6

var faceNames = [NumFaces]string{"left", "right", "bottom", "top", "near", "far"}

func (f Face) String() string {
	if f < 0 || f >= NumFaces {
		return "Face(invalid)"
	}
	return faceNames[f]
}

// PlaneSet holds the six half-spaces of a frustum.
type PlaneSet[S Float] struct {
	Left, Right, Bottom, Top, Near, Far Plane[S]

	normalized bool
}

// Extract derives the six planes from the column-major matrix m, where
// clip = m * object. Row i of the matrix is (m[i], m[4+i], m[8+i], m[12+i]).
// When normalize is set every plane is rescaled to a unit normal, which is
// required for sphere tests.
func Extract[S Float](m [16]S, normalize bool) PlaneSet[S] {
	row := func(i int) Plane[S] {
		return Plane[S]{A: m[i], B: m[4+i], C: m[8+i], D: m[12+i]}
	}
	r0, r1, r2, r3 := row(0), row(1), row(2), row(3)

	ps := PlaneSet[S]{
		Left:       add(r3, r0),
		Right:      sub(r3, r0),
		Bottom:     add(r3, r1),
		Top:        sub(r3, r1),
		Near:       add(r3, r2),
		Far:        sub(r3, r2),
		normalized: normalize,
	}
	if normalize {
		ps.Left = ps.Left.Normalize()
		ps.Right = ps.Right.Normalize()
		ps.Bottom = ps.Bottom.Normalize()
		ps.Top = ps.Top.Normalize()
		ps.Near = ps.Near.Normalize()
		ps.Far = ps.Far.Normalize()
	}
	return ps
}

func add[S Float](a, b Plane[S]) Plane[S] {
	return Plane[S]{A: a.A + b.A, B: a.B + b.B, C: a.C + b.C, D: a.D + b.D}
}

func sub[S Float](a, b Plane[S]) Plane[S] {
	return Plane[S]{A: a.A - b.A, B: a.B - b.B, C: a.C - b.C, D: a.D - b.D}
}

// Normalized reports whether the planes were scaled to unit normals.
func (ps PlaneSet[S]) Normalized() bool {
	return ps.normalized
}

// Plane returns the plane for face f. It panics on an invalid face.
func (ps PlaneSet[S]) Plane(f Face) Plane[S] {
	switch f {
	case Left:
		return ps.Left
	case Right:
		return ps.Right
	case Bottom:
		return ps.Bottom
	case Top:
		return ps.Top
	case Near:
		return ps.Near
	case Far:
		return ps.Far
	}
	panic("frustum: invalid face " + f.String())
}

// Planes returns the six planes in evaluation order.
func (ps PlaneSet[S]) Planes() [NumFaces]Plane[S] {
	return [NumFaces]Plane[S]{ps.Left, ps.Right, ps.Bottom, ps.Top, ps.Near, ps.Far}
}
