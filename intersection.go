package frustum

//go:generate stringer -type=Intersection

// Intersection is the result of a three-way frustum classification.
type Intersection int

const (
	// Outside means a single plane excludes the whole primitive.
	Outside Intersection = iota
	// Partial means the primitive straddles at least one plane.
	Partial
	// Inside means the primitive lies entirely within all six planes.
	Inside
)

// Visible reports whether the primitive touches the frustum at all.
func (i Intersection) Visible() bool {
	return i == Inside || i == Partial
}
