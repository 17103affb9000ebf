// Package frustum classifies points, spheres and axis-aligned boxes against
// a camera view frustum.
//
// The six frustum planes are extracted directly from a combined projection
// (or projection*view) matrix with the Gribb/Hartmann method: each plane is
// the sum or difference of the matrix's fourth row with one of the first
// three, which is the clip-space condition -w <= x,y,z <= w rewritten as a
// half-space in object space.
//
// Matrices are column-major [16]S arrays, the layout used by
// github.com/go-gl/mathgl, so mgl32.Mat4 and mgl64.Mat4 values can be passed
// as-is. Vectors are [3]S, which accepts mgl32.Vec3 and mgl64.Vec3.
//
//	vp := proj.Mul4(view)
//	c := frustum.FromMatrix(vp)
//	if c.IntersectsBox(min, max) {
//		draw(obj)
//	}
//
// A Culler is an immutable value once constructed. Concurrent reads are safe;
// Update must not overlap with any read.
//
// Projection matrices must be non-singular. When normalization is requested
// and a plane's normal has zero length, that plane is stored as all zeros and
// never rejects anything.
package frustum
