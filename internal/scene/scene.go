// Package scene builds the cube grid and orbiting camera culled by the demos.
package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/fulldump/frustum"
	"github.com/fulldump/frustum/internal/config"
)

// Object is one cube of the grid with both of its bounding volumes.
type Object struct {
	Box    frustum.Box[float32]
	Sphere frustum.Sphere[float32]
}

// Grid returns size*size cubes of side cube laid out on the y = 0 plane,
// centered on the origin.
func Grid(size int, spacing, cube float32) []Object {
	objects := make([]Object, 0, size*size)
	offset := float32(size-1) * spacing / 2
	half := cube / 2
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			c := mgl32.Vec3{float32(i)*spacing - offset, 0, float32(j)*spacing - offset}
			box := frustum.NewBox[float32](c.Sub(mgl32.Vec3{half, half, half}), c.Add(mgl32.Vec3{half, half, half}))
			objects = append(objects, Object{Box: box, Sphere: box.BoundingSphere()})
		}
	}
	return objects
}

// Extent returns the half width of the grid including the cubes themselves.
func Extent(size int, spacing, cube float32) float32 {
	return float32(size-1)*spacing/2 + cube/2
}

// Camera orbits Target at a fixed radius and height.
type Camera struct {
	Target mgl32.Vec3
	Up     mgl32.Vec3
	Radius float32
	Height float32
	Angle  float32
}

// NewCamera returns a camera at angle zero on the orbit described by cfg,
// looking at the origin with +Y up.
func NewCamera(cfg config.Camera) *Camera {
	return &Camera{
		Up:     mgl32.Vec3{0, 1, 0},
		Radius: cfg.OrbitRadius,
		Height: cfg.OrbitHeight,
	}
}

// Eye returns the camera position for the current angle.
func (c *Camera) Eye() mgl32.Vec3 {
	return c.Target.Add(RotateY(mgl32.Vec3{0, c.Height, c.Radius}, c.Angle))
}

// Advance moves the camera along its orbit.
func (c *Camera) Advance(delta float32) {
	c.Angle += delta
}

// View returns the look-at matrix from Eye to Target.
func (c *Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Eye(), c.Target, c.Up)
}

// Projection builds the projection matrix described by cfg.
func Projection(cfg config.Camera, aspect float32) mgl32.Mat4 {
	if cfg.Projection == config.Orthographic {
		h := cfg.OrthoSize
		return mgl32.Ortho(-h*aspect, h*aspect, -h, h, cfg.Near, cfg.Far)
	}
	return mgl32.Perspective(mgl32.DegToRad(cfg.FovDegrees), aspect, cfg.Near, cfg.Far)
}

// Stats counts classification results of one culling pass.
type Stats struct {
	Inside, Partial, Outside int
}

// Visible is the number of objects that were not culled.
func (s Stats) Visible() int {
	return s.Inside + s.Partial
}

func (s *Stats) add(r frustum.Intersection) {
	switch r {
	case frustum.Inside:
		s.Inside++
	case frustum.Partial:
		s.Partial++
	default:
		s.Outside++
	}
}

// Cull classifies every object, storing the result per object in results,
// which is grown as needed and returned.
func Cull(c frustum.Culler[float32], objects []Object, spheres bool, results []frustum.Intersection) ([]frustum.Intersection, Stats) {
	var stats Stats
	results = results[:0]
	for _, o := range objects {
		var r frustum.Intersection
		if spheres {
			r = c.ClassifySphereBounds(o.Sphere)
		} else {
			r = c.ClassifyBounds(o.Box)
		}
		stats.add(r)
		results = append(results, r)
	}
	return results, stats
}
