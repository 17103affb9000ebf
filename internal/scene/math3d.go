package scene

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// RotateY rotates v around the Y axis
func RotateY(v mgl32.Vec3, angle float32) mgl32.Vec3 {
	cos := math32.Cos(angle)
	sin := math32.Sin(angle)
	return mgl32.Vec3{
		v.X()*cos + v.Z()*sin,
		v.Y(),
		-v.X()*sin + v.Z()*cos,
	}
}

// TopDown maps the x/z coordinates of v onto a size x size image covering
// [-extent, extent] on both axes. +X points right and -Z points up.
func TopDown(v mgl32.Vec3, extent float32, size int) (x, y int) {
	factor := float32(size) / (2 * extent)
	x = int(math32.Floor((v.X() + extent) * factor))
	y = int(math32.Floor((v.Z() + extent) * factor))
	return x, y
}
