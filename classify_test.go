package frustum

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func orthoUnit() Culler[float32] {
	return FromMatrix(mgl32.Ortho(-1, 1, -1, 1, -1, 1))
}

func perspective90() Culler[float64] {
	return FromMatrix(mgl64.Perspective(math.Pi/2, 1, 0.1, 100))
}

func TestContainsPoint(t *testing.T) {
	c := orthoUnit()

	tests := []struct {
		name  string
		point mgl32.Vec3
		want  bool
	}{
		{"origin", mgl32.Vec3{0, 0, 0}, true},
		{"on boundary", mgl32.Vec3{1, 0, 0}, true},
		{"corner", mgl32.Vec3{-1, 1, -1}, true},
		{"outside +x", mgl32.Vec3{1.5, 0, 0}, false},
		{"outside -y", mgl32.Vec3{0, -1.01, 0}, false},
		{"outside +z", mgl32.Vec3{0, 0, 3}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, c.ContainsPoint(tc.point))
			want := Outside
			if tc.want {
				want = Inside
			}
			assert.Equal(t, want, c.ClassifyPoint(tc.point))
		})
	}
}

func TestContainsPointPerspective(t *testing.T) {
	c := perspective90()
	assert.True(t, c.ContainsPoint(mgl64.Vec3{0, 0, -5}))
	assert.False(t, c.ContainsPoint(mgl64.Vec3{0, 6, -5}))
	assert.False(t, c.ContainsPoint(mgl64.Vec3{0, 0, -0.05}), "in front of the near plane")
	assert.False(t, c.ContainsPoint(mgl64.Vec3{0, 0, -101}), "beyond the far plane")
}

func TestClassifySphere(t *testing.T) {
	c := orthoUnit()

	tests := []struct {
		name   string
		center mgl32.Vec3
		radius float32
		want   Intersection
	}{
		{"small at origin", mgl32.Vec3{0, 0, 0}, 0.1, Inside},
		{"on right plane", mgl32.Vec3{1, 0, 0}, 0.1, Partial},
		{"beyond right plane", mgl32.Vec3{1.2, 0, 0}, 0.1, Outside},
		{"encloses frustum", mgl32.Vec3{0, 0, 0}, 10, Partial},
		{"zero radius inside", mgl32.Vec3{0.5, 0.5, 0.5}, 0, Inside},
		{"zero radius outside", mgl32.Vec3{0, 2, 0}, 0, Outside},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := c.ClassifySphere(tc.center, tc.radius)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, got.Visible(), c.IntersectsSphere(tc.center, tc.radius))
			assert.Equal(t, got, c.ClassifySphereBounds(Sphere[float32]{Center: tc.center, Radius: tc.radius}))
		})
	}
}

func TestIntersectsSpherePerspective(t *testing.T) {
	c := perspective90()
	assert.True(t, c.IntersectsSphere(mgl64.Vec3{1, 0, -2}, 0.1))
	assert.False(t, c.IntersectsSphere(mgl64.Vec3{4, 0, -2}, 0.1))
}

func TestClassifyBox(t *testing.T) {
	tests := []struct {
		name     string
		culler   Culler[float32]
		min, max mgl32.Vec3
		want     Intersection
	}{
		{"straddles all planes", orthoUnit(), mgl32.Vec3{-20, -2, 0}, mgl32.Vec3{20, 2, 0}, Partial},
		{"contained", orthoUnit(), mgl32.Vec3{-0.5, -0.5, -0.5}, mgl32.Vec3{0.5, 0.5, 0.5}, Inside},
		{"past right plane", orthoUnit(), mgl32.Vec3{1.1, 0, 0}, mgl32.Vec3{2, 2, 2}, Outside},
		{"corner overlap", FromOrthographic[float32](-1, 1, -1, 1, -1, 1), mgl32.Vec3{0, 0, 0}, mgl32.Vec3{2, 2, 2}, Partial},
		{"identity partial", FromMatrix(mgl32.Ident4()), mgl32.Vec3{0.5, 0.5, 0.5}, mgl32.Vec3{2, 2, 2}, Partial},
		{"identity right", FromMatrix(mgl32.Ident4()), mgl32.Vec3{1.5, 0.5, 0.5}, mgl32.Vec3{2, 2, 2}, Outside},
		{"identity left", FromMatrix(mgl32.Ident4()), mgl32.Vec3{-2.5, 0.5, 0.5}, mgl32.Vec3{-1.5, 2, 2}, Outside},
		{"identity bottom", FromMatrix(mgl32.Ident4()), mgl32.Vec3{-0.5, -2.5, 0.5}, mgl32.Vec3{1.5, -2, 2}, Outside},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.culler.ClassifyBox(tc.min, tc.max)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, got.Visible(), tc.culler.IntersectsBox(tc.min, tc.max))
			assert.Equal(t, got, tc.culler.ClassifyBounds(Box[float32]{Min: tc.min, Max: tc.max}))
		})
	}
}

func TestClassifyBoxPerspective(t *testing.T) {
	c := FromPerspective(math.Pi/2, 1.0, 0.1, 100.0)

	assert.Equal(t, Inside, c.ClassifyBox(mgl64.Vec3{0, 0, -7}, mgl64.Vec3{1, 1, -5}))
	assert.Equal(t, Outside, c.ClassifyBox(mgl64.Vec3{1.1, 0, 0}, mgl64.Vec3{2, 2, 2}))
	assert.Equal(t, Outside, c.ClassifyBox(mgl64.Vec3{4, 4, -3.5}, mgl64.Vec3{5, 5, -3}))
	assert.Equal(t, Partial, c.ClassifyBox(mgl64.Vec3{-15, -1, -10}, mgl64.Vec3{-5, 1, -5}))
	assert.Equal(t, Partial, c.ClassifyBox(mgl64.Vec3{-1000, -1000, -1000}, mgl64.Vec3{1000, 1000, 1000}))
}

func TestFromFrustumOffCenter(t *testing.T) {
	// view shifted to the right: at z = -1 it spans x in [-1, 3]
	c := FromFrustum(-0.1, 0.3, -0.1, 0.1, 0.1, 100.0)

	assert.True(t, c.ContainsPoint(mgl64.Vec3{2, 0, -1}))
	assert.False(t, c.ContainsPoint(mgl64.Vec3{-2, 0, -1}))

	f, ok := c.SphereRejectedBy(mgl64.Vec3{-2, 0, -1}, 0.1)
	assert.True(t, ok)
	assert.Equal(t, Left, f)
	assert.Equal(t, Inside, c.ClassifySphere(mgl64.Vec3{1, 0, -1}, 0.05))

	c32 := FromFrustum[float32](-0.1, 0.3, -0.1, 0.1, 0.1, 100)
	assert.Equal(t, Inside, c32.ClassifyBox(mgl32.Vec3{1.5, -0.2, -2}, mgl32.Vec3{2, 0.2, -1.5}))
	assert.Equal(t, Outside, c32.ClassifyBox(mgl32.Vec3{-4, -0.2, -2}, mgl32.Vec3{-3.5, 0.2, -1.5}))
}

func TestViewProjection(t *testing.T) {
	// camera at origin looking down -Z, Gekko3D-style
	proj := mgl32.Perspective(mgl32.DegToRad(90), 1, 1, 100)
	view := mgl32.LookAtV(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0})
	c := FromViewProjection[float32](proj, view)

	tests := []struct {
		name     string
		min, max mgl32.Vec3
		want     bool
	}{
		{"center", mgl32.Vec3{-1, -1, -10}, mgl32.Vec3{1, 1, -5}, true},
		{"left", mgl32.Vec3{-20, -1, -10}, mgl32.Vec3{-15, 1, -5}, false},
		{"right", mgl32.Vec3{15, -1, -10}, mgl32.Vec3{20, 1, -5}, false},
		{"behind", mgl32.Vec3{-1, -1, 2}, mgl32.Vec3{1, 1, 5}, false},
		{"far", mgl32.Vec3{-1, -1, -200}, mgl32.Vec3{1, 1, -150}, false},
		{"crossing left", mgl32.Vec3{-15, -1, -10}, mgl32.Vec3{-5, 1, -5}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, c.IntersectsBox(tc.min, tc.max))
		})
	}
}

func TestRejectionOrder(t *testing.T) {
	c := orthoUnit()

	// outside both right and top: right is evaluated first
	f, ok := c.BoxRejectedBy(mgl32.Vec3{2, 2, 0}, mgl32.Vec3{3, 3, 0})
	assert.True(t, ok)
	assert.Equal(t, Right, f)

	f, ok = c.BoxRejectedBy(mgl32.Vec3{-3, 2, 0}, mgl32.Vec3{-2, 3, 0})
	assert.True(t, ok)
	assert.Equal(t, Left, f)

	f, ok = c.BoxRejectedBy(mgl32.Vec3{-0.5, -3, -0.5}, mgl32.Vec3{0.5, -2, 0.5})
	assert.True(t, ok)
	assert.Equal(t, Bottom, f)

	f, ok = c.SphereRejectedBy(mgl32.Vec3{0, -5, 0}, 0.5)
	assert.True(t, ok)
	assert.Equal(t, Bottom, f)

	f, ok = c.SphereRejectedBy(mgl32.Vec3{0, 5, 5}, 0.5)
	assert.True(t, ok)
	assert.Equal(t, Top, f)

	// mgl32.Ortho maps z to -z, so +z objects fall behind the near plane
	f, ok = c.SphereRejectedBy(mgl32.Vec3{0, 0, 5}, 0.5)
	assert.True(t, ok)
	assert.Equal(t, Near, f)

	f, ok = c.SphereRejectedBy(mgl32.Vec3{0, 0, -5}, 0.5)
	assert.True(t, ok)
	assert.Equal(t, Far, f)

	f, ok = c.BoxRejectedBy(mgl32.Vec3{-0.5, -0.5, -3}, mgl32.Vec3{0.5, 0.5, -2})
	assert.True(t, ok)
	assert.Equal(t, Far, f)

	_, ok = c.SphereRejectedBy(mgl32.Vec3{0, 0, 0}, 0.5)
	assert.False(t, ok)
	_, ok = c.BoxRejectedBy(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{5, 5, 5})
	assert.False(t, ok)
}

func TestUpdateIdempotent(t *testing.T) {
	m := mgl64.Perspective(mgl64.DegToRad(70), 4.0/3.0, 0.5, 250).
		Mul4(mgl64.LookAtV(mgl64.Vec3{2, 5, -7}, mgl64.Vec3{0, 1, 0}, mgl64.Vec3{0, 1, 0}))

	for _, normalize := range []bool{true, false} {
		var c Culler[float64]
		c.Update(mgl64.Ident4(), !normalize)
		c.Update(m, normalize)
		c.Update(m, normalize)
		assert.Equal(t, New(m, normalize), c)
		assert.Equal(t, normalize, c.Planes().Normalized())
	}
}

func TestSphereShrinkStaysInside(t *testing.T) {
	c := perspective90()
	centers := []mgl64.Vec3{{0, 0, -5}, {1, -1, -3}, {0.2, 0.3, -50}, {-20, 10, -60}}
	for _, ctr := range centers {
		for r := 10.0; r > 1e-6; r /= 2 {
			if c.ClassifySphere(ctr, r) != Inside {
				continue
			}
			for k := 8; k >= 0; k-- {
				r2 := r * float64(k) / 8
				assert.Equal(t, Inside, c.ClassifySphere(ctr, r2), "center %v radius %v", ctr, r2)
			}
		}
	}
}

func TestDegenerateBoxMatchesPoint(t *testing.T) {
	c := FromPerspective[float32](mgl32.DegToRad(60), 1.5, 0.1, 50)
	for x := float32(-10); x <= 10; x += 1.25 {
		for y := float32(-10); y <= 10; y += 1.25 {
			for z := float32(-60); z <= 5; z += 2.5 {
				p := mgl32.Vec3{x, y, z}
				assert.Equal(t, c.ClassifyPoint(p), c.ClassifyBox(p, p), "point %v", p)
			}
		}
	}
}

func TestUnnormalizedBoxMatchesNormalized(t *testing.T) {
	m := mgl64.Perspective(mgl64.DegToRad(45), 1, 0.1, 100)
	raw, norm := New(m, false), New(m, true)

	boxes := []Box[float64]{
		NewBox([3]float64{0, 0, -7}, [3]float64{1, 1, -5}),
		NewBox([3]float64{-50, -1, -10}, [3]float64{-5, 1, -5}),
		NewBox([3]float64{30, 30, -10}, [3]float64{40, 40, -5}),
	}
	for _, b := range boxes {
		assert.Equal(t, norm.ClassifyBounds(b), raw.ClassifyBounds(b), "box %v", b)
		assert.Equal(t, norm.IntersectsBounds(b), raw.IntersectsBounds(b), "box %v", b)
	}
}

func BenchmarkClassifyBox(b *testing.B) {
	c := FromPerspective[float32](mgl32.DegToRad(45), 4.0/3.0, 0.1, 100)
	min, max := mgl32.Vec3{-1, -1, -10}, mgl32.Vec3{1, 1, -8}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.ClassifyBox(min, max)
	}
}

func BenchmarkClassifySphere(b *testing.B) {
	c := FromPerspective(math.Pi/3, 4.0/3.0, 0.1, 100.0)
	ctr := mgl64.Vec3{0, 0, -10}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.ClassifySphere(ctr, 1)
	}
}
