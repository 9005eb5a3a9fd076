package sr3d

import "github.com/go-gl/mathgl/mgl64"

// Transform maps model coordinates to screen coordinates:
//
//	screen = round(model*Scale + Translate)
//
// applied per axis. Z is carried through as depth.
type Transform struct {
	Translate Vec3
	Scale     Vec3
}

// IdentityTransform returns the transform that leaves coordinates unchanged
// apart from rounding.
func IdentityTransform() Transform {
	return Transform{Scale: V3(1, 1, 1)}
}

// Matrix returns the transform as a homogeneous 4x4 matrix,
// translation applied after scaling.
func (t Transform) Matrix() mgl64.Mat4 {
	return mgl64.Translate3D(t.Translate.X, t.Translate.Y, t.Translate.Z).
		Mul4(mgl64.Scale3D(t.Scale.X, t.Scale.Y, t.Scale.Z))
}

// Apply transforms a single model-space point into screen space.
func (t Transform) Apply(v Vec3) Vec3 {
	return applyMatrix(t.Matrix(), v)
}

func applyMatrix(m mgl64.Mat4, v Vec3) Vec3 {
	p := m.Mul4x1(mgl64.Vec4{v.X, v.Y, v.Z, 1})
	return V3(p.X(), p.Y(), p.Z()).Round()
}
