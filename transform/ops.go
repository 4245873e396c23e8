package transform

import "github.com/go-gl/mathgl/mgl32"

// Translate returns a translation by (dx, dy, dz).
func Translate(dx, dy, dz float32) mgl32.Mat4 { return mgl32.Translate3D(dx, dy, dz) }

// RotateX returns a right-handed rotation of deg degrees about X.
func RotateX(deg float32) mgl32.Mat4 { return mgl32.HomogRotate3DX(mgl32.DegToRad(deg)) }

// RotateY returns a right-handed rotation of deg degrees about Y.
func RotateY(deg float32) mgl32.Mat4 { return mgl32.HomogRotate3DY(mgl32.DegToRad(deg)) }

// RotateZ returns a right-handed rotation of deg degrees about Z.
func RotateZ(deg float32) mgl32.Mat4 { return mgl32.HomogRotate3DZ(mgl32.DegToRad(deg)) }

// Scale returns a non-uniform scale. Negative factors mirror the
// corresponding axis.
func Scale(sx, sy, sz float32) mgl32.Mat4 { return mgl32.Scale3D(sx, sy, sz) }
