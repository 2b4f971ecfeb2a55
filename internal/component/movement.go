// component/movement.go
package component

import "github.com/go-gl/mathgl/mgl64"

// Vec3 — точка или направление в мировых координатах
type Vec3 = mgl64.Vec3

// RotateY rotates v around the Y axis by angle radians (right-handed,
// positive angle turns +Z towards +X).
func RotateY(v Vec3, angle float64) Vec3 {
	return mgl64.Rotate3DY(angle).Mul3x1(v)
}

// Transform — положение узла сцены и его поворот вокруг собственной оси Y.
// RotationY накапливается без нормализации.
type Transform struct {
	Position  Vec3
	RotationY float64
}

// Matrix returns the local-to-parent matrix: spin about the node's own Y
// axis, then move to Position.
func (t Transform) Matrix() mgl64.Mat4 {
	return mgl64.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z()).Mul4(mgl64.HomogRotate3DY(t.RotationY))
}
