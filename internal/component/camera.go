package component

import "github.com/go-gl/mathgl/mgl64"

// Camera — перспективная камера. Ориентация задаётся один раз через LookAt,
// дальше сцена двигает только Position.Z().
type Camera struct {
	Position Vec3
	Forward  Vec3
	Up       Vec3
	FovY     float64 // градусы, по вертикали
	Aspect   float64
	Near     float64
	Far      float64
}

// LookAt points the camera at target, keeping Up as the world up.
func (c *Camera) LookAt(target Vec3) {
	dir := target.Sub(c.Position)
	if dir.Len() == 0 {
		c.Forward = Vec3{0, 0, -1}
		return
	}
	c.Forward = dir.Normalize()
}

// Target returns a point one unit in front of the camera.
func (c *Camera) Target() Vec3 {
	return c.Position.Add(c.Forward)
}

// SetAspect updates the aspect ratio for a viewport of the given size.
func (c *Camera) SetAspect(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.Aspect = float64(width) / float64(height)
}

// View returns the world-to-camera matrix.
func (c *Camera) View() mgl64.Mat4 {
	return mgl64.LookAtV(c.Position, c.Target(), c.Up)
}

// Projection returns the perspective matrix for the given aspect ratio.
func (c *Camera) Projection(aspect float64) mgl64.Mat4 {
	return mgl64.Perspective(mgl64.DegToRad(c.FovY), aspect, c.Near, c.Far)
}

// Focal returns the distance, in pixels, from the eye to a projection plane
// that is height pixels tall.
func (c *Camera) Focal(height int) float64 {
	return float64(height) / 2 * c.Projection(1).At(1, 1)
}

// Basis returns the camera's right and up unit vectors.
func (c *Camera) Basis() (right, up Vec3) {
	view := c.View()
	return view.Row(0).Vec3(), view.Row(1).Vec3()
}

// Project maps a world point onto a width×height viewport with y growing
// downwards. depth is the distance along the view direction; ok is false
// when the point lies outside the near/far range.
func (c *Camera) Project(p Vec3, width, height int) (x, y, depth float64, ok bool) {
	depth = p.Sub(c.Position).Dot(c.Forward)
	if depth < c.Near || depth > c.Far || width <= 0 || height <= 0 {
		return 0, 0, depth, false
	}
	win := mgl64.Project(p, c.View(), c.Projection(float64(width)/float64(height)), 0, 0, width, height)
	return win.X(), float64(height) - win.Y(), depth, true
}

// ProjectedRadius returns the on-screen radius of a sphere at the given depth.
func (c *Camera) ProjectedRadius(radius, depth float64, height int) float64 {
	if depth <= 0 {
		return 0
	}
	return radius * c.Focal(height) / depth
}
