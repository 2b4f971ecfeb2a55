// pkg/render/color.go
package render

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Lighting holds the two light terms used to shade a surface point.
type Lighting struct {
	Ambient          color.RGBA
	AmbientIntensity float64
	Point            color.RGBA
	PointIntensity   float64
}

// Shade applies ambient plus Lambert diffuse lighting to base. normal and
// toLight must be unit vectors.
func Shade(base color.RGBA, normal, toLight mgl64.Vec3, l Lighting) color.RGBA {
	diffuse := math.Max(0, normal.Dot(toLight))
	mix := func(c uint8, amb, pt uint8) uint8 {
		k := l.AmbientIntensity*float64(amb)/255 + l.PointIntensity*diffuse*float64(pt)/255
		return clampByte(float64(c) * k)
	}
	return color.RGBA{
		R: mix(base.R, l.Ambient.R, l.Point.R),
		G: mix(base.G, l.Ambient.G, l.Point.G),
		B: mix(base.B, l.Ambient.B, l.Point.B),
		A: base.A,
	}
}

// DarkenColor scales the brightness of a color by k.
func DarkenColor(c color.RGBA, k float64) color.RGBA {
	return color.RGBA{
		R: clampByte(float64(c.R) * k),
		G: clampByte(float64(c.G) * k),
		B: clampByte(float64(c.B) * k),
		A: c.A,
	}
}

func clampByte(v float64) uint8 {
	return uint8(math.Max(0, math.Min(255, math.Round(v))))
}
