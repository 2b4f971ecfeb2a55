package render

import (
	"image"
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// MeshVertex is one vertex of a generated sphere, in the sphere's local frame.
type MeshVertex struct {
	Pos    mgl64.Vec3
	Normal mgl64.Vec3
	U, V   float64 // V = 0 at the north pole
}

// Mesh is an indexed triangle list.
type Mesh struct {
	Vertices []MeshVertex
	Indices  []uint16
}

// SphereMesh builds a UV sphere with the same layout as the usual
// equirectangular mapping: U runs around the equator, V from pole to pole.
func SphereMesh(radius float64, widthSegments, heightSegments int) Mesh {
	widthSegments = max(3, widthSegments)
	heightSegments = max(2, heightSegments)

	var m Mesh
	for iy := 0; iy <= heightSegments; iy++ {
		v := float64(iy) / float64(heightSegments)
		theta := v * math.Pi
		for ix := 0; ix <= widthSegments; ix++ {
			u := float64(ix) / float64(widthSegments)
			phi := u * 2 * math.Pi
			n := mgl64.Vec3{
				-math.Cos(phi) * math.Sin(theta),
				math.Cos(theta),
				math.Sin(phi) * math.Sin(theta),
			}
			m.Vertices = append(m.Vertices, MeshVertex{
				Pos:    n.Mul(radius),
				Normal: n,
				U:      u,
				V:      v,
			})
		}
	}

	stride := widthSegments + 1
	for iy := 0; iy < heightSegments; iy++ {
		for ix := 0; ix < widthSegments; ix++ {
			a := uint16(iy*stride + ix + 1)
			b := uint16(iy*stride + ix)
			c := uint16((iy+1)*stride + ix)
			d := uint16((iy+1)*stride + ix + 1)
			// у полюсов один из треугольников вырожден
			if iy != 0 {
				m.Indices = append(m.Indices, a, b, d)
			}
			if iy != heightSegments-1 {
				m.Indices = append(m.Indices, b, c, d)
			}
		}
	}
	return m
}

// SphereUV returns the texture coordinates for a unit normal in the sphere's
// local frame, matching SphereMesh.
func SphereUV(n mgl64.Vec3) (u, v float64) {
	y := mgl64.Clamp(n.Y(), -1, 1)
	v = math.Acos(y) / math.Pi
	u = math.Atan2(n.Z(), -n.X()) / (2 * math.Pi)
	if u < 0 {
		u += 1
	}
	return u, v
}

// SampleSphere returns the texel of an equirectangular texture seen along the
// local unit normal n.
func SampleSphere(tex image.Image, n mgl64.Vec3) color.RGBA {
	u, v := SphereUV(n)
	b := tex.Bounds()
	x := b.Min.X + int(u*float64(b.Dx()))
	y := b.Min.Y + int(v*float64(b.Dy()))
	if x >= b.Max.X {
		x = b.Max.X - 1
	}
	if y >= b.Max.Y {
		y = b.Max.Y - 1
	}
	r, g, bl, a := tex.At(x, y).RGBA()
	return color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(bl >> 8), uint8(a >> 8)}
}
