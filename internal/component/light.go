package component

import "image/color"

// PointLight — неподвижный точечный источник
type PointLight struct {
	Position  Vec3
	Color     color.RGBA
	Intensity float64
}

// AmbientLight освещает всё одинаково
type AmbientLight struct {
	Color     color.RGBA
	Intensity float64
}
