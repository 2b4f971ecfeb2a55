// component/render.go
package component

import "image/color"

// Star — декоративная точка фона. Создаётся один раз и не меняется.
type Star struct {
	Radius float64
	Color  color.RGBA
}

// Body is one planet. The spin rate is kept here rather than on the
// generic transform so every consumer reads it from the same place.
type Body struct {
	ID            string
	Texture       string
	NormalMap     string
	Radius        float64
	RotationSpeed float64
}
