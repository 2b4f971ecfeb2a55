// internal/ui/indicator.go
package ui

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"go-planet-scroll/internal/config"
	"go-planet-scroll/internal/utils"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// DepthIndicatorRL - шкала глубины камеры для Raylib. Бегунок вспыхивает,
// когда камера сдвигается.
type DepthIndicatorRL struct {
	X, Y         float32
	Height       float32
	Radius       float32
	LastMoveTime time.Time
	lastZ        float64
}

func NewDepthIndicatorRL(x, y, height, radius float32) *DepthIndicatorRL {
	return &DepthIndicatorRL{
		X:      x,
		Y:      y,
		Height: height,
		Radius: radius,
		lastZ:  math.NaN(),
	}
}

// DepthFraction maps camera z onto [0, 1]: 0 at CameraMinZ, 1 at CameraMaxZ.
func DepthFraction(z float64) float64 {
	return utils.Clamp((z-config.CameraMinZ)/(config.CameraMaxZ-config.CameraMinZ), 0, 1)
}

// PulseScale returns the knob scale elapsed seconds after the last move.
func PulseScale(elapsed float64) float64 {
	return 1.0 + 0.3*math.Exp(-elapsed*8)
}

// KnobY returns the knob centre for camera z. The far end of the range is at
// the top of the track.
func (i *DepthIndicatorRL) KnobY(z float64) float32 {
	return i.Y + float32(1-DepthFraction(z))*i.Height
}

// Track notes a new camera z and restarts the pulse if it moved.
func (i *DepthIndicatorRL) Track(z float64, now time.Time) {
	if z != i.lastZ {
		if !math.IsNaN(i.lastZ) {
			i.LastMoveTime = now
		}
		i.lastZ = z
	}
}

// Draw отрисовывает шкалу и бегунок
func (i *DepthIndicatorRL) Draw(z float64, knobColor color.RGBA) {
	i.Track(z, time.Now())
	scale := PulseScale(time.Since(i.LastMoveTime).Seconds())
	currentRadius := i.Radius * float32(scale)

	rlColor := rl.NewColor(knobColor.R, knobColor.G, knobColor.B, knobColor.A)
	track := rl.NewColor(config.ProgressBgColor.R, config.ProgressBgColor.G, config.ProgressBgColor.B, config.ProgressBgColor.A)

	rl.DrawLineEx(rl.NewVector2(i.X, i.Y), rl.NewVector2(i.X, i.Y+i.Height), 2, track)
	knob := rl.NewVector2(i.X, i.KnobY(z))
	rl.DrawCircleV(knob, currentRadius, rlColor)
	rl.DrawCircleLines(int32(knob.X), int32(knob.Y), currentRadius, rl.White)

	label := fmt.Sprintf("z=%.0f", z)
	w := rl.MeasureText(label, config.LabelFontSize)
	rl.DrawText(label, int32(i.X)-w-int32(i.Radius)-4, int32(knob.Y)-config.LabelFontSize/2, config.LabelFontSize, rl.White)
}
