package system

import (
	"go-planet-scroll/internal/config"
	"go-planet-scroll/internal/entity"
	"go-planet-scroll/internal/event"
	"go-planet-scroll/internal/utils"
)

// DepthForScroll maps a scroll top to the camera z, clamped to the allowed
// range.
func DepthForScroll(top float64) float64 {
	return utils.Clamp(top*-config.ScrollSensitivity, config.CameraMinZ, config.CameraMaxZ)
}

// CameraSystem binds camera depth to the page scroll position.
type CameraSystem struct {
	scene *entity.Scene
}

func NewCameraSystem(scene *entity.Scene) *CameraSystem {
	return &CameraSystem{scene: scene}
}

// OnEvent обрабатывает ScrollChanged.
func (s *CameraSystem) OnEvent(e event.Event) {
	if e.Type != event.ScrollChanged {
		return
	}
	if top, ok := e.Data.(float64); ok {
		s.ApplyScroll(top)
	}
}

// ApplyScroll sets the camera depth for the given scroll top. Only Z moves.
func (s *CameraSystem) ApplyScroll(top float64) {
	s.scene.Camera.Position[2] = DepthForScroll(top)
}

// Resize keeps the projection in step with the viewport.
func (s *CameraSystem) Resize(width, height int) {
	s.scene.Camera.SetAspect(width, height)
}
