package system

import (
	"go-planet-scroll/internal/config"
	"go-planet-scroll/internal/entity"
	"go-planet-scroll/internal/event"
)

// SpinSystem advances the shared group rotation and every body's own spin.
// Angles are accumulated as-is; consumers only ever feed them to periodic
// functions.
type SpinSystem struct {
	scene *entity.Scene
}

func NewSpinSystem(scene *entity.Scene) *SpinSystem {
	return &SpinSystem{scene: scene}
}

// OnEvent — прокрутка тоже вращает планеты
func (s *SpinSystem) OnEvent(e event.Event) {
	if e.Type == event.ScrollChanged {
		s.Step()
	}
}

// Step applies one increment: the group turns by GroupSpin, each body by its
// own rate.
func (s *SpinSystem) Step() {
	s.scene.Group.RotationY += config.GroupSpin
	for _, id := range s.scene.BodyOrder {
		body := s.scene.Bodies[id]
		s.scene.Transforms[id].RotationY += body.RotationSpeed
	}
}
