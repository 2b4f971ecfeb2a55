// internal/entity/ecs.go
package entity

import (
	"go-planet-scroll/internal/component"
	"go-planet-scroll/internal/config"
	"go-planet-scroll/internal/types"
)

// Scene owns every visual node of the program. There is exactly one per run.
type Scene struct {
	NextID     types.EntityID
	Transforms map[types.EntityID]*component.Transform
	Stars      map[types.EntityID]*component.Star
	Bodies     map[types.EntityID]*component.Body
	BodyOrder  []types.EntityID // порядок каталога
	Group      component.Transform
	Camera     component.Camera
	Point      *component.PointLight
	Ambient    *component.AmbientLight
	Background string
}

func NewScene() *Scene {
	return &Scene{
		NextID:     1,
		Transforms: make(map[types.EntityID]*component.Transform),
		Stars:      make(map[types.EntityID]*component.Star),
		Bodies:     make(map[types.EntityID]*component.Body),
		Camera: component.Camera{
			Position: component.Vec3{config.CameraStartX, config.CameraStartY, config.CameraStartZ},
			Forward:  component.Vec3{0, 0, -1},
			Up:       component.Vec3{0, 1, 0},
			FovY:     config.CameraFovY,
			Aspect:   float64(config.ScreenWidth) / float64(config.ScreenHeight),
			Near:     config.CameraNear,
			Far:      config.CameraFar,
		},
	}
}

func (s *Scene) NewEntity() types.EntityID {
	id := s.NextID
	s.NextID++
	return id
}

// AddStar inserts a star at pos.
func (s *Scene) AddStar(pos component.Vec3, star component.Star) types.EntityID {
	id := s.NewEntity()
	s.Transforms[id] = &component.Transform{Position: pos}
	s.Stars[id] = &star
	return id
}

// AddBody inserts a body into the shared group. local is relative to the group.
func (s *Scene) AddBody(local component.Vec3, body component.Body) types.EntityID {
	id := s.NewEntity()
	s.Transforms[id] = &component.Transform{Position: local}
	s.Bodies[id] = &body
	s.BodyOrder = append(s.BodyOrder, id)
	return id
}

// BodyWorldPosition applies the group transform to a body's local position.
func (s *Scene) BodyWorldPosition(id types.EntityID) component.Vec3 {
	t, ok := s.Transforms[id]
	if !ok {
		return component.Vec3{}
	}
	return s.Group.Matrix().Mul4x1(t.Position.Vec4(1)).Vec3()
}

// BodyRotation returns the composed Y rotation (group + own spin) of a body.
func (s *Scene) BodyRotation(id types.EntityID) float64 {
	t, ok := s.Transforms[id]
	if !ok {
		return s.Group.RotationY
	}
	return s.Group.RotationY + t.RotationY
}

// FindBody looks a body up by catalog id.
func (s *Scene) FindBody(bodyID string) (types.EntityID, bool) {
	for _, id := range s.BodyOrder {
		if s.Bodies[id].ID == bodyID {
			return id, true
		}
	}
	return 0, false
}
