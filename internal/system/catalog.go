package system

import (
	"go-planet-scroll/internal/component"
	"go-planet-scroll/internal/config"
	"go-planet-scroll/internal/defs"
	"go-planet-scroll/internal/entity"
)

// PopulateBodies builds one body per catalog entry, in order, inside the
// scene's shared group. Every body gets the shared normal map.
func PopulateBodies(scene *entity.Scene, bodies []defs.BodyDefinition) {
	for _, def := range bodies {
		scene.AddBody(component.Vec3{def.X, 0, def.Z}, component.Body{
			ID:            def.ID,
			Texture:       def.Texture,
			NormalMap:     config.NormalTexture,
			Radius:        def.Radius,
			RotationSpeed: def.RotationSpeed,
		})
	}
}
