// internal/system/bootstrap.go
package system

import (
	"go-planet-scroll/internal/component"
	"go-planet-scroll/internal/config"
	"go-planet-scroll/internal/entity"
)

// Bootstrap places the camera, sizes it to the viewport and adds the two
// lights. The lights never move afterwards.
func Bootstrap(scene *entity.Scene, width, height int) {
	cam := &scene.Camera
	cam.Position = component.Vec3{config.CameraStartX, config.CameraStartY, config.CameraStartZ}
	cam.Up = component.Vec3{0, 1, 0}
	cam.FovY = config.CameraFovY
	cam.Near = config.CameraNear
	cam.Far = config.CameraFar
	cam.SetAspect(width, height)
	cam.LookAt(component.Vec3{})

	scene.Point = &component.PointLight{
		Position:  component.Vec3{config.PointLightX, config.PointLightY, config.PointLightZ},
		Color:     config.PointLightColor,
		Intensity: config.PointIntensity,
	}
	scene.Ambient = &component.AmbientLight{
		Color:     config.AmbientColor,
		Intensity: config.AmbientIntensity,
	}
	scene.Background = config.BackgroundTexture
}
