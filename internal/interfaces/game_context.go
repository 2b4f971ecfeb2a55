// internal/interfaces/game_context.go
package interfaces

import (
	"go-planet-scroll/internal/assets"
	"go-planet-scroll/internal/entity"
	"go-planet-scroll/internal/event"
)

// Renderer draws the scene on one output surface. Prepare runs once, on the
// rendering thread, after every texture has been decoded.
type Renderer interface {
	Prepare(scene *entity.Scene, textures *assets.TextureSet) error
	Render(scene *entity.Scene)
	RenderLoading(progress float64)
}

// SceneContext — то, что состояниям нужно от приложения.
// Это помогает избежать циклических зависимостей.
type SceneContext interface {
	Scene() *entity.Scene
	Renderer() Renderer
	Dispatcher() *event.Dispatcher
	StepFrame()
	Fail(err error)
}
