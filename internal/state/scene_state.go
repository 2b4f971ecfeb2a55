package state

import (
	"log"

	"go-planet-scroll/internal/interfaces"
)

var _ State = (*SceneState)(nil)

// SceneState — основной цикл: каждый кадр вращаем планеты и рисуем сцену.
// Выхода из него нет, он работает до закрытия окна.
type SceneState struct {
	sm  *StateMachine
	ctx interfaces.SceneContext
}

func NewSceneState(sm *StateMachine, ctx interfaces.SceneContext) *SceneState {
	return &SceneState{sm: sm, ctx: ctx}
}

func (s *SceneState) Enter() {
	log.Println("Scene ready, starting render loop")
}

func (s *SceneState) Update(deltaTime float64) {
	s.ctx.StepFrame()
}

func (s *SceneState) Draw() {
	s.ctx.Renderer().Render(s.ctx.Scene())
}

func (s *SceneState) Exit() {}
