package state

import (
	"fmt"
	"log"

	"go-planet-scroll/internal/assets"
	"go-planet-scroll/internal/event"
	"go-planet-scroll/internal/interfaces"
)

// Убеждаемся, что LoadingState соответствует интерфейсу State
var _ State = (*LoadingState)(nil)

// LoadingState waits for the texture batch. The scene is neither animated
// nor drawn until every asset has a result.
type LoadingState struct {
	sm    *StateMachine
	ctx   interfaces.SceneContext
	batch *assets.Batch
}

func NewLoadingState(sm *StateMachine, ctx interfaces.SceneContext, batch *assets.Batch) *LoadingState {
	return &LoadingState{sm: sm, ctx: ctx, batch: batch}
}

func (s *LoadingState) Enter() {
	log.Println("Waiting for textures...")
}

func (s *LoadingState) Update(deltaTime float64) {
	if !s.batch.Ready() {
		return
	}

	for _, res := range s.batch.Results() {
		if res.Fallback {
			s.ctx.Dispatcher().Dispatch(event.Event{Type: event.AssetFallback, Data: res})
		}
	}

	textures := s.batch.Set()

	if err := s.ctx.Renderer().Prepare(s.ctx.Scene(), textures); err != nil {
		s.ctx.Fail(fmt.Errorf("failed to prepare scene: %w", err))
		return
	}

	s.ctx.Dispatcher().Dispatch(event.Event{Type: event.AssetsLoaded, Data: textures})
	s.sm.SetState(NewSceneState(s.sm, s.ctx))
}

func (s *LoadingState) Draw() {
	s.ctx.Renderer().RenderLoading(s.batch.Progress())
}

func (s *LoadingState) Exit() {}
