// internal/app/app.go
package app

import (
	"context"
	"log"

	"go-planet-scroll/internal/assets"
	"go-planet-scroll/internal/config"
	"go-planet-scroll/internal/defs"
	"go-planet-scroll/internal/entity"
	"go-planet-scroll/internal/event"
	"go-planet-scroll/internal/interfaces"
	"go-planet-scroll/internal/state"
	"go-planet-scroll/internal/system"
	"go-planet-scroll/internal/utils"
)

// App holds all mutable state of one run: the scene, the page it scrolls
// with, the systems that animate it and the state machine that gates the
// render loop on texture loading. Backend drivers only forward input and
// frame ticks to it.
type App struct {
	scene    *entity.Scene
	page     *system.Page
	camera   *system.CameraSystem
	spin     *system.SpinSystem
	events   *event.Dispatcher
	renderer interfaces.Renderer
	sm       *state.StateMachine
	batch    *assets.Batch
	cancel   context.CancelFunc

	frames       int
	scrollEvents int
	fallbacks    int
	scrollSpin   bool
	loaded       bool
	err          error
}

// New builds the scene and starts loading its textures. width and height
// are the initial viewport size.
func New(ctx context.Context, opts config.Options, bodies []defs.BodyDefinition, loader *assets.Loader, renderer interfaces.Renderer, width, height int) *App {
	ctx, cancel := context.WithCancel(ctx)

	scene := entity.NewScene()
	system.Bootstrap(scene, width, height)
	system.PopulateStars(scene, utils.NewPRNGService(opts.Seed), config.StarCount, config.StarSpread)

	a := &App{
		scene:    scene,
		page:     system.NewPage(opts.PageLength),
		camera:   system.NewCameraSystem(scene),
		spin:     system.NewSpinSystem(scene),
		events:   event.NewDispatcher(),
		renderer: renderer,
		sm:       state.NewStateMachine(),
		cancel:   cancel,
	}

	a.batch = loader.Load(ctx, defs.AssetNames(bodies))
	system.PopulateBodies(scene, bodies)

	a.events.Subscribe(event.ScrollChanged, a.camera)
	a.SetScrollSpin(opts.ScrollSpin)
	listener := &appEventListener{app: a}
	a.events.Subscribe(event.AssetsLoaded, listener)
	a.events.Subscribe(event.AssetFallback, listener)
	a.events.Subscribe(event.ScrollChanged, listener)

	// Камера сразу получает положение, соответствующее текущей прокрутке
	a.emitScroll()

	a.sm.SetState(state.NewLoadingState(a.sm, a, a.batch))
	log.Printf("Scene built: %d stars, %d bodies, %d textures queued",
		len(scene.Stars), len(scene.Bodies), len(defs.AssetNames(bodies)))
	return a
}

// Update advances one frame. It returns the first fatal error, after which
// the driver should stop.
func (a *App) Update(deltaTime float64) error {
	if a.err != nil {
		return a.err
	}
	a.sm.Update(deltaTime)
	return a.err
}

// Draw renders the current state.
func (a *App) Draw() {
	a.sm.Draw()
}

// Scroll moves the page by dy pixels. The scene reacts only when the page
// offset actually changes.
func (a *App) Scroll(dy float64) {
	if a.page.ScrollBy(dy) {
		a.emitScroll()
	}
}

func (a *App) emitScroll() {
	a.events.Dispatch(event.Event{Type: event.ScrollChanged, Data: a.page.Top()})
}

// SetScrollSpin turns the extra spin step on scroll on or off.
func (a *App) SetScrollSpin(on bool) {
	if on == a.scrollSpin {
		return
	}
	if on {
		a.events.Subscribe(event.ScrollChanged, a.spin)
	} else {
		a.events.Unsubscribe(event.ScrollChanged, a.spin)
	}
	a.scrollSpin = on
}

// ToggleScrollSpin flips scroll spin and returns the new setting.
func (a *App) ToggleScrollSpin() bool {
	a.SetScrollSpin(!a.scrollSpin)
	log.Printf("Scroll spin: %v", a.scrollSpin)
	return a.scrollSpin
}

// Resize updates the projection for a new viewport size.
func (a *App) Resize(width, height int) {
	a.camera.Resize(width, height)
}

// Close stops any texture loading still in flight.
func (a *App) Close() {
	a.cancel()
}

func (a *App) Frames() int { return a.frames }
func (a *App) ScrollEvents() int { return a.scrollEvents }
func (a *App) Fallbacks() int { return a.fallbacks }
func (a *App) ScrollSpin() bool { return a.scrollSpin }
func (a *App) Loaded() bool { return a.loaded }
func (a *App) Page() *system.Page { return a.page }
func (a *App) Batch() *assets.Batch { return a.batch }
func (a *App) State() state.State { return a.sm.Current() }
func (a *App) Err() error { return a.err }

// --- interfaces.SceneContext ---

func (a *App) Scene() *entity.Scene { return a.scene }
func (a *App) Renderer() interfaces.Renderer { return a.renderer }
func (a *App) Dispatcher() *event.Dispatcher { return a.events }

// StepFrame advances the per-frame animation.
func (a *App) StepFrame() {
	a.spin.Step()
	a.frames++
}

// Fail records a fatal error; Update reports it from then on.
func (a *App) Fail(err error) {
	if a.err == nil {
		log.Printf("ERROR: %v", err)
		a.err = err
	}
}
