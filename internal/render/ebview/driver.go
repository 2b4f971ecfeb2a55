package ebview

import (
	"context"
	"time"

	"go-planet-scroll/internal/app"
	"go-planet-scroll/internal/assets"
	"go-planet-scroll/internal/config"
	"go-planet-scroll/internal/defs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// AppGame adapts app.App to ebiten.Game.
type AppGame struct {
	ctx            context.Context
	app            *app.App
	renderer       *Renderer
	lastUpdateTime time.Time
	width, height  int
}

func (g *AppGame) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}
	now := time.Now()
	deltaTime := now.Sub(g.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	g.lastUpdateTime = now

	if dy := scrollInput(g.height); dy != 0 {
		g.app.Scroll(dy)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.app.ToggleScrollSpin()
	}
	return g.app.Update(deltaTime)
}

func (g *AppGame) Draw(screen *ebiten.Image) {
	g.renderer.SetTarget(screen)
	g.app.Draw()
}

// Layout renders at device resolution so the output stays sharp on HiDPI
// displays.
func (g *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	scale := ebiten.Monitor().DeviceScaleFactor()
	w := int(float64(outsideWidth) * scale)
	h := int(float64(outsideHeight) * scale)
	if w != g.width || h != g.height {
		g.width, g.height = w, h
		g.app.Resize(w, h)
	}
	return w, h
}

// Run opens an ebiten window and drives the app until it closes.
func Run(ctx context.Context, opts config.Options, bodies []defs.BodyDefinition) error {
	renderer, err := NewRenderer(config.ScreenWidth, config.ScreenHeight)
	if err != nil {
		return err
	}
	renderer.Labels = opts.Labels

	a := app.New(ctx, opts, bodies, assets.NewLoader(opts.AssetDir), renderer, config.ScreenWidth, config.ScreenHeight)
	defer a.Close()

	game := &AppGame{
		ctx:            ctx,
		app:            a,
		renderer:       renderer,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.TargetFPS)
	return ebiten.RunGame(game)
}

// scrollInput — прокрутка колесом и клавишами, вниз положительная.
func scrollInput(pageHeight int) float64 {
	_, wy := ebiten.Wheel()
	dy := -wy * config.WheelStep
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		dy += config.KeyScrollStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		dy -= config.KeyScrollStep
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageDown) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		dy += float64(pageHeight)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageUp) {
		dy -= float64(pageHeight)
	}
	return dy
}
