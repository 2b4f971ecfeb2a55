package rlview

import (
	"context"
	"time"

	"go-planet-scroll/internal/app"
	"go-planet-scroll/internal/assets"
	"go-planet-scroll/internal/config"
	"go-planet-scroll/internal/defs"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Run opens a raylib window and drives the app until the window closes.
func Run(ctx context.Context, opts config.Options, bodies []defs.BodyDefinition) error {
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagMsaa4xHint | rl.FlagWindowResizable)
	rl.InitWindow(config.ScreenWidth, config.ScreenHeight, config.WindowTitle)
	if !rl.IsWindowReady() {
		return app.ErrNoSurface
	}
	defer rl.CloseWindow()

	rl.SetTargetFPS(config.TargetFPS)
	rl.SetClipPlanes(config.CameraNear, config.CameraFar)

	renderer := NewRenderer()
	renderer.Labels = opts.Labels
	defer renderer.Unload()

	a := app.New(ctx, opts, bodies, assets.NewLoader(opts.AssetDir), renderer, rl.GetScreenWidth(), rl.GetScreenHeight())
	defer a.Close()

	lastUpdateTime := time.Now()
	for !rl.WindowShouldClose() && ctx.Err() == nil {
		now := time.Now()
		deltaTime := now.Sub(lastUpdateTime).Seconds()
		if deltaTime > config.MaxDeltaTime {
			deltaTime = config.MaxDeltaTime
		}
		lastUpdateTime = now

		if rl.IsWindowResized() {
			a.Resize(rl.GetScreenWidth(), rl.GetScreenHeight())
		}
		if dy := scrollInput(); dy != 0 {
			a.Scroll(dy)
		}
		if rl.IsKeyPressed(rl.KeyS) {
			a.ToggleScrollSpin()
		}
		if err := a.Update(deltaTime); err != nil {
			return err
		}

		rl.BeginDrawing()
		rl.ClearBackground(colorToRL(config.BackgroundColor))
		a.Draw()
		rl.EndDrawing()
	}
	return nil
}

// scrollInput переводит колесо мыши и клавиши в пиксели прокрутки страницы.
// Вниз — положительное значение.
func scrollInput() float64 {
	dy := -float64(rl.GetMouseWheelMove()) * config.WheelStep
	if rl.IsKeyDown(rl.KeyDown) {
		dy += config.KeyScrollStep
	}
	if rl.IsKeyDown(rl.KeyUp) {
		dy -= config.KeyScrollStep
	}
	if rl.IsKeyPressed(rl.KeyPageDown) || rl.IsKeyPressed(rl.KeySpace) {
		dy += float64(rl.GetScreenHeight())
	}
	if rl.IsKeyPressed(rl.KeyPageUp) {
		dy -= float64(rl.GetScreenHeight())
	}
	return dy
}
