package termview

import (
	"context"
	"fmt"
	"time"

	"go-planet-scroll/internal/app"
	"go-planet-scroll/internal/assets"
	"go-planet-scroll/internal/config"
	"go-planet-scroll/internal/defs"

	"github.com/gdamore/tcell/v2"
)

// openScreen creates the terminal screen; tests swap it out.
var openScreen = tcell.NewScreen

// Run draws the scene in the terminal until the user quits or ctx ends.
func Run(ctx context.Context, opts config.Options, bodies []defs.BodyDefinition) error {
	screen, err := openScreen()
	if err != nil {
		return fmt.Errorf("%w: %v", app.ErrNoSurface, err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("%w: %v", app.ErrNoSurface, err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	return RunOnScreen(ctx, screen, opts, bodies)
}

// RunOnScreen drives the app on an already initialised screen.
func RunOnScreen(ctx context.Context, screen tcell.Screen, opts config.Options, bodies []defs.BodyDefinition) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	renderer := NewRenderer(screen)
	renderer.Labels = opts.Labels

	w, h := screen.Size()
	vw, vh := Viewport(w, h)
	a := app.New(ctx, opts, bodies, assets.NewLoader(opts.AssetDir), renderer, vw, vh)
	defer a.Close()

	ticker := time.NewTicker(config.TermFrameMillis * time.Millisecond)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go pumpEvents(ctx, screen, eventChan)

	lastUpdateTime := time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-eventChan:
			if !handleInput(a, screen, ev) {
				return nil
			}

		case now := <-ticker.C:
			deltaTime := now.Sub(lastUpdateTime).Seconds()
			if deltaTime > config.MaxDeltaTime {
				deltaTime = config.MaxDeltaTime
			}
			lastUpdateTime = now
			if err := a.Update(deltaTime); err != nil {
				return err
			}
			a.Draw()
		}
	}
}

// pumpEvents forwards screen events to out until the screen closes or ctx
// ends.
func pumpEvents(ctx context.Context, screen tcell.Screen, out chan<- tcell.Event) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return // экран закрыт
		}
		select {
		case out <- ev:
		case <-ctx.Done():
			return
		}
	}
}

// handleInput returns false when the user asked to quit.
func handleInput(a *app.App, screen tcell.Screen, ev tcell.Event) bool {
	_, h := screen.Size()
	page := float64(h) * config.TermCellAspect

	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyDown:
			a.Scroll(config.KeyScrollStep)
		case tcell.KeyUp:
			a.Scroll(-config.KeyScrollStep)
		case tcell.KeyPgDn:
			a.Scroll(page)
		case tcell.KeyPgUp:
			a.Scroll(-page)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case ' ':
				a.Scroll(page)
			case 's':
				a.ToggleScrollSpin()
			}
		}

	case *tcell.EventMouse:
		switch {
		case ev.Buttons()&tcell.WheelDown != 0:
			a.Scroll(config.WheelStep)
		case ev.Buttons()&tcell.WheelUp != 0:
			a.Scroll(-config.WheelStep)
		}

	case *tcell.EventResize:
		screen.Sync()
		a.Resize(Viewport(screen.Size()))
	}
	return true
}
