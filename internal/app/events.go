package app

import (
	"log"

	"go-planet-scroll/internal/assets"
	"go-planet-scroll/internal/event"
)

// appEventListener keeps the app's own bookkeeping in step with events.
type appEventListener struct {
	app *App
}

func (l *appEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.ScrollChanged:
		l.app.scrollEvents++
	case event.AssetFallback:
		if res, ok := e.Data.(assets.Result); ok {
			log.Printf("WARNING: %v. Using fallback.", res.Err)
		}
		l.app.fallbacks++
	case event.AssetsLoaded:
		l.app.loaded = true
		if set, ok := e.Data.(*assets.TextureSet); ok {
			log.Printf("All textures ready (%d loaded, %d fallbacks)", set.Len(), len(set.Failed()))
		}
	}
}
