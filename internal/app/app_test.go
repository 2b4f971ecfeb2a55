package app

import (
	"context"
	"errors"
	"io"
	"os"
	"testing"
	"time"

	"go-planet-scroll/internal/assets"
	"go-planet-scroll/internal/config"
	"go-planet-scroll/internal/defs"
	"go-planet-scroll/internal/entity"
	"go-planet-scroll/internal/state"
	"go-planet-scroll/internal/system"

	. "github.com/smartystreets/goconvey/convey"
)

// fakeRenderer записывает вызовы вместо рисования.
type fakeRenderer struct {
	prepareErr   error
	prepared     int
	renders      int
	loadingDraws int
	lastProgress float64
	textures     *assets.TextureSet
}

func (r *fakeRenderer) Prepare(scene *entity.Scene, textures *assets.TextureSet) error {
	r.prepared++
	r.textures = textures
	return r.prepareErr
}

func (r *fakeRenderer) Render(scene *entity.Scene) { r.renders++ }

func (r *fakeRenderer) RenderLoading(progress float64) {
	r.loadingDraws++
	r.lastProgress = progress
}

// gatedLoader fails every asset, but only after gate is closed.
func gatedLoader(gate <-chan struct{}) *assets.Loader {
	return &assets.Loader{Open: func(name string) (io.ReadCloser, error) {
		if gate != nil {
			<-gate
		}
		return nil, os.ErrNotExist
	}}
}

func waitLoaded(a *App) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := a.Batch().Wait(ctx); err != nil {
		panic(err)
	}
}

func TestApp(t *testing.T) {
	Convey("Given an app whose textures are still loading", t, func() {
		gate := make(chan struct{})
		renderer := &fakeRenderer{}
		opts := config.DefaultOptions()
		a := New(context.Background(), opts, defs.DefaultBodies(), gatedLoader(gate), renderer, 800, 600)
		defer a.Close()

		earth, ok := a.Scene().FindBody("earth")
		So(ok, ShouldBeTrue)

		Convey("The startup scroll has already placed the camera and spun once", func() {
			So(a.ScrollEvents(), ShouldEqual, 1)
			So(a.Scene().Camera.Position.Z(), ShouldEqual, system.DepthForScroll(0))
			So(a.Scene().Group.RotationY, ShouldAlmostEqual, config.GroupSpin, 1e-12)
			So(a.Scene().Camera.Aspect, ShouldAlmostEqual, 800.0/600.0, 1e-12)
			close(gate)
		})

		Convey("Frames neither animate nor render until the batch is done", func() {
			for i := 0; i < 10; i++ {
				So(a.Update(1.0/60), ShouldBeNil)
				a.Draw()
			}
			So(a.Frames(), ShouldEqual, 0)
			So(a.Loaded(), ShouldBeFalse)
			So(renderer.prepared, ShouldEqual, 0)
			So(renderer.renders, ShouldEqual, 0)
			So(renderer.loadingDraws, ShouldEqual, 10)
			So(renderer.lastProgress, ShouldEqual, 0)
			_, loading := a.State().(*state.LoadingState)
			So(loading, ShouldBeTrue)

			Convey("Scrolling still moves the camera while loading", func() {
				a.Scroll(500)
				So(a.Scene().Camera.Position.Z(), ShouldAlmostEqual, 100, 1e-9)
				So(a.ScrollEvents(), ShouldEqual, 2)
			})

			close(gate)
		})

		Convey("Once the batch completes", func() {
			close(gate)
			waitLoaded(a)
			So(a.Update(1.0/60), ShouldBeNil)

			Convey("The renderer is prepared once with every asset", func() {
				So(a.Loaded(), ShouldBeTrue)
				So(renderer.prepared, ShouldEqual, 1)
				So(renderer.textures.Len(), ShouldEqual, len(defs.AssetNames(defs.DefaultBodies())))
				So(len(renderer.textures.Failed()), ShouldEqual, renderer.textures.Len())
				So(a.Fallbacks(), ShouldEqual, renderer.textures.Len())
				_, running := a.State().(*state.SceneState)
				So(running, ShouldBeTrue)
				So(a.Frames(), ShouldEqual, 0)
			})

			Convey("Rotation compounds frames and scroll events", func() {
				const frames = 30
				for i := 0; i < frames; i++ {
					So(a.Update(1.0/60), ShouldBeNil)
					a.Draw()
				}
				a.Scroll(120)
				a.Scroll(120)
				a.Scroll(-1000) // до верха страницы
				a.Scroll(-10)   // уже наверху, события нет

				So(a.Frames(), ShouldEqual, frames)
				So(renderer.renders, ShouldEqual, frames)
				So(a.ScrollEvents(), ShouldEqual, 4)
				steps := float64(frames + a.ScrollEvents())
				So(a.Scene().Group.RotationY, ShouldAlmostEqual, steps*config.GroupSpin, 1e-9)
				So(a.Scene().Transforms[earth].RotationY, ShouldAlmostEqual, steps*0.02, 1e-9)
				So(a.Scene().Camera.Position.Z(), ShouldEqual, system.DepthForScroll(0))
			})

			Convey("Scroll spin can be switched off and on again", func() {
				So(a.ScrollSpin(), ShouldBeTrue)
				So(a.ToggleScrollSpin(), ShouldBeFalse)
				before := a.Scene().Group.RotationY
				a.Scroll(100)
				So(a.Scene().Group.RotationY, ShouldEqual, before)
				So(a.Scene().Camera.Position.Z(), ShouldAlmostEqual, system.DepthForScroll(-100), 1e-9)

				So(a.ToggleScrollSpin(), ShouldBeTrue)
				a.SetScrollSpin(true) // повторное включение не дублирует подписку
				a.Scroll(100)
				So(a.Scene().Group.RotationY, ShouldAlmostEqual, before+config.GroupSpin, 1e-12)
			})

			Convey("The camera stays within its range however far the page scrolls", func() {
				a.Scroll(1e9)
				So(a.Page().ScrollY(), ShouldEqual, opts.PageLength)
				So(a.Scene().Camera.Position.Z(), ShouldBeBetweenOrEqual, config.CameraMinZ, config.CameraMaxZ)
			})
		})
	})

	Convey("Given an app with scroll spin disabled", t, func() {
		opts := config.DefaultOptions()
		opts.ScrollSpin = false
		a := New(context.Background(), opts, defs.DefaultBodies(), gatedLoader(nil), &fakeRenderer{}, 800, 600)
		defer a.Close()
		waitLoaded(a)

		Convey("Only frames rotate the bodies", func() {
			So(a.Update(0), ShouldBeNil)
			for i := 0; i < 12; i++ {
				So(a.Update(1.0/60), ShouldBeNil)
			}
			a.Scroll(300)
			So(a.ScrollEvents(), ShouldEqual, 2)
			So(a.Scene().Group.RotationY, ShouldAlmostEqual, 12*config.GroupSpin, 1e-9)
		})
	})

	Convey("Given a renderer that cannot prepare the scene", t, func() {
		boom := errors.New("no gpu")
		a := New(context.Background(), config.DefaultOptions(), defs.DefaultBodies(), gatedLoader(nil), &fakeRenderer{prepareErr: boom}, 800, 600)
		defer a.Close()
		waitLoaded(a)

		Convey("Update reports the failure and keeps reporting it", func() {
			err := a.Update(1.0 / 60)
			So(errors.Is(err, boom), ShouldBeTrue)
			So(errors.Is(a.Update(1.0/60), boom), ShouldBeTrue)
			So(a.Frames(), ShouldEqual, 0)
			So(a.Loaded(), ShouldBeFalse)
		})
	})
}
