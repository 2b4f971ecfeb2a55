package system

import (
	"testing"

	"go-planet-scroll/internal/component"
	"go-planet-scroll/internal/config"
	"go-planet-scroll/internal/defs"
	"go-planet-scroll/internal/entity"
	"go-planet-scroll/internal/utils"
)

func TestPopulateStars(t *testing.T) {
	scene := entity.NewScene()
	PopulateStars(scene, utils.NewPRNGService(42), config.StarCount, config.StarSpread)

	if len(scene.Stars) != 400 {
		t.Fatalf("got %d stars; want 400", len(scene.Stars))
	}
	half := config.StarSpread / 2
	for id, star := range scene.Stars {
		p := scene.Transforms[id].Position
		for _, c := range []float64{p.X(), p.Y(), p.Z()} {
			if c < -half || c >= half {
				t.Fatalf("star %d coordinate %v outside [-%v, %v)", id, c, half, half)
			}
		}
		if star.Radius != config.StarRadius {
			t.Fatalf("star %d radius = %v; want %v", id, star.Radius, config.StarRadius)
		}
	}
	if len(scene.Bodies) != 0 {
		t.Fatalf("stars must not add bodies, got %d", len(scene.Bodies))
	}
}

func TestPopulateStarsIsSeeded(t *testing.T) {
	a, b := entity.NewScene(), entity.NewScene()
	PopulateStars(a, utils.NewPRNGService(9), 50, 500)
	PopulateStars(b, utils.NewPRNGService(9), 50, 500)
	for id := range a.Stars {
		if a.Transforms[id].Position != b.Transforms[id].Position {
			t.Fatalf("star %d differs between runs with the same seed", id)
		}
	}
}

func TestPopulateBodiesMatchesCatalog(t *testing.T) {
	scene := entity.NewScene()
	catalog := defs.DefaultBodies()
	PopulateBodies(scene, catalog)

	if len(scene.BodyOrder) != 8 || len(scene.Bodies) != 8 {
		t.Fatalf("got %d bodies; want 8", len(scene.Bodies))
	}
	for i, id := range scene.BodyOrder {
		want := catalog[i]
		body := scene.Bodies[id]
		pos := scene.Transforms[id].Position
		if body.ID != want.ID || body.Texture != want.Texture || body.Radius != want.Radius || body.RotationSpeed != want.RotationSpeed {
			t.Fatalf("body #%d = %+v; want %+v", i, body, want)
		}
		if pos.X() != want.X || pos.Z() != want.Z || pos.Y() != 0 {
			t.Fatalf("body %s at %+v; want (%v, 0, %v)", want.ID, pos, want.X, want.Z)
		}
		if body.NormalMap != config.NormalTexture {
			t.Fatalf("body %s normal map = %q", want.ID, body.NormalMap)
		}
	}
}

func TestBootstrap(t *testing.T) {
	scene := entity.NewScene()
	Bootstrap(scene, 800, 400)

	cam := scene.Camera
	if cam.Position.Z() != 500 || cam.FovY != 60 || cam.Near != 0.1 || cam.Far != 2500 {
		t.Fatalf("unexpected camera %+v", cam)
	}
	if cam.Aspect != 2 {
		t.Fatalf("aspect = %v; want 2", cam.Aspect)
	}
	if cam.Forward.Z() != -1 {
		t.Fatalf("camera should look at the origin, forward = %+v", cam.Forward)
	}
	if scene.Point == nil || scene.Ambient == nil {
		t.Fatal("lights were not added")
	}
	if scene.Point.Position != (component.Vec3{5, 5, 5}) {
		t.Fatalf("point light at %+v; want (5,5,5)", scene.Point.Position)
	}
	if scene.Background != config.BackgroundTexture {
		t.Fatalf("background = %q", scene.Background)
	}
}
