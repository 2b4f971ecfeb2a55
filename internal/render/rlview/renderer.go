package rlview

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"math"

	"go-planet-scroll/internal/assets"
	"go-planet-scroll/internal/component"
	"go-planet-scroll/internal/config"
	"go-planet-scroll/internal/entity"
	"go-planet-scroll/internal/types"
	"go-planet-scroll/internal/ui"
	"go-planet-scroll/internal/utils"
	"go-planet-scroll/pkg/render"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Renderer draws the scene with raylib. All methods must run on the thread
// that opened the window.
type Renderer struct {
	Labels bool

	textures   map[string]rl.Texture2D
	starModel  rl.Model
	bodyModels map[types.EntityID]rl.Model
	lighting   render.Lighting
	depth      *ui.DepthIndicatorRL
	prepared   bool
}

func NewRenderer() *Renderer {
	return &Renderer{
		textures:   make(map[string]rl.Texture2D),
		bodyModels: make(map[types.EntityID]rl.Model),
		depth:      ui.NewDepthIndicatorRL(0, 40, 200, 6),
	}
}

// uploadTexture безопасно переносит одно изображение в видеопамять.
func (r *Renderer) uploadTexture(name string, img image.Image) (ok bool) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("ERROR: raylib panicked while uploading texture '%s'. Skipping. Panic: %v", name, rec)
			ok = false
		}
	}()

	rlImg := rl.NewImageFromImage(img)
	tex := rl.LoadTextureFromImage(rlImg)
	rl.UnloadImage(rlImg)
	if tex.ID == 0 {
		log.Printf("WARNING: Failed to upload texture %s", name)
		return false
	}
	rl.SetTextureFilter(tex, rl.FilterBilinear)
	r.textures[name] = tex
	return true
}

// Prepare uploads every texture and builds the sphere models.
func (r *Renderer) Prepare(scene *entity.Scene, textures *assets.TextureSet) error {
	if r.prepared {
		return nil
	}
	for _, name := range textures.Names() {
		img := textures.MustGet(name)
		if !r.uploadTexture(name, img) {
			// вторая попытка с заглушкой
			if !r.uploadTexture(name, assets.Fallback(name)) {
				return fmt.Errorf("failed to upload texture %s", name)
			}
		}
	}

	r.starModel = rl.LoadModelFromMesh(rl.GenMeshSphere(config.StarRadius, config.StarSegments, config.StarSegments))

	for _, id := range scene.BodyOrder {
		body := scene.Bodies[id]
		model := rl.LoadModelFromMesh(rl.GenMeshSphere(float32(body.Radius), config.BodySegments, config.BodySegments))
		if tex, ok := r.textures[body.Texture]; ok {
			rl.SetMaterialTexture(model.Materials, rl.MapDiffuse, tex)
		}
		if tex, ok := r.textures[body.NormalMap]; ok {
			rl.SetMaterialTexture(model.Materials, rl.MapNormal, tex)
		}
		r.bodyModels[id] = model
	}

	if scene.Point != nil && scene.Ambient != nil {
		r.lighting = render.Lighting{
			Ambient:          scene.Ambient.Color,
			AmbientIntensity: scene.Ambient.Intensity,
			Point:            scene.Point.Color,
			PointIntensity:   scene.Point.Intensity,
		}
	}
	r.prepared = true
	log.Printf("Uploaded %d textures, built %d body models", len(r.textures), len(r.bodyModels))
	return nil
}

func (r *Renderer) Render(scene *entity.Scene) {
	if bg, ok := r.textures[scene.Background]; ok {
		scale, x, y := render.CoverFit(float64(bg.Width), float64(bg.Height), float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight()))
		src := rl.NewRectangle(0, 0, float32(bg.Width), float32(bg.Height))
		dst := rl.NewRectangle(float32(x), float32(y), float32(float64(bg.Width)*scale), float32(float64(bg.Height)*scale))
		rl.DrawTexturePro(bg, src, dst, rl.NewVector2(0, 0), 0, rl.White)
	}

	camera := toCamera3D(scene.Camera)
	rl.BeginMode3D(camera)

	for id, star := range scene.Stars {
		pos := scene.Transforms[id].Position
		rl.DrawModel(r.starModel, toVector3(pos), 1, colorToRL(star.Color))
	}

	for _, id := range scene.BodyOrder {
		model, ok := r.bodyModels[id]
		if !ok {
			continue
		}
		center := scene.BodyWorldPosition(id)
		angle := utils.WrapAngle(scene.BodyRotation(id)) * 180 / math.Pi
		tint := r.tint(scene, center)
		rl.DrawModelEx(model, toVector3(center), rl.NewVector3(0, 1, 0), float32(angle), rl.NewVector3(1, 1, 1), colorToRL(tint))
	}

	rl.EndMode3D()

	if r.Labels {
		r.drawLabels(scene, camera)
	}

	// шкала глубины у правого края
	r.depth.X = float32(rl.GetScreenWidth() - 24)
	r.depth.Draw(scene.Camera.Position.Z(), config.ProgressBarColor)
}

// tint approximates the lights for an unlit shader: the side of the body
// facing the camera is shaded by ambient plus the point light.
func (r *Renderer) tint(scene *entity.Scene, center component.Vec3) color.RGBA {
	if scene.Point == nil {
		return color.RGBA{255, 255, 255, 255}
	}
	n := scene.Camera.Position.Sub(center).Normalize()
	l := scene.Point.Position.Sub(center).Normalize()
	return render.Shade(color.RGBA{255, 255, 255, 255}, n, l, r.lighting)
}

func (r *Renderer) drawLabels(scene *entity.Scene, camera rl.Camera3D) {
	for _, id := range scene.BodyOrder {
		body := scene.Bodies[id]
		top := scene.BodyWorldPosition(id).Add(component.Vec3{0, body.Radius * 1.15, 0})
		if top.Sub(scene.Camera.Position).Dot(scene.Camera.Forward) <= 0 {
			continue
		}
		p := rl.GetWorldToScreen(toVector3(top), camera)
		w := rl.MeasureText(body.ID, config.LabelFontSize)
		rl.DrawText(body.ID, int32(p.X)-w/2, int32(p.Y), config.LabelFontSize, colorToRL(config.LabelColor))
	}
}

func (r *Renderer) RenderLoading(progress float64) {
	const barW, barH = 320, 8
	x := int32(rl.GetScreenWidth()/2 - barW/2)
	y := int32(rl.GetScreenHeight() / 2)
	rl.DrawRectangle(x, y, barW, barH, colorToRL(config.ProgressBgColor))
	rl.DrawRectangle(x, y, int32(float64(barW)*utils.Clamp(progress, 0, 1)), barH, colorToRL(config.ProgressBarColor))
}

// Unload releases GPU resources.
func (r *Renderer) Unload() {
	if !r.prepared {
		return
	}
	for id, model := range r.bodyModels {
		rl.UnloadModel(model)
		delete(r.bodyModels, id)
	}
	rl.UnloadModel(r.starModel)
	for name, tex := range r.textures {
		rl.UnloadTexture(tex)
		delete(r.textures, name)
	}
	r.prepared = false
	log.Println("All textures and models unloaded.")
}

func toVector3(v component.Vec3) rl.Vector3 {
	return rl.NewVector3(float32(v.X()), float32(v.Y()), float32(v.Z()))
}

func toCamera3D(c component.Camera) rl.Camera3D {
	return rl.Camera3D{
		Position:   toVector3(c.Position),
		Target:     toVector3(c.Target()),
		Up:         toVector3(c.Up),
		Fovy:       float32(c.FovY),
		Projection: rl.CameraPerspective,
	}
}

// colorToRL converts color.RGBA to rl.Color
func colorToRL(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}
