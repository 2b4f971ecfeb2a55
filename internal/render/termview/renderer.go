package termview

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"go-planet-scroll/internal/assets"
	"go-planet-scroll/internal/component"
	"go-planet-scroll/internal/config"
	"go-planet-scroll/internal/entity"
	"go-planet-scroll/internal/types"
	"go-planet-scroll/internal/utils"
	"go-planet-scroll/pkg/render"

	"github.com/gdamore/tcell/v2"
)

// Renderer draws the scene into terminal cells. Each cell is treated as
// TermCellAspect units tall, so spheres stay round.
type Renderer struct {
	Labels bool

	screen   tcell.Screen
	images   map[string]image.Image
	bgStyle  tcell.Style
	lighting render.Lighting
	zbuf     []float64
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen:  screen,
		images:  make(map[string]image.Image),
		bgStyle: tcell.StyleDefault.Background(toTcell(config.BackgroundColor)),
	}
}

// Viewport returns the projection size for a terminal of w×h cells.
func Viewport(w, h int) (int, int) {
	return w, int(float64(h) * config.TermCellAspect)
}

func (r *Renderer) Prepare(scene *entity.Scene, textures *assets.TextureSet) error {
	for _, name := range textures.Names() {
		img := textures.MustGet(name)
		r.images[name] = img
	}
	if bg, ok := r.images[scene.Background]; ok {
		avg := render.DarkenColor(assets.AverageColor(bg), 0.6)
		r.bgStyle = tcell.StyleDefault.Background(toTcell(avg))
	}
	if scene.Point != nil && scene.Ambient != nil {
		r.lighting = render.Lighting{
			Ambient:          scene.Ambient.Color,
			AmbientIntensity: scene.Ambient.Intensity,
			Point:            scene.Point.Color,
			PointIntensity:   scene.Point.Intensity,
		}
	}
	return nil
}

func (r *Renderer) Render(scene *entity.Scene) {
	w, h := r.screen.Size()
	if w <= 0 || h <= 0 {
		return
	}
	r.clear(w, h)
	vw, vh := Viewport(w, h)
	cam := &scene.Camera

	for id, star := range scene.Stars {
		x, y, depth, ok := cam.Project(scene.Transforms[id].Position, vw, vh)
		if !ok {
			continue
		}
		cx, cy := int(x), int(y/config.TermCellAspect)
		if cx < 0 || cy < 0 || cx >= w || cy >= h || depth >= r.zbuf[cy*w+cx] {
			continue
		}
		r.zbuf[cy*w+cx] = depth
		ch := '.'
		if depth < 150 {
			ch = '*'
		}
		r.screen.SetContent(cx, cy, ch, nil, r.bgStyle.Foreground(toTcell(star.Color)))
	}

	for _, id := range scene.BodyOrder {
		r.drawBody(scene, id, w, h, vw, vh)
	}

	if r.Labels {
		r.drawLabels(scene, w, h, vw, vh)
	}
	r.drawText(0, h-1, fmt.Sprintf(" z=%.0f ", cam.Position.Z()), r.bgStyle.Foreground(toTcell(config.LabelColor)))
	r.screen.Show()
}

func (r *Renderer) clear(w, h int) {
	if cap(r.zbuf) < w*h {
		r.zbuf = make([]float64, w*h)
	}
	r.zbuf = r.zbuf[:w*h]
	for i := range r.zbuf {
		r.zbuf[i] = math.Inf(1)
	}
	r.screen.Fill(' ', r.bgStyle)
}

// drawBody ray-casts the body's silhouette cell by cell and samples its
// texture at the spun longitude.
func (r *Renderer) drawBody(scene *entity.Scene, id types.EntityID, w, h, vw, vh int) {
	body := scene.Bodies[id]
	tex, ok := r.images[body.Texture]
	if !ok {
		return
	}
	cam := &scene.Camera
	center := scene.BodyWorldPosition(id)
	sx, sy, depth, ok := cam.Project(center, vw, vh)
	if !ok {
		return
	}
	sr := cam.ProjectedRadius(body.Radius, depth, vh)
	if sr < 0.5 {
		return
	}
	angle := scene.BodyRotation(id)
	right, up := cam.Basis()
	back := cam.Forward.Mul(-1)

	minX := max(0, int(sx-sr))
	maxX := min(w-1, int(sx+sr))
	minY := max(0, int((sy-sr)/config.TermCellAspect))
	maxY := min(h-1, int((sy+sr)/config.TermCellAspect))

	for cy := minY; cy <= maxY; cy++ {
		for cx := minX; cx <= maxX; cx++ {
			dx := (float64(cx) + 0.5 - sx) / sr
			dy := ((float64(cy)+0.5)*config.TermCellAspect - sy) / sr
			d2 := dx*dx + dy*dy
			if d2 > 1 {
				continue
			}
			nz := math.Sqrt(1 - d2)
			z := depth - nz*body.Radius
			if z >= r.zbuf[cy*w+cx] {
				continue
			}
			r.zbuf[cy*w+cx] = z

			n := right.Mul(dx).Add(up.Mul(-dy)).Add(back.Mul(nz))
			local := component.RotateY(n, -angle)
			c := render.SampleSphere(tex, local)
			if scene.Point != nil {
				l := scene.Point.Position.Sub(center.Add(n.Mul(body.Radius))).Normalize()
				c = render.Shade(c, n, l, r.lighting)
			}
			r.screen.SetContent(cx, cy, ' ', nil, tcell.StyleDefault.Background(toTcell(c)))
		}
	}
}

func (r *Renderer) drawLabels(scene *entity.Scene, w, h, vw, vh int) {
	cam := &scene.Camera
	for _, id := range scene.BodyOrder {
		body := scene.Bodies[id]
		top := scene.BodyWorldPosition(id).Add(component.Vec3{0, body.Radius * 1.15, 0})
		x, y, _, ok := cam.Project(top, vw, vh)
		if !ok {
			continue
		}
		cx := int(x) - len(body.ID)/2
		cy := int(y / config.TermCellAspect)
		if cy < 0 || cy >= h {
			continue
		}
		r.drawText(cx, cy, body.ID, r.bgStyle.Foreground(toTcell(config.LabelColor)))
	}
}

func (r *Renderer) drawText(x, y int, s string, style tcell.Style) {
	w, _ := r.screen.Size()
	for i, ch := range []rune(s) {
		if x+i < 0 || x+i >= w {
			continue
		}
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

func (r *Renderer) RenderLoading(progress float64) {
	w, h := r.screen.Size()
	r.screen.Fill(' ', r.bgStyle)
	barW := min(40, w-2)
	if barW <= 0 {
		r.screen.Show()
		return
	}
	x, y := (w-barW)/2, h/2
	filled := int(float64(barW) * utils.Clamp(progress, 0, 1))
	for i := 0; i < barW; i++ {
		style := tcell.StyleDefault.Background(toTcell(config.ProgressBgColor))
		if i < filled {
			style = tcell.StyleDefault.Background(toTcell(config.ProgressBarColor))
		}
		r.screen.SetContent(x+i, y, ' ', nil, style)
	}
	r.drawText(x, y-1, "loading textures", r.bgStyle.Foreground(toTcell(config.LabelColor)))
	r.screen.Show()
}

func toTcell(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
