package ebview

import (
	"fmt"
	"image/color"
	"log"
	"sort"

	"go-planet-scroll/internal/assets"
	"go-planet-scroll/internal/component"
	"go-planet-scroll/internal/config"
	"go-planet-scroll/internal/entity"
	"go-planet-scroll/internal/types"
	"go-planet-scroll/internal/utils"
	"go-planet-scroll/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Renderer projects the scene in software and draws it with ebiten. Bodies
// are textured UV spheres drawn back to front.
type Renderer struct {
	Labels bool

	target   *ebiten.Image // экран текущего кадра
	width    int
	height   int
	textures map[string]*ebiten.Image
	meshes   map[types.EntityID]render.Mesh
	fontFace font.Face
	lighting render.Lighting

	fillVs []ebiten.Vertex
	fillIs []uint16
	tris   []triangle
}

type triangle struct {
	depth float64
	v     [3]ebiten.Vertex
}

// drawItem — один объект сцены с глубиной для сортировки.
type drawItem struct {
	depth float64
	draw  func()
}

func NewRenderer(width, height int) (*Renderer, error) {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse label font: %w", err)
	}
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    config.LabelFontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create label font face: %w", err)
	}
	return &Renderer{
		width:    width,
		height:   height,
		textures: make(map[string]*ebiten.Image),
		meshes:   make(map[types.EntityID]render.Mesh),
		fontFace: face,
		fillVs:   make([]ebiten.Vertex, 0, 6*config.BodySegments*config.BodySegments),
		fillIs:   make([]uint16, 0, 6*config.BodySegments*config.BodySegments),
	}, nil
}

// SetTarget sets the image the next Render call draws on.
func (r *Renderer) SetTarget(screen *ebiten.Image) {
	r.target = screen
	b := screen.Bounds()
	r.width, r.height = b.Dx(), b.Dy()
}

func (r *Renderer) Prepare(scene *entity.Scene, textures *assets.TextureSet) error {
	for _, name := range textures.Names() {
		img := textures.MustGet(name)
		r.textures[name] = ebiten.NewImageFromImage(img)
	}
	for _, id := range scene.BodyOrder {
		body := scene.Bodies[id]
		r.meshes[id] = render.SphereMesh(body.Radius, config.BodySegments, config.BodySegments)
	}
	if scene.Point != nil && scene.Ambient != nil {
		r.lighting = render.Lighting{
			Ambient:          scene.Ambient.Color,
			AmbientIntensity: scene.Ambient.Intensity,
			Point:            scene.Point.Color,
			PointIntensity:   scene.Point.Intensity,
		}
	}
	log.Printf("Prepared %d textures and %d body meshes", len(r.textures), len(r.meshes))
	return nil
}

func (r *Renderer) Render(scene *entity.Scene) {
	if r.target == nil {
		return
	}
	r.target.Fill(config.BackgroundColor)
	if bg, ok := r.textures[scene.Background]; ok {
		b := bg.Bounds()
		scale, x, y := render.CoverFit(float64(b.Dx()), float64(b.Dy()), float64(r.width), float64(r.height))
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(x, y)
		op.Filter = ebiten.FilterLinear
		r.target.DrawImage(bg, op)
	}

	cam := &scene.Camera
	items := make([]drawItem, 0, len(scene.Stars)+len(scene.Bodies))

	for id, star := range scene.Stars {
		x, y, depth, ok := cam.Project(scene.Transforms[id].Position, r.width, r.height)
		if !ok {
			continue
		}
		radius := float32(max(cam.ProjectedRadius(star.Radius, depth, r.height), 0.6))
		clr := star.Color
		items = append(items, drawItem{depth: depth, draw: func() {
			vector.DrawFilledCircle(r.target, float32(x), float32(y), radius, clr, true)
		}})
	}

	for _, id := range scene.BodyOrder {
		id := id
		center := scene.BodyWorldPosition(id)
		depth := center.Sub(cam.Position).Dot(cam.Forward)
		if depth+scene.Bodies[id].Radius < cam.Near {
			continue
		}
		items = append(items, drawItem{depth: depth, draw: func() {
			r.drawBody(scene, id)
		}})
	}

	// Сначала дальние объекты
	sort.Slice(items, func(i, j int) bool { return items[i].depth > items[j].depth })
	for _, it := range items {
		it.draw()
	}

	if r.Labels {
		r.drawLabels(scene)
	}
}

func (r *Renderer) drawBody(scene *entity.Scene, id types.EntityID) {
	body := scene.Bodies[id]
	mesh, ok := r.meshes[id]
	if !ok {
		return
	}
	tex, ok := r.textures[body.Texture]
	if !ok {
		return
	}
	tb := tex.Bounds()
	tw, th := float64(tb.Dx()), float64(tb.Dy())

	cam := &scene.Camera
	center := scene.BodyWorldPosition(id)
	angle := scene.BodyRotation(id)

	world := make([]component.Vec3, len(mesh.Vertices))
	verts := make([]ebiten.Vertex, len(mesh.Vertices))
	depths := make([]float64, len(mesh.Vertices))
	visible := make([]bool, len(mesh.Vertices))
	for i, mv := range mesh.Vertices {
		p := component.RotateY(mv.Pos, angle).Add(center)
		world[i] = p
		x, y, depth, ok := cam.Project(p, r.width, r.height)
		depths[i], visible[i] = depth, ok
		if !ok {
			continue
		}
		n := component.RotateY(mv.Normal, angle)
		shade := color.RGBA{255, 255, 255, 255}
		if scene.Point != nil {
			l := scene.Point.Position.Sub(p).Normalize()
			shade = render.Shade(shade, n, l, r.lighting)
		}
		verts[i] = ebiten.Vertex{
			DstX:   float32(x),
			DstY:   float32(y),
			SrcX:   float32(float64(tb.Min.X) + mv.U*tw),
			SrcY:   float32(float64(tb.Min.Y) + mv.V*th),
			ColorR: float32(shade.R) / 255,
			ColorG: float32(shade.G) / 255,
			ColorB: float32(shade.B) / 255,
			ColorA: 1,
		}
	}

	r.tris = r.tris[:0]
	for i := 0; i+2 < len(mesh.Indices); i += 3 {
		a, b, c := mesh.Indices[i], mesh.Indices[i+1], mesh.Indices[i+2]
		if !visible[a] || !visible[b] || !visible[c] {
			continue
		}
		// отбрасываем грани, обращённые от камеры
		normal := world[b].Sub(world[a]).Cross(world[c].Sub(world[a]))
		if normal.Dot(cam.Position.Sub(world[a])) <= 0 {
			continue
		}
		r.tris = append(r.tris, triangle{
			depth: (depths[a] + depths[b] + depths[c]) / 3,
			v:     [3]ebiten.Vertex{verts[a], verts[b], verts[c]},
		})
	}
	sort.Slice(r.tris, func(i, j int) bool { return r.tris[i].depth > r.tris[j].depth })

	r.fillVs = r.fillVs[:0]
	r.fillIs = r.fillIs[:0]
	for _, t := range r.tris {
		base := uint16(len(r.fillVs))
		r.fillVs = append(r.fillVs, t.v[0], t.v[1], t.v[2])
		r.fillIs = append(r.fillIs, base, base+1, base+2)
	}
	if len(r.fillIs) == 0 {
		return
	}
	op := &ebiten.DrawTrianglesOptions{Filter: ebiten.FilterLinear}
	r.target.DrawTriangles(r.fillVs, r.fillIs, tex, op)
}

func (r *Renderer) drawLabels(scene *entity.Scene) {
	cam := &scene.Camera
	for _, id := range scene.BodyOrder {
		body := scene.Bodies[id]
		top := scene.BodyWorldPosition(id).Add(component.Vec3{0, body.Radius * 1.15, 0})
		x, y, _, ok := cam.Project(top, r.width, r.height)
		if !ok {
			continue
		}
		w := font.MeasureString(r.fontFace, body.ID).Ceil()
		text.Draw(r.target, body.ID, r.fontFace, int(x)-w/2, int(y), config.LabelColor)
	}
}

func (r *Renderer) RenderLoading(progress float64) {
	if r.target == nil {
		return
	}
	const barW, barH = 320, 8
	r.target.Fill(config.BackgroundColor)
	x := float32(r.width/2 - barW/2)
	y := float32(r.height / 2)
	vector.DrawFilledRect(r.target, x, y, barW, barH, config.ProgressBgColor, false)
	vector.DrawFilledRect(r.target, x, y, float32(barW*utils.Clamp(progress, 0, 1)), barH, config.ProgressBarColor, false)
}
