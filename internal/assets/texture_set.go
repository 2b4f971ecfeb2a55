package assets

import (
	"image"
	"image/color"
	"sort"
)

// TextureSet holds decoded images by file name.
type TextureSet struct {
	images   map[string]image.Image
	fallback map[string]bool
}

func newTextureSet() *TextureSet {
	return &TextureSet{
		images:   make(map[string]image.Image),
		fallback: make(map[string]bool),
	}
}

func (s *TextureSet) put(name string, img image.Image, fallback bool) {
	s.images[name] = img
	if fallback {
		s.fallback[name] = true
	}
}

// Get returns the image for name.
func (s *TextureSet) Get(name string) (image.Image, bool) {
	img, ok := s.images[name]
	return img, ok
}

// MustGet returns the image for name, or a fallback if the set lacks it.
func (s *TextureSet) MustGet(name string) image.Image {
	if img, ok := s.Get(name); ok {
		return img
	}
	return Fallback(name)
}

func (s *TextureSet) Len() int { return len(s.images) }

// Names returns the stored names in sorted order.
func (s *TextureSet) Names() []string {
	names := make([]string, 0, len(s.images))
	for n := range s.images {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Failed returns, sorted, the names that were replaced with fallbacks.
func (s *TextureSet) Failed() []string {
	names := make([]string, 0, len(s.fallback))
	for n := range s.fallback {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// AverageColor samples img on a coarse grid and returns the mean colour.
func AverageColor(img image.Image) color.RGBA {
	b := img.Bounds()
	if b.Empty() {
		return color.RGBA{A: 255}
	}
	stepX := max(1, b.Dx()/64)
	stepY := max(1, b.Dy()/64)

	var r, g, bl, n uint64
	for y := b.Min.Y; y < b.Max.Y; y += stepY {
		for x := b.Min.X; x < b.Max.X; x += stepX {
			cr, cg, cb, _ := img.At(x, y).RGBA()
			r += uint64(cr >> 8)
			g += uint64(cg >> 8)
			bl += uint64(cb >> 8)
			n++
		}
	}
	return color.RGBA{uint8(r / n), uint8(g / n), uint8(bl / n), 255}
}
