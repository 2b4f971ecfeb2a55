package system

import "go-planet-scroll/internal/utils"

// Page models the scrollable document the scene sits behind. Top mirrors
// what a browser reports for the body's bounding rectangle: zero at the top
// of the page, negative once scrolled down.
type Page struct {
	Length  float64 // максимальный scrollY
	scrollY float64
}

func NewPage(length float64) *Page {
	if length < 0 {
		length = 0
	}
	return &Page{Length: length}
}

// ScrollBy moves the page by dy pixels (positive scrolls down) and reports
// whether the offset actually changed.
func (p *Page) ScrollBy(dy float64) bool {
	next := utils.Clamp(p.scrollY+dy, 0, p.Length)
	if next == p.scrollY {
		return false
	}
	p.scrollY = next
	return true
}

func (p *Page) ScrollY() float64 { return p.scrollY }

func (p *Page) Top() float64 { return -p.scrollY }
