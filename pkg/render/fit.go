package render

import "math"

// CoverFit scales a src-sized image uniformly so it covers a dst-sized area
// and centres it. The overflow is split evenly, so offsets are zero or
// negative.
func CoverFit(srcW, srcH, dstW, dstH float64) (scale, offX, offY float64) {
	if srcW <= 0 || srcH <= 0 {
		return 1, 0, 0
	}
	scale = math.Max(dstW/srcW, dstH/srcH)
	offX = (dstW - srcW*scale) / 2
	offY = (dstH - srcH*scale) / 2
	return scale, offX, offY
}
