package assets

import (
	"image"
	"image/color"

	"go-planet-scroll/internal/config"
	"go-planet-scroll/internal/utils"
)

// Fallback builds a stand-in image for an asset that could not be loaded.
func Fallback(name string) image.Image {
	switch name {
	case config.NormalTexture:
		return solid(4, 4, config.FallbackNormal)
	case config.BackgroundTexture:
		return gradient(4, 256, config.FallbackSkyTop, config.FallbackSkyLow)
	default:
		return solid(64, 32, config.FallbackAlbedo)
	}
}

func solid(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	return img
}

func gradient(w, h int, top, bottom color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		t := float64(y) / float64(h-1)
		c := color.RGBA{
			R: uint8(utils.Lerp(float64(top.R), float64(bottom.R), t)),
			G: uint8(utils.Lerp(float64(top.G), float64(bottom.G), t)),
			B: uint8(utils.Lerp(float64(top.B), float64(bottom.B), t)),
			A: 255,
		}
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}
