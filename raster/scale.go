package raster

import (
	"image"
	"math"

	"github.com/nfnt/resize"
)

// scaleToWidth downscales img to maxWidth pixels wide, keeping the aspect
// ratio with the height rounded to the nearest whole row. Images at or
// under maxWidth are returned unchanged.
func scaleToWidth(img image.Image, maxWidth int) image.Image {
	sz := img.Bounds().Size()
	if sz.X <= maxWidth {
		return img
	}
	h := int(math.Round(float64(maxWidth) * float64(sz.Y) / float64(sz.X)))
	return resize.Resize(uint(maxWidth), uint(h), img, resize.Lanczos3)
}
