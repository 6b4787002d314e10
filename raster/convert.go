package raster

import (
	"image"
	"image/color"
)

// ITU-R 601 luma weights.
const (
	lumR = 299
	lumG = 587
	lumB = 114
)

// luminance reduces a color to an 8-bit intensity, 0 black through 255 white.
func luminance(c color.Color) int {
	r, g, b, _ := c.RGBA()
	return int((lumR*(r>>8) + lumG*(g>>8) + lumB*(b>>8)) / 1000)
}

// Threshold binarizes img into a packed Bitmap. Pixels strictly darker
// than level become print dots; pixels at or above level stay blank.
func Threshold(img image.Image, level int) *Bitmap {
	bounds := img.Bounds()
	sz := bounds.Size()

	b := &Bitmap{
		width:  sz.X,
		height: sz.Y,
		stride: (sz.X + 7) / 8,
	}
	b.data = make([]byte, b.stride*sz.Y)

	for y := 0; y < sz.Y; y++ {
		for x := 0; x < sz.X; x++ {
			if luminance(img.At(bounds.Min.X+x, bounds.Min.Y+y)) < level {
				b.data[y*b.stride+x/8] |= 0x80 >> uint(x%8)
			}
		}
	}
	return b
}
