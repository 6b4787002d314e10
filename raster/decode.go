package raster

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Decode reads an image in any registered format. PNG, JPEG, GIF, BMP,
// TIFF and WebP are registered by this package; callers may blank-import
// further format packages.
func Decode(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, &LoadError{Err: err}
	}
	return img, nil
}
