// Package raster converts images into ESC/POS GS v 0 raster commands
// for thermal receipt printers.
package raster

import (
	"fmt"
	"image"
	"io"
	"os"
)

// Config controls one encode call. The zero Mode prints at normal size.
type Config struct {
	// MaxWidth is the printer's line width in dots. Wider images are
	// downscaled to fit; narrower ones are left at their own width.
	MaxWidth int

	// Threshold is the grayscale cut between print dots and blank paper,
	// in [0, 255]. Intensities strictly below it print. Callers taking
	// untrusted values should run them through ClampThreshold first.
	Threshold int

	Mode Mode
}

// ClampThreshold pins t to the valid [0, 255] range.
func ClampThreshold(t int) int {
	if t < 0 {
		return 0
	}
	if t > 255 {
		return 255
	}
	return t
}

// Encode converts img into a complete GS v 0 command stream.
func Encode(img image.Image, cfg Config) ([]byte, error) {
	if cfg.MaxWidth <= 0 {
		return nil, ErrInvalidConfig
	}
	img = scaleToWidth(img, cfg.MaxWidth)

	sz := img.Bounds().Size()
	if (sz.X+7)/8 > maxHeaderDim || sz.Y > maxHeaderDim {
		return nil, fmt.Errorf("%w: %dx%d dots", ErrTooLarge, sz.X, sz.Y)
	}
	return Threshold(img, cfg.Threshold).Command(cfg.Mode), nil
}

// EncodeReader decodes an image from r and encodes it.
func EncodeReader(r io.Reader, cfg Config) ([]byte, error) {
	if cfg.MaxWidth <= 0 {
		return nil, ErrInvalidConfig
	}
	img, err := Decode(r)
	if err != nil {
		return nil, err
	}
	return Encode(img, cfg)
}

// EncodeFile loads the image at path and encodes it.
func EncodeFile(path string, cfg Config) ([]byte, error) {
	if cfg.MaxWidth <= 0 {
		return nil, ErrInvalidConfig
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Err: err}
	}
	defer f.Close()
	return EncodeReader(f, cfg)
}
