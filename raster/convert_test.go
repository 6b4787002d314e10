package raster

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThresholdBoundary(t *testing.T) {
	tests := []struct {
		intensity uint8
		want      byte
	}{
		{127, 1}, // strictly below the threshold prints
		{128, 0}, // equal to the threshold stays blank
		{0, 1},
		{255, 0},
	}
	for _, tt := range tests {
		img := solidImage(8, 1, color.RGBA{tt.intensity, tt.intensity, tt.intensity, 255})
		if got := Threshold(img, 128).Bit(0, 0); got != tt.want {
			t.Fatalf("intensity %d: bit = %d, want %d", tt.intensity, got, tt.want)
		}
	}
}

func TestThresholdPacksMSBFirst(t *testing.T) {
	// alternating columns, black in the even ones
	img := image.NewGray(image.Rect(0, 0, 12, 1))
	for x := 0; x < 12; x++ {
		if x%2 == 0 {
			img.SetGray(x, 0, color.Gray{Y: 0})
		} else {
			img.SetGray(x, 0, color.Gray{Y: 255})
		}
	}

	bm := Threshold(img, 128)
	assert.Equal(t, 2, bm.Stride())
	assert.Equal(t, []byte{0xaa, 0xa0}, bm.Data())
}

func TestThresholdPaddingBitsStayBlank(t *testing.T) {
	bm := Threshold(solidImage(9, 2, color.Black), 128)
	assert.Equal(t, []byte{0xff, 0x80, 0xff, 0x80}, bm.Data())
}

func TestThresholdExactByteWidth(t *testing.T) {
	bm := Threshold(solidImage(16, 1, color.Black), 128)
	assert.Equal(t, 2, bm.Stride())
	assert.Equal(t, []byte{0xff, 0xff}, bm.Data())
}

func TestThresholdOffsetBounds(t *testing.T) {
	// bounds that do not start at the origin must still pack from the
	// image's own top-left corner
	img := image.NewGray(image.Rect(5, 5, 13, 7))
	for y := 5; y < 7; y++ {
		for x := 5; x < 13; x++ {
			img.SetGray(x, y, color.Gray{Y: 0})
		}
	}

	bm := Threshold(img, 128)
	assert.Equal(t, 8, bm.Width())
	assert.Equal(t, 2, bm.Height())
	assert.Equal(t, []byte{0xff, 0xff}, bm.Data())
}

func TestLuminance(t *testing.T) {
	tests := []struct {
		c    color.Color
		want int
	}{
		{color.Black, 0},
		{color.White, 255},
		{color.RGBA{128, 128, 128, 255}, 128},
		{color.RGBA{255, 0, 0, 255}, 76},  // 299*255/1000
		{color.RGBA{0, 255, 0, 255}, 149}, // 587*255/1000
		{color.RGBA{0, 0, 255, 255}, 29},  // 114*255/1000
	}
	for _, tt := range tests {
		if got := luminance(tt.c); got != tt.want {
			t.Fatalf("luminance(%v) = %d, want %d", tt.c, got, tt.want)
		}
	}
}

func TestBitmapBit(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 9, 1))
	for x := 0; x < 9; x++ {
		img.SetGray(x, 0, color.Gray{Y: 255})
	}
	img.SetGray(8, 0, color.Gray{Y: 0}) // only the 9th column prints

	bm := Threshold(img, 128)
	for x := 0; x < 8; x++ {
		assert.Equal(t, byte(0), bm.Bit(x, 0), "column %d", x)
	}
	assert.Equal(t, byte(1), bm.Bit(8, 0))
	assert.Equal(t, []byte{0x00, 0x80}, bm.Data())
}

func TestBitmapBitOutOfRange(t *testing.T) {
	bm := Threshold(solidImage(9, 1, color.Black), 128)

	// columns 9..15 exist in the packed row but are padding, not pixels
	for x := 9; x < 16; x++ {
		assert.Equal(t, byte(0), bm.Bit(x, 0), "column %d", x)
	}
	assert.Equal(t, byte(0), bm.Bit(-1, 0))
	assert.Equal(t, byte(0), bm.Bit(0, -1))
	assert.Equal(t, byte(0), bm.Bit(0, 1))
}
