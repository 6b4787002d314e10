package raster

import "github.com/thermaldot/escpos-raster/util"

// Mode is the m parameter of the GS v 0 command. The printer doubles the
// dot size in one or both directions for the non-normal modes.
type Mode byte

const (
	ModeNormal       Mode = 0
	ModeDoubleWidth  Mode = 1
	ModeDoubleHeight Mode = 2
	ModeQuadruple    Mode = 3
)

// rasterPrefix identifies the GS v 0 raster command.
var rasterPrefix = []byte{0x1d, 0x76, 0x30}

// maxHeaderDim is the largest value the header's 2-byte stride and
// height fields can carry.
const maxHeaderDim = 0xffff

// Bitmap is a monochrome image packed 8 horizontal pixels per byte, most
// significant bit leftmost. Rows are padded to a whole byte; the padding
// bits are always 0.
type Bitmap struct {
	data          []byte
	width, height int
	stride        int
}

func (b *Bitmap) Width() int  { return b.width }
func (b *Bitmap) Height() int { return b.height }

// Stride is the number of bytes per packed row, (Width()+7)/8.
func (b *Bitmap) Stride() int { return b.stride }

// Data returns the packed rows, top to bottom.
func (b *Bitmap) Data() []byte { return b.data }

// Bit reports the dot at (x, y): 1 prints, 0 leaves the paper blank.
// Coordinates outside the bitmap report 0, same as the blank padding
// bits at the end of each row.
func (b *Bitmap) Bit(x, y int) byte {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return 0
	}
	return (b.data[y*b.stride+x/8] >> uint(7-x%8)) & 1
}

// Command renders the bitmap as a complete GS v 0 raster command.
// The header's width field is the stride in bytes and the height field
// is in dots, both as 2-byte little-endian values; stride and height
// must each fit in 16 bits (Encode checks this before packing).
func (b *Bitmap) Command(m Mode) []byte {
	buf := make([]byte, 0, 8+len(b.data))
	buf = append(buf, rasterPrefix...)
	buf = append(buf, byte(m))
	buf = append(buf, util.IntLowHigh(b.stride, 2)...)
	buf = append(buf, util.IntLowHigh(b.height, 2)...)
	return append(buf, b.data...)
}
