package raster

import (
	"errors"
	"fmt"
	"io"
)

// Caps on what a parsed command may claim. Real receipt printers top out
// well below these.
const (
	maxParseDots    = 10000
	maxParsePayload = 5 << 20
)

var (
	// ErrBadPrefix reports data that does not start with GS v 0.
	ErrBadPrefix = errors.New("raster: not a GS v 0 command")

	// ErrTruncated reports a stream shorter than its header promises.
	ErrTruncated = errors.New("raster: truncated command")
)

// Command is a parsed GS v 0 raster command.
type Command struct {
	Mode        Mode
	BytesPerRow int
	Height      int
	Data        []byte
}

// Width is the dot width implied by the packed rows. Sub-byte widths are
// not recoverable from the wire format, so this is always a multiple of 8.
func (c *Command) Width() int { return c.BytesPerRow * 8 }

// Parse reads back a GS v 0 command produced by Encode or any compatible
// sender. Trailing bytes after the payload are ignored.
func Parse(data []byte) (*Command, error) {
	if len(data) < 3 || data[0] != 0x1d || data[1] != 0x76 || data[2] != 0x30 {
		return nil, ErrBadPrefix
	}
	if len(data) < 8 {
		return nil, ErrTruncated
	}

	c := &Command{
		Mode:        Mode(data[3]),
		BytesPerRow: int(data[4]) | int(data[5])<<8,
		Height:      int(data[6]) | int(data[7])<<8,
	}
	if c.BytesPerRow == 0 || c.Height == 0 {
		return nil, fmt.Errorf("raster: zero dimension: %d bytes x %d dots", c.BytesPerRow, c.Height)
	}
	if c.Width() > maxParseDots || c.Height > maxParseDots {
		return nil, fmt.Errorf("raster: dimensions too large: %dx%d dots", c.Width(), c.Height)
	}

	n := c.BytesPerRow * c.Height
	if n > maxParsePayload {
		return nil, fmt.Errorf("raster: payload too large: %d bytes", n)
	}
	if len(data) < 8+n {
		return nil, ErrTruncated
	}

	c.Data = data[8 : 8+n]
	return c, nil
}

// WritePBM dumps the payload as a binary PBM (P4) image. PBM packs rows
// the same way the raster command does, so the body is a byte copy.
func (c *Command) WritePBM(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "P4\n%d %d\n", c.Width(), c.Height); err != nil {
		return err
	}
	_, err := w.Write(c.Data)
	return err
}
