package stamp

import (
	"fmt"

	"github.com/woodcut/stamp/progmem"
)

// Stamp is a rectangular 1-bit raster backed by a packed byte array.
//
// Stamps are cheap values, a size and a handle to static data, and are
// copied rather than referenced. The zero Stamp is empty and safe to use.
type Stamp struct {
	width  int
	height int
	data   progmem.Bytes
}

// FromRaw builds a stamp over the packed array starting at data, which must
// hold at least ceil(width*height/8) bytes laid out as described in the
// package documentation. data may be nil only when the stamp has no pixels.
//
// The array is adopted, not copied, so generated code can hand a stamp its
// static backing storage:
//
//	var Star = stamp.FromRaw(12, 12, &starData[0])
func FromRaw(width, height int, data *byte) Stamp {
	return Stamp{
		width:  width,
		height: height,
		data:   progmem.FromRaw(data, packedLen(width, height)),
	}
}

// FromSlice builds a stamp over a packed byte slice. It is the ordinary-Go
// counterpart of FromRaw, with the same layout contract.
func FromSlice(width, height int, data []byte) Stamp {
	return Stamp{
		width:  width,
		height: height,
		data:   progmem.FromSlice(data),
	}
}

// packedLen returns the number of bytes needed to pack w*h pixels.
func packedLen(w, h int) int {
	return (w*h + 7) / 8
}

// Size returns the stamp's width and height in pixels.
func (s Stamp) Size() (w, h int) {
	return s.width, s.height
}

// Width returns the stamp's width in pixels.
func (s Stamp) Width() int {
	return s.width
}

// Height returns the stamp's height in pixels.
func (s Stamp) Height() int {
	return s.height
}

// PixelCount returns the total number of pixels in the stamp.
func (s Stamp) PixelCount() int {
	return s.width * s.height
}

// InBounds reports whether (x, y) falls inside the stamp.
func (s Stamp) InBounds(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// At returns the colour of the pixel at (x, y). It panics if the
// coordinates are out of bounds; use Lookup when that is not certain.
func (s Stamp) At(x, y int) Color {
	if !s.InBounds(x, y) {
		panic(fmt.Sprintf("stamp: At(%d, %d): out of bounds of %dx%d stamp", x, y, s.width, s.height))
	}
	return s.AtUnchecked(x, y)
}

// Lookup returns the colour of the pixel at (x, y) and true, or Black and
// false if the coordinates are out of bounds.
func (s Stamp) Lookup(x, y int) (Color, bool) {
	if !s.InBounds(x, y) {
		return Black, false
	}
	return s.AtUnchecked(x, y), true
}

// AtUnchecked returns the colour of the pixel at (x, y) without a bounds
// check. The coordinates must satisfy InBounds; anything else reads past
// the packed array.
func (s Stamp) AtUnchecked(x, y int) Color {
	k := y*s.width + x
	if s.data.Fetch(k/8)&(0x80>>(k%8)) != 0 {
		return White
	}
	return Black
}
