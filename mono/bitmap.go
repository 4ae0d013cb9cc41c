package mono

import (
	"image"
	"image/color"

	"github.com/woodcut/stamp"
)

// Bitmap is an in-memory packed raster. It implements image.Image,
// image.PalettedImage and draw.Image, so the standard drawing machinery
// can write straight into the packed representation.
type Bitmap struct {
	// Pix holds the packed pixels as described in the package
	// documentation. Its trailing bits stay zero under Set.
	Pix []byte
	// W and H are the raster's dimensions in pixels.
	W, H int
}

// New returns an all-Black bitmap of the given size. Dimensions below zero
// are treated as zero, and a zero-area bitmap has an empty Pix.
func New(w, h int) *Bitmap {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Bitmap{
		Pix: make([]byte, (w*h+7)/8),
		W:   w,
		H:   h,
	}
}

// FromBytes wraps an already packed byte slice, which must hold at least
// ceil(w*h/8) bytes. The slice is adopted, not copied.
func FromBytes(w, h int, pix []byte) *Bitmap {
	return &Bitmap{Pix: pix, W: w, H: h}
}

// ColorModel implements image.Image.
func (b *Bitmap) ColorModel() color.Model {
	return Model
}

// Bounds implements image.Image.
func (b *Bitmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.W, b.H)
}

// At implements image.Image. Pixels outside the raster are Black.
func (b *Bitmap) At(x, y int) color.Color {
	return b.ColorAt(x, y)
}

// ColorAt is At without the interface indirection.
func (b *Bitmap) ColorAt(x, y int) stamp.Color {
	if !b.inBounds(x, y) {
		return stamp.Black
	}
	i, mask := b.pixOffset(x, y)
	if b.Pix[i]&mask != 0 {
		return stamp.White
	}
	return stamp.Black
}

// ColorIndexAt implements image.PalettedImage. The palette index of a
// pixel is its packed bit value.
func (b *Bitmap) ColorIndexAt(x, y int) uint8 {
	return uint8(b.ColorAt(x, y))
}

// Set implements draw.Image, quantising c through Model. Writes outside
// the raster are dropped.
func (b *Bitmap) Set(x, y int, c color.Color) {
	b.SetColor(x, y, Model.Convert(c).(stamp.Color))
}

// SetColor sets the pixel at (x, y) without colour conversion. Writes
// outside the raster are dropped.
func (b *Bitmap) SetColor(x, y int, c stamp.Color) {
	if !b.inBounds(x, y) {
		return
	}
	i, mask := b.pixOffset(x, y)
	if c == stamp.White {
		b.Pix[i] |= mask
	} else {
		b.Pix[i] &^= mask
	}
}

// pixOffset returns the byte index and bit mask holding pixel (x, y).
func (b *Bitmap) pixOffset(x, y int) (int, byte) {
	k := y*b.W + x
	return k / 8, 0x80 >> (k % 8)
}

func (b *Bitmap) inBounds(x, y int) bool {
	return x >= 0 && x < b.W && y >= 0 && y < b.H
}
