/*
Package mono implements the packed two-colour raster format that stamps
read from.

The format linearises pixels in row-major order with no per-row padding:
pixel (x, y) of a w wide raster is bit k = y*w + x, held in byte k/8 at the
mask 0x80 >> k%8. White is a set bit. A raster of w*h pixels packs into
ceil(w*h/8) bytes and the trailing bits of the final byte carry no pixels;
writers in this package leave them zero and readers never look at them.

Bitmap adapts the format to image.Image and draw.Image, Pack quantises any
image into it, and Sketch renders one as ASCII art for eyeballing.
*/
package mono

import (
	"image/color"

	"github.com/woodcut/stamp"
)

// whiteThreshold is the lowest straight-alpha R+G+B sum that quantises an
// opaque pixel to White, the channel mean of 128 over three channels.
const whiteThreshold = 128 * 3

// Palette holds the two stamp colours, indexed by their packed bit value.
var Palette = color.Palette{stamp.Black, stamp.White}

// Model quantises any colour to stamp.Black or stamp.White. A pixel is
// White when it is not fully transparent and its straight-alpha channel sum
// reaches the threshold; everything else, including all fully transparent
// pixels, is Black.
var Model = color.ModelFunc(quantise)

func quantise(c color.Color) color.Color {
	if c, ok := c.(stamp.Color); ok {
		return c
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A > 0 && int(n.R)+int(n.G)+int(n.B) >= whiteThreshold {
		return stamp.White
	}
	return stamp.Black
}
