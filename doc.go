/*
Package stamp embeds 1-bit raster images in Go programs.

A Stamp couples a width and height with a packed, static byte array holding
one bit per pixel. The stampgen tool converts ordinary image files into Go
source declaring such arrays, so the pixels are fixed at build time and the
program never decodes an image format at runtime:

	//go:generate stampgen generate -o stamps.go star.png

which emits, alongside the packed bytes:

	var Star = stamp.FromRaw(12, 12, &starData[0])

Nothing tracks the source images afterwards; rerun go generate when one
changes.

Pixels are read back with At, Lookup or the Pixels iterator:

	px := sprites.Star.Pixels()
	for {
		p, ok := px.Next()
		if !ok {
			break
		}
		if p.Color == stamp.White {
			display.SetPixel(p.X, p.Y)
		}
	}

Reads allocate nothing and the package is independent of the standard
library's image machinery, so it suits embedded targets. On
Harvard-architecture microcontrollers the backing arrays can be kept out
of RAM entirely; see the progmem subpackage and the "progmem" build tag
it honours.

The packed format is row-major and linear: pixel (x, y) of a stamp of
width w is bit k = y*w + x of the stream, stored in byte k/8 at the mask
0x80 >> k%8, White as a set bit. The array holds ceil(w*h/8) bytes and
any trailing bits in the final byte are ignored. The mono subpackage
implements the format for the standard image packages and stampgen builds
on it.
*/
package stamp
