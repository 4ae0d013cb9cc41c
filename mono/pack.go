package mono

import "image"

// Pack quantises m through Model into a fresh Bitmap of the same size. The
// top left of m's bounds maps to (0, 0), whatever its origin.
//
// Pixels are fed to the model one at a time rather than bulk drawn, so
// sources carrying straight alpha, image.NRGBA and friends, reach the
// model unpremultiplied and translucent dark pixels quantise by their true
// channel values.
func Pack(m image.Image) *Bitmap {
	r := m.Bounds()
	b := New(r.Dx(), r.Dy())
	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			b.Set(x, y, m.At(r.Min.X+x, r.Min.Y+y))
		}
	}
	return b
}
