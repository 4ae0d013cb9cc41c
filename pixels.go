package stamp

// Pixel is one pixel yielded by a Pixels iterator.
type Pixel struct {
	X, Y  int
	Color Color
}

// Pixels iterates over a stamp's pixels in row-major order, left to right
// then top to bottom.
type Pixels struct {
	s Stamp
	k int
}

// Pixels returns an iterator over every pixel of the stamp.
func (s Stamp) Pixels() Pixels {
	return Pixels{s: s}
}

// Next returns the next pixel, or a zero Pixel and false once the stamp is
// exhausted.
func (p *Pixels) Next() (Pixel, bool) {
	if p.k >= p.s.PixelCount() {
		return Pixel{}, false
	}
	x, y := p.k%p.s.width, p.k/p.s.width
	p.k++
	return Pixel{X: x, Y: y, Color: p.s.AtUnchecked(x, y)}, true
}

// Len returns the exact number of pixels Next has yet to yield.
func (p *Pixels) Len() int {
	return p.s.PixelCount() - p.k
}
