package stamp

// Color is the colour of a single stamp pixel.
type Color uint8

const (
	// Black is an unset bit in the packed data.
	Black Color = iota
	// White is a set bit in the packed data.
	White
)

// RGBA implements color.Color. Both colours are fully opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	if c == White {
		return 0xffff, 0xffff, 0xffff, 0xffff
	}
	return 0, 0, 0, 0xffff
}

func (c Color) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}
