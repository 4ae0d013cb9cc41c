package mono

import "github.com/woodcut/stamp"

// Sketch renders b as ASCII art, one string per pixel row, '@' for White
// and '.' for Black.
func Sketch(b *Bitmap) []string {
	rows := make([]string, 0, b.H)
	for y := 0; y < b.H; y++ {
		row := make([]byte, b.W)
		for x := 0; x < b.W; x++ {
			if b.ColorAt(x, y) == stamp.White {
				row[x] = '@'
			} else {
				row[x] = '.'
			}
		}
		rows = append(rows, string(row))
	}
	return rows
}
