package mono

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/woodcut/stamp"
)

var starData = []byte{
	0x06, 0x00, 0x60, 0x0f, 0x00, 0xf0, 0xff, 0xf7, 0xfe, 0x3f, 0xc1, 0xf8,
	0x3f, 0xc3, 0x9c, 0x70, 0xe6, 0x06,
}

var starWhite = [][2]int{
	{5, 0}, {6, 0},
	{5, 1}, {6, 1},
	{4, 2}, {5, 2}, {6, 2}, {7, 2},
	{4, 3}, {5, 3}, {6, 3}, {7, 3},
	{0, 4}, {1, 4}, {2, 4}, {3, 4}, {4, 4}, {5, 4}, {6, 4}, {7, 4}, {8, 4}, {9, 4}, {10, 4}, {11, 4},
	{1, 5}, {2, 5}, {3, 5}, {4, 5}, {5, 5}, {6, 5}, {7, 5}, {8, 5}, {9, 5}, {10, 5},
	{2, 6}, {3, 6}, {4, 6}, {5, 6}, {6, 6}, {7, 6}, {8, 6}, {9, 6},
	{3, 7}, {4, 7}, {5, 7}, {6, 7}, {7, 7}, {8, 7},
	{2, 8}, {3, 8}, {4, 8}, {5, 8}, {6, 8}, {7, 8}, {8, 8}, {9, 8},
	{2, 9}, {3, 9}, {4, 9}, {7, 9}, {8, 9}, {9, 9},
	{1, 10}, {2, 10}, {3, 10}, {8, 10}, {9, 10}, {10, 10},
	{1, 11}, {2, 11}, {9, 11}, {10, 11},
}

// starImage draws the star as white on transparent, the way an exported
// sprite sheet would carry it.
func starImage() *image.NRGBA {
	m := image.NewNRGBA(image.Rect(0, 0, 12, 12))
	for _, p := range starWhite {
		m.SetNRGBA(p[0], p[1], color.NRGBA{0xff, 0xff, 0xff, 0xff})
	}
	return m
}

func TestPack(t *testing.T) {
	t.Parallel()

	b := Pack(starImage())

	assert.Equal(t, 12, b.W)
	assert.Equal(t, 12, b.H)
	assert.Equal(t, starData, b.Pix)
}

func TestPackCheckerboard(t *testing.T) {
	t.Parallel()

	m := image.NewNRGBA(image.Rect(0, 0, 3, 3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if (x+y)%2 == 0 {
				m.SetNRGBA(x, y, color.NRGBA{0xff, 0xff, 0xff, 0xff})
			}
		}
	}

	assert.Equal(t, []byte{0xaa, 0x80}, Pack(m).Pix)
}

// Rows pack back to back with no byte alignment between them.
func TestPackNoRowPadding(t *testing.T) {
	t.Parallel()

	m := image.NewNRGBA(image.Rect(0, 0, 3, 3))
	m.SetNRGBA(0, 1, color.NRGBA{0xff, 0xff, 0xff, 0xff})

	// Pixel (0, 1) is bit 3 of the stream.
	assert.Equal(t, []byte{0x10, 0x00}, Pack(m).Pix)
}

// Sources whose bounds do not start at the origin pack as if they did.
func TestPackOffsetBounds(t *testing.T) {
	t.Parallel()

	m := image.NewNRGBA(image.Rect(2, 3, 5, 6))
	m.SetNRGBA(2, 3, color.NRGBA{0xff, 0xff, 0xff, 0xff})
	m.SetNRGBA(4, 5, color.NRGBA{0xff, 0xff, 0xff, 0xff})

	b := Pack(m)

	assert.Equal(t, 3, b.W)
	assert.Equal(t, 3, b.H)
	assert.Equal(t, stamp.White, b.ColorAt(0, 0))
	assert.Equal(t, stamp.White, b.ColorAt(2, 2))
	assert.Equal(t, []byte{0x80, 0x80}, b.Pix)
}

func TestPackZeroArea(t *testing.T) {
	t.Parallel()

	b := Pack(image.NewNRGBA(image.Rect(0, 0, 0, 5)))

	assert.Equal(t, 0, b.W)
	assert.Equal(t, 5, b.H)
	assert.Empty(t, b.Pix)
}

// Packing a bitmap reproduces its pixels and zeroes any stray trailing
// bits the source carried.
func TestPackRoundTrip(t *testing.T) {
	t.Parallel()

	assert.Equal(t, starData, Pack(FromBytes(12, 12, starData)).Pix)
	assert.Equal(t, []byte{0xaa, 0x80}, Pack(FromBytes(3, 3, []byte{0xaa, 0xff})).Pix)
}
