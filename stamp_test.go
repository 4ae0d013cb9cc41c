package stamp

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var starData = [...]byte{
	0x06, 0x00, 0x60, 0x0f, 0x00, 0xf0, 0xff, 0xf7, 0xfe, 0x3f, 0xc1, 0xf8,
	0x3f, 0xc3, 0x9c, 0x70, 0xe6, 0x06,
}

// starWhite lists the White pixels of the 12x12 star, row by row.
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

func star() Stamp {
	return FromRaw(12, 12, &starData[0])
}

func TestAt(t *testing.T) {
	t.Parallel()

	// 0xa5 0x17 is WBWBBWBW BBBWBWWW.
	s := FromSlice(16, 1, []byte{0xa5, 0x17})

	want := []Color{
		White, Black, White, Black, Black, White, Black, White,
		Black, Black, Black, White, Black, White, White, White,
	}
	for x, c := range want {
		assert.Equal(t, c, s.At(x, 0), "x = %d", x)
	}
}

func TestBitOrder(t *testing.T) {
	t.Parallel()

	all := FromSlice(8, 1, []byte{0xff})
	first := FromSlice(8, 1, []byte{0x80})
	last := FromSlice(8, 1, []byte{0x01})

	for x := 0; x < 8; x++ {
		assert.Equal(t, White, all.At(x, 0), "x = %d", x)

		want := Black
		if x == 0 {
			want = White
		}
		assert.Equal(t, want, first.At(x, 0), "x = %d", x)

		want = Black
		if x == 7 {
			want = White
		}
		assert.Equal(t, want, last.At(x, 0), "x = %d", x)
	}
}

func TestAtOutOfBounds(t *testing.T) {
	t.Parallel()

	s := FromSlice(5, 4, make([]byte, 3))

	assert.PanicsWithValue(t, "stamp: At(5, 3): out of bounds of 5x4 stamp", func() {
		s.At(5, 3)
	})
	assert.PanicsWithValue(t, "stamp: At(2, 4): out of bounds of 5x4 stamp", func() {
		s.At(2, 4)
	})
	assert.PanicsWithValue(t, "stamp: At(-1, 0): out of bounds of 5x4 stamp", func() {
		s.At(-1, 0)
	})
}

func TestInBounds(t *testing.T) {
	t.Parallel()

	s := FromSlice(5, 4, make([]byte, 3))

	tables := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{4, 3, true},
		{4, 0, true},
		{0, 3, true},
		{5, 3, false},
		{4, 4, false},
		{5, 4, false},
		{-1, 0, false},
		{0, -1, false},
	}

	for _, table := range tables {
		assert.Equal(t, table.want, s.InBounds(table.x, table.y), "(%d, %d)", table.x, table.y)
	}
}

func TestLookup(t *testing.T) {
	t.Parallel()

	s := star()

	for y := -1; y <= s.Height(); y++ {
		for x := -1; x <= s.Width(); x++ {
			c, ok := s.Lookup(x, y)
			assert.Equal(t, s.InBounds(x, y), ok, "(%d, %d)", x, y)
			if ok {
				assert.Equal(t, s.At(x, y), c, "(%d, %d)", x, y)
			} else {
				assert.Equal(t, Black, c, "(%d, %d)", x, y)
			}
		}
	}
}

func TestSize(t *testing.T) {
	t.Parallel()

	s := FromSlice(5, 4, make([]byte, 3))

	w, h := s.Size()
	assert.Equal(t, 5, w)
	assert.Equal(t, 4, h)
	assert.Equal(t, 5, s.Width())
	assert.Equal(t, 4, s.Height())
	assert.Equal(t, 20, s.PixelCount())
}

func TestZeroArea(t *testing.T) {
	t.Parallel()

	tables := []struct {
		name string
		s    Stamp
	}{
		{"ZeroWidth", FromRaw(0, 5, nil)},
		{"ZeroHeight", FromSlice(5, 0, nil)},
		{"Zero", Stamp{}},
	}

	for _, table := range tables {
		table := table
		t.Run(table.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, 0, table.s.PixelCount())
			assert.False(t, table.s.InBounds(0, 0))

			px := table.s.Pixels()
			assert.Equal(t, 0, px.Len())
			_, ok := px.Next()
			assert.False(t, ok)
		})
	}
}

func TestPixels(t *testing.T) {
	t.Parallel()

	s := star()

	var white [][2]int
	px := s.Pixels()
	for k := 0; ; k++ {
		assert.Equal(t, s.PixelCount()-k, px.Len())
		p, ok := px.Next()
		if !ok {
			assert.Equal(t, s.PixelCount(), k)
			break
		}
		assert.Equal(t, k%12, p.X)
		assert.Equal(t, k/12, p.Y)
		assert.Equal(t, s.At(p.X, p.Y), p.Color)
		if p.Color == White {
			white = append(white, [2]int{p.X, p.Y})
		}
	}

	assert.Equal(t, starWhite, white)
}

func TestPixelsExhausted(t *testing.T) {
	t.Parallel()

	px := FromSlice(1, 1, []byte{0x80}).Pixels()

	p, ok := px.Next()
	assert.True(t, ok)
	assert.Equal(t, Pixel{X: 0, Y: 0, Color: White}, p)

	for i := 0; i < 3; i++ {
		_, ok = px.Next()
		assert.False(t, ok)
		assert.Equal(t, 0, px.Len())
	}
}

func TestTrailingBitsIgnored(t *testing.T) {
	t.Parallel()

	a := FromSlice(3, 3, []byte{0xaa, 0x80})
	b := FromSlice(3, 3, []byte{0xaa, 0xff})

	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			assert.Equal(t, a.At(x, y), b.At(x, y), "(%d, %d)", x, y)
		}
	}

	// 0xaa 0x80 is a checkerboard with White corners.
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			want := Black
			if (x+y)%2 == 0 {
				want = White
			}
			assert.Equal(t, want, a.At(x, y), "(%d, %d)", x, y)
		}
	}
}

func TestFromRawMatchesFromSlice(t *testing.T) {
	t.Parallel()

	a := FromRaw(12, 12, &starData[0])
	b := FromSlice(12, 12, starData[:])

	for y := 0; y < 12; y++ {
		for x := 0; x < 12; x++ {
			assert.Equal(t, b.At(x, y), a.At(x, y), "(%d, %d)", x, y)
		}
	}
}

func TestColor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Black", Black.String())
	assert.Equal(t, "White", White.String())
	assert.Equal(t, "White", fmt.Sprint(White))

	r, g, b, a := Black.RGBA()
	assert.Equal(t, [4]uint32{0, 0, 0, 0xffff}, [4]uint32{r, g, b, a})

	r, g, b, a = White.RGBA()
	assert.Equal(t, [4]uint32{0xffff, 0xffff, 0xffff, 0xffff}, [4]uint32{r, g, b, a})
}
