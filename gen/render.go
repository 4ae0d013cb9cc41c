package gen

import (
	"fmt"
	"image"
	"image/color"

	"github.com/ericpauley/go-quantize/quantize"
	"github.com/makeworld-the-better-one/dither/v2"
	"golang.org/x/image/draw"

	"github.com/woodcut/stamp"
	"github.com/woodcut/stamp/mono"
)

// Mode selects how source colours collapse to black and white.
type Mode int

const (
	// ModeThreshold cuts each pixel at the packing threshold. Best for
	// sources that are already two-colour, icons and pixel art.
	ModeThreshold Mode = iota
	// ModeDither spreads the threshold error with serpentine
	// Floyd-Steinberg diffusion. Best for photographs and gradients.
	ModeDither
	// ModeAuto splits the image at the median cut between its two
	// dominant colours, the darker becoming Black. Best for two-colour
	// sources that are not black and white.
	ModeAuto
)

func (m Mode) String() string {
	switch m {
	case ModeThreshold:
		return "threshold"
	case ModeDither:
		return "dither"
	case ModeAuto:
		return "auto"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode maps a mode flag value to a Mode. The empty string is
// ModeThreshold.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "threshold":
		return ModeThreshold, nil
	case "dither":
		return ModeDither, nil
	case "auto":
		return ModeAuto, nil
	}
	return 0, fmt.Errorf("unknown mode %q", s)
}

// render applies the optional scale pass and the quantisation mode. The
// returned image packs losslessly, every pixel already one of the two
// stamp colours or a colour the packing threshold maps like one.
func render(m image.Image, opts Options) (image.Image, error) {
	if opts.ScaleW > 0 && opts.ScaleH > 0 {
		m = scale(m, opts.ScaleW, opts.ScaleH)
	}

	switch opts.Mode {
	case ModeThreshold:
		return m, nil
	case ModeDither:
		return ditherMono(m), nil
	case ModeAuto:
		return autoMono(m), nil
	}

	return nil, fmt.Errorf("unknown mode %v", opts.Mode)
}

// scale resizes m with Catmull-Rom interpolation, drawing onto a
// straight-alpha image so translucency survives for the threshold.
func scale(m image.Image, w, h int) image.Image {
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), m, m.Bounds(), draw.Over, nil)
	return dst
}

func ditherMono(m image.Image) image.Image {
	d := dither.NewDitherer(mono.Palette)
	d.Matrix = dither.FloydSteinberg
	d.Serpentine = true
	return d.DitherPaletted(m)
}

func autoMono(m image.Image) image.Image {
	q := quantize.MedianCutQuantizer{}
	pal := q.Quantize(make(color.Palette, 0, 2), m)

	bw := make(color.Palette, len(pal))
	switch len(pal) {
	case 1:
		// A flat image has nothing to split, fall back to the threshold.
		bw[0] = mono.Model.Convert(pal[0])
	case 2:
		if lum(pal[0]) <= lum(pal[1]) {
			bw[0], bw[1] = stamp.Black, stamp.White
		} else {
			bw[0], bw[1] = stamp.White, stamp.Black
		}
	}

	r := m.Bounds()
	dst := image.NewPaletted(r, bw)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			dst.SetColorIndex(x, y, uint8(pal.Index(m.At(x, y))))
		}
	}
	return dst
}

func lum(c color.Color) uint32 {
	r, g, b, _ := c.RGBA()
	return r + g + b
}
