/*
Package gen converts image files into Go source declaring packed stamps.

A Generator decodes an image, quantises it to black and white through one
of the rendering modes, packs the result and hands back an Asset, the
name, size and packed bytes of one stamp. File writes a set of assets out
as a generated Go source file, and Scan drives the whole thing over a
directory tree, emitting one file per directory of images.

Packed assets can be cached in a SQLite database keyed by source digest
and rendering options, so regenerating a large tree only pays for images
that changed.
*/
package gen

import (
	"bytes"
	"crypto/sha1"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log"
	"os"
	"path/filepath"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/woodcut/stamp/mono"
)

// Asset is one image rendered down to a packed stamp.
type Asset struct {
	// Name is the exported identifier the stamp is declared as.
	Name string
	// Source is the path the image was read from, as recorded in the
	// generated file.
	Source string
	// Width and Height are the stamp's dimensions in pixels.
	Width, Height int
	// Data is the packed pixel data, ceil(Width*Height/8) bytes.
	Data []byte
}

// Options control how images become assets.
type Options struct {
	// Package overrides the package name of emitted files. Empty derives
	// it from the directory holding the file.
	Package string
	// Name overrides the identifier derived from a source file name.
	Name string
	// Out is the file name Scan emits into each directory. Empty means
	// DefaultOut.
	Out string
	// Mode selects the quantisation mode.
	Mode Mode
	// ScaleW and ScaleH, when both positive, resize sources to that many
	// pixels before quantising.
	ScaleW, ScaleH int
}

// fingerprint keys a cache entry: any option that changes the packed
// bytes must contribute to it.
func (o Options) fingerprint() string {
	return fmt.Sprintf("%s/%dx%d", o.Mode, o.ScaleW, o.ScaleH)
}

// Generator renders image files into assets.
type Generator struct {
	cache  *Cache
	logger *log.Logger
}

// New returns a Generator. cache may be nil to render everything afresh,
// and logger may be nil to discard diagnostics.
func New(cache *Cache, logger *log.Logger) *Generator {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Generator{
		cache:  cache,
		logger: logger,
	}
}

// Generate renders the image at path into an asset. The identifier is
// taken from opts.Name, or derived from the file name with Ident.
func (g *Generator) Generate(path string, opts Options) (*Asset, error) {
	name := opts.Name
	if name == "" {
		var err error
		if name, err = Ident(filepath.Base(path)); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	sha := fmt.Sprintf("%X", sha1.Sum(b))

	if g.cache != nil {
		a, err := g.cache.Lookup(sha, opts.fingerprint())
		if err != nil {
			return nil, err
		}
		if a != nil {
			g.logger.Printf("%s: cached %dx%d stamp", path, a.Width, a.Height)
			a.Name, a.Source = name, path
			return a, nil
		}
	}

	m, format, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if m, err = render(m, opts); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	p := mono.Pack(m)
	g.logger.Printf("%s: packed %s into %dx%d stamp, %d bytes", path, format, p.W, p.H, len(p.Pix))

	a := &Asset{
		Name:   name,
		Source: path,
		Width:  p.W,
		Height: p.H,
		Data:   p.Pix,
	}

	if g.cache != nil {
		if err := g.cache.Store(sha, opts.fingerprint(), a); err != nil {
			return nil, err
		}
	}

	return a, nil
}
