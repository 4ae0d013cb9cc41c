package gen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"go/token"
	"io"
	"path/filepath"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultOut is the file name Scan emits into each directory of images.
const DefaultOut = "stamps.go"

const header = "// Code generated by stampgen. DO NOT EDIT."

// stampPackage is the import path of the runtime package generated files
// depend on.
const stampPackage = "github.com/woodcut/stamp"

var errNoAssets = errors.New("gen: no assets")

// File writes assets out as one generated Go source file: per asset an
// exported Stamp declaration over an unexported packed byte array. Assets
// are emitted in name order whatever order they arrive in, so the output
// is reproducible, and duplicate names are rejected. The source is run
// through the standard formatter before it is written.
func File(w io.Writer, pkg string, assets []*Asset) error {
	if len(assets) == 0 {
		return errNoAssets
	}

	byName := make([]*Asset, len(assets))
	copy(byName, assets)
	sort.Slice(byName, func(i, j int) bool { return byName[i].Name < byName[j].Name })

	seen := make(map[string]string, len(byName))
	for _, a := range byName {
		if a.Name == "" {
			return fmt.Errorf("gen: no identifier for %s", a.Source)
		}
		if prev, ok := seen[a.Name]; ok {
			return fmt.Errorf("gen: %s and %s both map to %s", prev, a.Source, a.Name)
		}
		seen[a.Name] = a.Source
	}

	b := new(bytes.Buffer)

	fmt.Fprintf(b, "%s\n\npackage %s\n\nimport %q\n", header, pkg, stampPackage)

	for _, a := range byName {
		fmt.Fprintf(b, "\n// %s is the %dx%d stamp packed from %s.\n", a.Name, a.Width, a.Height, a.Source)
		if len(a.Data) == 0 {
			fmt.Fprintf(b, "var %s = stamp.FromRaw(%d, %d, nil)\n", a.Name, a.Width, a.Height)
			continue
		}

		data := dataIdent(a.Name)
		fmt.Fprintf(b, "var %s = stamp.FromRaw(%d, %d, &%s[0])\n\n", a.Name, a.Width, a.Height, data)
		fmt.Fprintf(b, "var %s = [%d]byte{\n", data, len(a.Data))
		writeBytes(b, a.Data)
		fmt.Fprintln(b, "}")
	}

	src, err := format.Source(b.Bytes())
	if err != nil {
		return fmt.Errorf("gen: format: %w", err)
	}

	_, err = w.Write(src)
	return err
}

// bytesPerLine keeps the packed arrays diffable rather than one giant
// line per image.
const bytesPerLine = 12

func writeBytes(w io.Writer, data []byte) {
	for i, b := range data {
		switch {
		case i%bytesPerLine == 0:
			fmt.Fprintf(w, "\t0x%02x,", b)
		default:
			fmt.Fprintf(w, " 0x%02x,", b)
		}
		if i%bytesPerLine == bytesPerLine-1 || i == len(data)-1 {
			fmt.Fprintln(w)
		}
	}
}

// Ident derives the exported Go identifier a source file name declares:
// "star.png" becomes Star, "my-icon 2.png" becomes MyIcon2. Characters
// that cannot appear in an identifier separate words, and a leading digit
// gains a "Stamp" prefix.
func Ident(name string) (string, error) {
	base := strings.TrimSuffix(name, filepath.Ext(name))

	var b strings.Builder
	upper := true
	for _, r := range base {
		switch {
		case unicode.IsLetter(r):
			if upper {
				r = unicode.ToUpper(r)
			}
			b.WriteRune(r)
			upper = false
		case unicode.IsDigit(r):
			b.WriteRune(r)
			upper = true
		default:
			upper = true
		}
	}

	s := b.String()
	if s == "" {
		return "", fmt.Errorf("gen: no identifier in %q", name)
	}
	if r, _ := utf8.DecodeRuneInString(s); unicode.IsDigit(r) {
		s = "Stamp" + s
	}

	return s, nil
}

// PackageName derives a Go package name from a directory name.
func PackageName(dir string) (string, error) {
	var b strings.Builder
	for _, r := range strings.ToLower(dir) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}

	s := b.String()
	if s == "" {
		return "", fmt.Errorf("gen: no package name in %q", dir)
	}
	if r, _ := utf8.DecodeRuneInString(s); unicode.IsDigit(r) {
		s = "stamps" + s
	}
	if token.IsKeyword(s) {
		return "", fmt.Errorf("gen: package name %q is a Go keyword", s)
	}

	return s, nil
}

// dataIdent names the packed array backing an exported stamp.
func dataIdent(name string) string {
	r := []rune(name)
	return string(unicode.ToLower(r[0])) + string(r[1:]) + "Data"
}
