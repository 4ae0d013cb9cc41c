//go:build !progmem

package progmem

import "unsafe"

// Bytes is a handle to an immutable byte array. In the default build it
// retains the array as a slice so that every fetch is bounds checked.
type Bytes struct {
	data []byte
}

// FromRaw returns a handle to the n bytes starting at p. A nil p is only
// valid with n == 0 and yields a handle that must never be fetched from.
func FromRaw(p *byte, n int) Bytes {
	if p == nil {
		return Bytes{}
	}
	return Bytes{data: unsafe.Slice(p, n)}
}

// FromSlice returns a handle covering b.
func FromSlice(b []byte) Bytes {
	return Bytes{data: b}
}

// Fetch reads the byte at offset i.
func (b Bytes) Fetch(i int) byte {
	return b.data[i]
}
