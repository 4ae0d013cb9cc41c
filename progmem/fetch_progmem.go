//go:build progmem

package progmem

import "unsafe"

// Bytes is a handle to an immutable byte array. Under the progmem build tag
// it retains only the base pointer, two bytes of RAM on AVR, and trusts the
// caller to stay within the array.
type Bytes struct {
	base *byte
}

// FromRaw returns a handle to the n bytes starting at p. The length is not
// retained; it is the caller's bound to honour.
func FromRaw(p *byte, n int) Bytes {
	return Bytes{base: p}
}

// FromSlice returns a handle covering b.
func FromSlice(b []byte) Bytes {
	if len(b) == 0 {
		return Bytes{}
	}
	return Bytes{base: &b[0]}
}

// Fetch reads the byte at offset i.
func (b Bytes) Fetch(i int) byte {
	return *(*byte)(unsafe.Add(unsafe.Pointer(b.base), i))
}
