package common

import (
	"strings"
	"unsafe"
)

// TermIndex returns the offset of the first NUL in b, scanning at most limit
// bytes. If none is found it returns limit (clamped to len(b)).
func TermIndex(b []byte, limit int) int {
	if limit > len(b) {
		limit = len(b)
	}
	for i := 0; i < limit; i++ {
		if b[i] == 0 {
			return i
		}
	}
	return limit
}

// CStrLen is the length of s up to, not including, its first NUL byte.
func CStrLen(s string) int {
	if i := strings.IndexByte(s, 0); i >= 0 {
		return i
	}
	return len(s)
}

// StringOf aliases b as a string without copying.
// b must not be modified while the string is in use.
func StringOf(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// BytesOf aliases s as a read-only byte slice without copying.
func BytesOf(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// BoundedWriter stores at most len(Dst) bytes and counts every byte offered
// to it, so N is the length the output would have had without the bound.
// It never reports a short write, which keeps fmt.Fprintf counting.
type BoundedWriter struct {
	Dst []byte
	N   int
}

func (w *BoundedWriter) Write(p []byte) (int, error) {
	if w.N < len(w.Dst) {
		copy(w.Dst[w.N:], p)
	}
	w.N += len(p)
	return len(p), nil
}

// Stored is the number of bytes actually written into Dst.
func (w *BoundedWriter) Stored() int {
	return min(w.N, len(w.Dst))
}
