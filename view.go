// Package strbuf provides bounded, NUL-terminated string buffers.
//
// A View borrows a caller-owned byte region; a Fixed owns an embedded array.
// No operation writes outside the region and every mutation leaves a NUL
// terminator inside it. Overflow truncates and is reported through a bool or
// a would-be length instead of an error.
//
// Fixed capacities are limited to the array sizes in Storage. A View over a
// caller-allocated slice serves any other capacity, including ones only known
// at run time.
package strbuf

import (
	"errors"
	"fmt"

	"github.com/rawbytedev/strbuf/internal/common"
)

var ErrTruncated = errors.New("strbuf: value truncated")

// View is a non-owning handle over a byte region. The last byte of the
// region is reserved for the terminator, so Cap is len(region)-1.
//
// Source strings have C semantics: they end at their first NUL byte.
type View struct {
	b []byte
}

// NewView wraps b. It panics if b is empty, since there is no room for the
// terminator. The current contents of b are not touched.
func NewView(b []byte) View {
	if len(b) == 0 {
		panic("strbuf: view over empty region")
	}
	return View{b: b}
}

func (v View) Cap() int { return len(v.b) - 1 }

// Len is the number of bytes before the terminator. At most Cap bytes are
// scanned.
func (v View) Len() int { return common.TermIndex(v.b, len(v.b)-1) }

func (v View) IsEmpty() bool { return v.b[0] == 0 }

func (v View) Clear() { v.b[0] = 0 }

// Printf formats into the view from offset 0. It returns the length the
// output would have had without truncation; a result greater than Cap means
// the stored text was cut.
func (v View) Printf(format string, args ...any) int {
	return v.printAt(0, format, args...)
}

// Catf formats onto the end of the current contents and returns the would-be
// length of the appended text. On a full view only the terminator is
// rewritten.
func (v View) Catf(format string, args ...any) int {
	return v.printAt(v.Len(), format, args...)
}

func (v View) printAt(off int, format string, args ...any) int {
	c := v.Cap()
	if off > c {
		off = c
	}
	w := common.BoundedWriter{Dst: v.b[off:c]}
	fmt.Fprintf(&w, format, args...)
	v.b[off+w.Stored()] = 0
	return w.N
}

// Copy replaces the contents with src. It reports true if src is longer than
// Cap; a source of exactly Cap bytes fits.
func (v View) Copy(src string) bool {
	n := common.CStrLen(src)
	c := v.Cap()
	truncated := n > c
	if truncated {
		n = c
	}
	copy(v.b, src[:n])
	v.b[n] = 0
	return truncated
}

// Cat appends src and reports true if it did not fit in the remaining room.
func (v View) Cat(src string) bool {
	l := v.Len()
	n := common.CStrLen(src)
	room := v.Cap() - l
	truncated := n > room
	if truncated {
		n = room
	}
	copy(v.b[l:], src[:n])
	v.b[l+n] = 0
	return truncated
}

// CatByte appends c. If the view is full it is left unchanged and true is
// returned.
func (v View) CatByte(c byte) bool {
	l := v.Len()
	if l >= v.Cap() {
		return true
	}
	v.b[l] = c
	v.b[l+1] = 0
	return false
}

// Prepend inserts src before the current contents. When the result does not
// fit, bytes are dropped from the end of the old contents first, then from
// the end of src.
func (v View) Prepend(src string) bool {
	n := common.CStrLen(src)
	l := v.Len()
	c := v.Cap()
	truncated := n+l > c
	if n > c {
		n = c
	}
	keep := min(l, c-n)
	copy(v.b[n:n+keep], v.b[:keep])
	copy(v.b, src[:n])
	v.b[n+keep] = 0
	return truncated
}

// StripTrailingSpaces removes trailing ' ' bytes and returns the new length.
func (v View) StripTrailingSpaces() int {
	l := v.Len()
	for l > 0 && v.b[l-1] == ' ' {
		l--
	}
	v.b[l] = 0
	return l
}

// Scanf parses the current contents with fmt.Sscanf.
func (v View) Scanf(format string, args ...any) (int, error) {
	return fmt.Sscanf(v.UnsafeString(), format, args...)
}

// Write appends p. Unlike Cat it honours the io.Writer contract: a short
// write returns ErrTruncated. A NUL in p ends the write there, since the
// bytes after it could never be read back.
func (v View) Write(p []byte) (int, error) {
	l := v.Len()
	n := min(common.TermIndex(p, len(p)), v.Cap()-l)
	copy(v.b[l:], p[:n])
	v.b[l+n] = 0
	if n < len(p) {
		return n, ErrTruncated
	}
	return n, nil
}

func (v View) WriteString(s string) (int, error) {
	return v.Write(common.BytesOf(s))
}

func (v View) String() string { return string(v.Bytes()) }

// UnsafeString aliases the contents without copying. The result changes
// under the caller if the view is mutated.
func (v View) UnsafeString() string { return common.StringOf(v.Bytes()) }

// Bytes returns the contents, aliasing the region.
func (v View) Bytes() []byte { return v.b[:v.Len()] }

// Raw exposes the whole region including the terminator slot. Callers
// writing through it are responsible for leaving a terminator behind.
func (v View) Raw() []byte { return v.b }

func (v View) At(i int) byte { return v.b[i] }

// SetAt stores c at offset i. Writes to the reserved terminator slot are
// ignored. Overwriting the current terminator with a non-NUL byte extends the
// contents by one and terminates them after c.
func (v View) SetAt(i int, c byte) {
	if i == v.Cap() {
		return
	}
	l := v.Len()
	v.b[i] = c
	if i == l && c != 0 {
		v.b[i+1] = 0
	}
}
