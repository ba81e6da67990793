package strbuf

import (
	"crypto/subtle"
	"fmt"
	"unsafe"

	"gopkg.in/yaml.v3"
)

// Storage is the set of backing arrays a Fixed can embed. Each is [N+1]byte
// for a capacity of N. Only the sizes listed here are accepted; for any other
// capacity wrap a make([]byte, N+1) with NewView, or use secret.New when the
// value is sensitive.
type Storage interface {
	~[2]byte | ~[5]byte | ~[8]byte | ~[9]byte | ~[16]byte | ~[17]byte |
		~[32]byte | ~[33]byte | ~[41]byte | ~[48]byte | ~[51]byte |
		~[64]byte | ~[65]byte | ~[101]byte | ~[128]byte | ~[129]byte |
		~[201]byte | ~[256]byte | ~[257]byte | ~[512]byte | ~[513]byte |
		~[1024]byte | ~[1025]byte
}

// Fixed is a string of at most len(T)-1 bytes stored inline. The zero value
// is the empty string.
type Fixed[T Storage] struct {
	storage T
}

// Common capacities.
type (
	String8   = Fixed[[9]byte]
	String16  = Fixed[[17]byte]
	String32  = Fixed[[33]byte]
	String64  = Fixed[[65]byte]
	String128 = Fixed[[129]byte]
	String256 = Fixed[[257]byte]
)

// View returns a View aliasing f's storage.
func (f *Fixed[T]) View() View {
	return View{b: unsafe.Slice((*byte)(unsafe.Pointer(&f.storage)), len(f.storage))}
}

func (f *Fixed[T]) Cap() int      { return len(f.storage) - 1 }
func (f *Fixed[T]) Len() int      { return f.View().Len() }
func (f *Fixed[T]) IsEmpty() bool { return f.View().IsEmpty() }
func (f *Fixed[T]) Clear()        { f.View().Clear() }

func (f *Fixed[T]) Printf(format string, args ...any) int {
	return f.View().Printf(format, args...)
}

func (f *Fixed[T]) Catf(format string, args ...any) int {
	return f.View().Catf(format, args...)
}

func (f *Fixed[T]) Copy(src string) bool     { return f.View().Copy(src) }
func (f *Fixed[T]) Cat(src string) bool      { return f.View().Cat(src) }
func (f *Fixed[T]) CatByte(c byte) bool      { return f.View().CatByte(c) }
func (f *Fixed[T]) Prepend(src string) bool  { return f.View().Prepend(src) }
func (f *Fixed[T]) StripTrailingSpaces() int { return f.View().StripTrailingSpaces() }

func (f *Fixed[T]) Scanf(format string, args ...any) (int, error) {
	return f.View().Scanf(format, args...)
}

func (f *Fixed[T]) String() string       { return f.View().String() }
func (f *Fixed[T]) UnsafeString() string { return f.View().UnsafeString() }
func (f *Fixed[T]) Bytes() []byte        { return f.View().Bytes() }
func (f *Fixed[T]) At(i int) byte        { return f.View().At(i) }
func (f *Fixed[T]) SetAt(i int, c byte)  { f.View().SetAt(i, c) }

// CopyAndPad zeroes the whole storage before copying src, so that no bytes
// of a previous longer value survive past the terminator. Values compared
// with ConstantTimeEqual must be set this way.
func (f *Fixed[T]) CopyAndPad(src string) bool {
	var zero T
	f.storage = zero
	return f.Copy(src)
}

// ConstantTimeEqual compares all Cap bytes of f and other without stopping
// at the terminator or at the first difference. Both must have been filled
// with CopyAndPad; stale bytes after the terminator are compared too.
func (f *Fixed[T]) ConstantTimeEqual(other *Fixed[T]) bool {
	n := f.Cap()
	return subtle.ConstantTimeCompare(f.View().b[:n], other.View().b[:n]) == 1
}

// MarshalYAML encodes f as a plain string.
func (f Fixed[T]) MarshalYAML() (any, error) {
	return f.String(), nil
}

// UnmarshalYAML pads and copies a scalar into f. An oversized scalar is
// stored truncated and reported with ErrTruncated.
func (f *Fixed[T]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("strbuf: line %d: expected a string scalar", node.Line)
	}
	if f.CopyAndPad(node.Value) {
		return fmt.Errorf("strbuf: line %d: %d bytes into capacity %d: %w",
			node.Line, len(node.Value), f.Cap(), ErrTruncated)
	}
	return nil
}
