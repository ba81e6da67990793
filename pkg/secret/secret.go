// Package secret keeps short secrets (PINs, access tokens) in bounded
// buffers allocated outside the Go heap. The memory is mlocked, guarded by
// canary pages and wiped on Destroy, via memguard.
//
// A Secret offers the same copy-and-pad and constant-time comparison as
// strbuf.Fixed, for cases where the capacity is only known at run time.
package secret

import (
	"errors"

	"github.com/awnumar/memguard"

	"github.com/rawbytedev/strbuf"
	"github.com/rawbytedev/strbuf/internal/common"
)

var ErrInvalidCapacity = errors.New("secret: capacity must be at least 1")

type Secret struct {
	buf *memguard.LockedBuffer
}

// New allocates a secret with room for capacity bytes plus the terminator.
func New(capacity int) (*Secret, error) {
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	buf := memguard.NewBuffer(capacity + 1)
	buf.Melt()
	return &Secret{buf: buf}, nil
}

func (s *Secret) alive() bool { return s.buf != nil && s.buf.IsAlive() }

// Cap is zero once the secret is destroyed.
func (s *Secret) Cap() int {
	if !s.alive() {
		return 0
	}
	return s.buf.Size() - 1
}

// View returns a view over the locked region. After Destroy it returns an
// empty, detached view.
func (s *Secret) View() strbuf.View {
	if !s.alive() {
		return strbuf.NewView(make([]byte, 1))
	}
	return strbuf.NewView(s.buf.Bytes())
}

// CopyAndPad wipes the region and copies src in, truncated to Cap. It
// reports truncation the way strbuf.View.Copy does.
func (s *Secret) CopyAndPad(src string) bool {
	if !s.alive() {
		return common.CStrLen(src) > 0
	}
	s.buf.Wipe()
	return s.View().Copy(src)
}

// ConstantTimeEqual compares the full regions of two padded secrets. Secrets
// of different capacity, or destroyed ones, are never equal.
func (s *Secret) ConstantTimeEqual(other *Secret) bool {
	if !s.alive() || other == nil || !other.alive() {
		return false
	}
	return s.buf.EqualTo(other.buf.Bytes())
}

// Destroy wipes and releases the region. It is safe to call more than once.
func (s *Secret) Destroy() {
	if s.buf != nil {
		s.buf.Destroy()
	}
}

// String never reveals the contents, so a Secret can be logged safely.
func (s *Secret) String() string { return "[redacted]" }
