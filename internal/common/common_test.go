package common

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTermIndex(t *testing.T) {
	require.Equal(t, 3, TermIndex([]byte("abc\x00de"), 6))
	require.Equal(t, 0, TermIndex([]byte{0, 'a'}, 2))
	// never reads past max
	require.Equal(t, 2, TermIndex([]byte("abc\x00"), 2))
	require.Equal(t, 4, TermIndex([]byte("abcd"), 10))
}

func TestCStrLen(t *testing.T) {
	require.Equal(t, 0, CStrLen(""))
	require.Equal(t, 5, CStrLen("hello"))
	require.Equal(t, 2, CStrLen("he\x00llo"))
}

func TestAliasing(t *testing.T) {
	b := []byte("shared")
	s := StringOf(b)
	require.Equal(t, "shared", s)
	require.Equal(t, "", StringOf(nil))
	require.Equal(t, []byte("xyz"), BytesOf("xyz"))
	require.Nil(t, BytesOf(""))
}

func TestBoundedWriter(t *testing.T) {
	dst := make([]byte, 4)
	w := &BoundedWriter{Dst: dst}
	n, err := fmt.Fprintf(w, "%s-%d", "abc", 42)
	require.NoError(t, err)
	require.Equal(t, 6, n)
	require.Equal(t, 6, w.N)
	require.Equal(t, 4, w.Stored())
	require.Equal(t, "abc-", string(dst))

	// zero room still counts
	w = &BoundedWriter{}
	n, err = fmt.Fprint(w, "ignored")
	require.NoError(t, err)
	require.Equal(t, 7, n)
	require.Equal(t, 0, w.Stored())
}
