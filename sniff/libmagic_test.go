//go:build libmagic

package sniff

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLibmagicRegistered(t *testing.T) {
	require.Contains(t, Backends(), Libmagic)

	s, err := New(Libmagic)
	require.NoError(t, err)
	require.NotNil(t, s)
}

func TestLibmagicHandle(t *testing.T) {
	req := require.New(t)

	h, err := NewLibmagic().Open()
	req.NoError(err)

	_, err = h.Buffer([]byte("%PDF-1.4"))
	req.ErrorIs(err, ErrNotLoaded)
	_, err = h.File("/dev/null")
	req.ErrorIs(err, ErrNotLoaded)

	req.NoError(h.Load())

	mt, err := h.Buffer([]byte("%PDF-1.4\n%âãÏÓ\n"))
	req.NoError(err)
	req.Equal("application/pdf", mt)

	mt, err = h.Buffer(pngSignature)
	req.NoError(err)
	req.Equal("image/png", mt)

	mt, err = h.Buffer([]byte("just some words\n"))
	req.NoError(err)
	req.Equal("text/plain", mt)
	req.False(strings.Contains(mt, ";"), "no parameters in %q", mt)

	mt, err = h.Buffer([]byte{})
	req.NoError(err)
	req.Equal("application/x-empty", mt)

	mt, err = h.Buffer(nil)
	req.NoError(err)
	req.Equal("application/x-empty", mt)

	req.NoError(h.Close())
	_, err = h.Buffer([]byte("%PDF-1.4"))
	req.ErrorIs(err, ErrClosed)
	_, err = h.Buffer(nil)
	req.ErrorIs(err, ErrClosed)
	req.ErrorIs(h.Load(), ErrClosed)
	req.NoError(h.Close())
}

func TestLibmagicHandle_File(t *testing.T) {
	req := require.New(t)
	dir := t.TempDir()

	pdf := filepath.Join(dir, "doc.bin")
	req.NoError(os.WriteFile(pdf, []byte("%PDF-1.4\n1 0 obj\n"), 0644))
	png := filepath.Join(dir, "image")
	req.NoError(os.WriteFile(png, pngSignature, 0644))
	empty := filepath.Join(dir, "empty")
	req.NoError(os.WriteFile(empty, nil, 0644))

	h, err := NewLibmagic().Open()
	req.NoError(err)
	defer h.Close()
	req.NoError(h.Load())

	mt, err := h.File(pdf)
	req.NoError(err)
	req.Equal("application/pdf", mt)

	mt, err = h.File(png)
	req.NoError(err)
	req.Equal("image/png", mt)

	// Depending on the libmagic release an empty file is reported as an
	// empty inode or as empty content.
	mt, err = h.File(empty)
	req.NoError(err)
	req.Contains([]string{"application/x-empty", "inode/x-empty"}, mt)

	_, err = h.File(filepath.Join(dir, "gone"))
	req.Error(err)
}
