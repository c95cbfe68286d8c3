package header

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

type opener map[string]string

func (o opener) Open(name string) (io.ReadCloser, error) {
	s, ok := o[name]
	if !ok {
		return nil, errors.New("not found")
	}
	return io.NopCloser(strings.NewReader(s)), nil
}

func TestGetHeader(t *testing.T) {
	req := require.New(t)

	h, err := GetHeader(bytes.NewReader([]byte("%PDF-1.4 and more")), 8)
	req.NoError(err)
	req.Equal([]byte("%PDF-1.4"), h)

	h, err = GetHeader(strings.NewReader("abc"), 64)
	req.NoError(err)
	req.Equal([]byte("abc"), h)

	h, err = GetHeader(strings.NewReader(""), 64)
	req.NoError(err)
	req.Empty(h)

	_, err = GetHeader(failingReader{}, 64)
	req.Error(err)
}

func TestGetFileHeader(t *testing.T) {
	req := require.New(t)
	o := opener{"a.pdf": "%PDF-1.7\n"}

	h, err := GetFileHeader(o, "a.pdf", 5)
	req.NoError(err)
	req.Equal("%PDF-", string(h))

	_, err = GetFileHeader(o, "missing", 5)
	req.Error(err)
}

func TestSetLimit(t *testing.T) {
	req := require.New(t)
	t.Cleanup(func() { SetLimit(DefaultLimit) })

	req.Equal(DefaultLimit, Limit())
	SetLimit(512)
	req.Equal(uint32(512), Limit())
	SetLimit(0)
	req.Equal(DefaultLimit, Limit())
}
