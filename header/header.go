// Package header reads the leading bytes of a file, which is all the
// signature engines look at.
package header

import (
	"io"
	"sync/atomic"
)

const DefaultLimit uint32 = 3072

var readLimit atomic.Uint32

func init() {
	readLimit.Store(DefaultLimit)
}

// Limit returns the number of bytes read for sniffing.
func Limit() uint32 {
	return readLimit.Load()
}

// SetLimit changes the read limit. Zero restores the default.
func SetLimit(l uint32) {
	if l == 0 {
		l = DefaultLimit
	}
	readLimit.Store(l)
}

type Opener interface {
	Open(name string) (io.ReadCloser, error)
}

func GetFileHeader(o Opener, file string, l uint32) ([]byte, error) {
	f, err := o.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return GetHeader(f, l)
}

// GetHeader reads up to l bytes. A short input is not an error.
func GetHeader(r io.Reader, l uint32) (in []byte, err error) {
	var n int
	in = make([]byte, l)

	n, err = io.ReadFull(r, in)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, err
	}
	in = in[:n]
	return in, nil
}
