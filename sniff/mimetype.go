package sniff

import (
	"errors"
	"os"

	"contenttype/header"

	"github.com/gabriel-vasile/mimetype"
)

const Mimetype = "mimetype"

func init() {
	Register(Mimetype, NewMimetype)
}

type mimetypeSniffer struct{}

// NewMimetype returns the pure Go engine. Its signature tree is compiled
// into the binary, so loading only checks that the tree answers.
func NewMimetype() Sniffer {
	return mimetypeSniffer{}
}

func (mimetypeSniffer) Open() (Handle, error) {
	return &mimetypeHandle{}, nil
}

type mimetypeHandle struct {
	loaded bool
	closed bool
}

func (h *mimetypeHandle) Load() error {
	if h.closed {
		return ErrClosed
	}
	if mimetype.Lookup("application/octet-stream") == nil {
		return errors.New("mimetype signature tree is empty")
	}
	mimetype.SetLimit(header.Limit())
	h.loaded = true
	return nil
}

func (h *mimetypeHandle) ready() error {
	if h.closed {
		return ErrClosed
	}
	if !h.loaded {
		return ErrNotLoaded
	}
	return nil
}

func (h *mimetypeHandle) File(path string) (string, error) {
	if err := h.ready(); err != nil {
		return "", err
	}
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	in, err := header.GetHeader(f, header.Limit())
	if err != nil {
		return "", err
	}
	return MediaType(mimetype.Detect(in).String()), nil
}

func (h *mimetypeHandle) Buffer(data []byte) (string, error) {
	if err := h.ready(); err != nil {
		return "", err
	}
	if l := int(header.Limit()); len(data) > l {
		data = data[:l]
	}
	return MediaType(mimetype.Detect(data).String()), nil
}

func (h *mimetypeHandle) Close() error {
	h.closed = true
	return nil
}
