//go:build libmagic

// This requires libmagic and its headers, so the engine is only compiled
// with -tags libmagic.
package sniff

import (
	"github.com/rakyll/magicmime"
)

const Libmagic = "libmagic"

const libmagicFlags = magicmime.MAGIC_SYMLINK | magicmime.MAGIC_MIME_TYPE | magicmime.MAGIC_PRESERVE_ATIME | magicmime.MAGIC_ERROR

// libmagic's answer for a zero-length input. magicmime cannot be handed an
// empty buffer.
const emptyType = "application/x-empty"

// magicmime's error when magic_open returns no cookie.
const errOpeningMagic = "error opening magic"

func init() {
	Register(Libmagic, NewLibmagic)
}

type libmagicSniffer struct{}

// NewLibmagic returns an engine backed by the system magic database.
func NewLibmagic() Sniffer {
	return libmagicSniffer{}
}

// Open creates the cookie and loads the database in the same call, as
// magicmime only exposes both together. A magic_open failure is returned
// here; any later failure is kept for Load.
func (libmagicSniffer) Open() (Handle, error) {
	d, err := magicmime.NewDecoder(libmagicFlags)
	if err != nil && err.Error() == errOpeningMagic {
		return nil, err
	}
	return &libmagicHandle{decoder: d, loadErr: err}, nil
}

type libmagicHandle struct {
	decoder *magicmime.Decoder
	loadErr error
	loaded  bool
	closed  bool
}

func (h *libmagicHandle) Load() error {
	if h.closed {
		return ErrClosed
	}
	if h.loadErr != nil {
		return h.loadErr
	}
	h.loaded = true
	return nil
}

func (h *libmagicHandle) ready() error {
	if h.closed {
		return ErrClosed
	}
	if !h.loaded {
		return ErrNotLoaded
	}
	return nil
}

func (h *libmagicHandle) File(path string) (string, error) {
	if err := h.ready(); err != nil {
		return "", err
	}
	mt, err := h.decoder.TypeByFile(path)
	if err != nil {
		return "", err
	}
	return MediaType(mt), nil
}

func (h *libmagicHandle) Buffer(data []byte) (string, error) {
	if err := h.ready(); err != nil {
		return "", err
	}
	if len(data) == 0 {
		return emptyType, nil
	}
	mt, err := h.decoder.TypeByBuffer(data)
	if err != nil {
		return "", err
	}
	return MediaType(mt), nil
}

func (h *libmagicHandle) Close() error {
	if h.decoder != nil && !h.closed {
		h.decoder.Close()
	}
	h.closed = true
	return nil
}
