package classify

import (
	"fmt"
	"os"

	"contenttype/source"
)

type Kind int

const (
	PathRequest Kind = iota
	BufferRequest
)

func (k Kind) String() string {
	if k == BufferRequest {
		return "buffer"
	}
	return "path"
}

// Request names either a path or a byte buffer, never both.
type Request struct {
	kind   Kind
	path   string
	data   []byte
	source source.Source
}

// NewPathRequest checks that path exists on the local filesystem. The check
// happens once; a file removed afterwards fails later at the file stage.
func NewPathRequest(path string) (*Request, error) {
	return NewSourceRequest(nil, path)
}

// NewSourceRequest is NewPathRequest against src. A nil src is the local
// filesystem.
func NewSourceRequest(src source.Source, path string) (*Request, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidPath)
	}

	var err error
	if src == nil {
		_, err = os.Stat(path)
	} else {
		_, err = src.Stat(path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidPath, path, err)
	}

	return &Request{kind: PathRequest, path: path, source: src}, nil
}

func NewBufferRequest(data []byte) *Request {
	return &Request{kind: BufferRequest, data: data}
}
