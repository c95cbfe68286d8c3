// Package randomfiles writes trees of sample files whose content type is
// known in advance, for exercising and benchmarking classification.
package randomfiles

import (
	crand "crypto/rand"
	"io"
	"math/rand"
	"path"
)

type Options struct {
	// FileSize is the number of random bytes written after each signature.
	FileSize int32
	Depth    int32
	Files    int32
	Width    int32

	// OnFile is called for every file written.
	OnFile func(name string, kind Kind)
}

var FilenameSize = 16
var alphabet = []rune("abcdefghijklmnopqrstuvwxyz0123456789-_")

// WriteRandomFiles writes opts.Files files into root and, while depth is
// below opts.Depth, opts.Width random subdirectories filled the same way.
func WriteRandomFiles(fsys FS, root string, depth int32, opts *Options) error {
	for i := int32(0); i < opts.Files; i++ {
		if e := WriteRandomFile(fsys, root, opts); e != nil {
			return e
		}
	}

	if depth+1 <= opts.Depth {
		for i := int32(0); i < opts.Width; i++ {
			if e := WriteRandomDir(fsys, root, depth+1, opts); e != nil {
				return e
			}
		}
	}

	return nil
}

func WriteRandomFile(fsys FS, root string, opts *Options) error {
	kind := Kinds[rand.Intn(len(Kinds))]
	n := rand.Intn(FilenameSize-4) + 4
	name := RandomFilename(n)
	if kind.Ext != "" {
		name += "." + kind.Ext
	}
	filepath := path.Join(root, name)

	f, e := fsys.Create(filepath)
	if e != nil {
		return e
	}
	if e := kind.write(f, int64(opts.FileSize)); e != nil {
		f.Close()
		return e
	}
	if e := f.Close(); e != nil {
		return e
	}
	if opts.OnFile != nil {
		opts.OnFile(filepath, kind)
	}
	return nil
}

func RandomFilename(length int) string {
	b := make([]rune, length)
	for i := range b {
		b[i] = alphabet[rand.Intn(len(alphabet))]
	}
	return string(b)
}

func WriteRandomDir(fsys FS, root string, depth int32, opts *Options) error {
	if depth > opts.Depth {
		return nil
	}
	n := rand.Intn(FilenameSize-4) + 4
	name := RandomFilename(n)
	root = path.Join(root, name)
	if e := fsys.MkdirAll(root, 0755); e != nil {
		return e
	}

	return WriteRandomFiles(fsys, root, depth, opts)
}

func randomBytes(w io.Writer, size int64) error {
	_, err := io.CopyN(w, crand.Reader, size)
	return err
}
