// Package source gives the classifier read access to files that do not live
// on the local filesystem.
package source

import (
	"io"
	"os"
	"path/filepath"
)

type Source interface {
	Stat(name string) (os.FileInfo, error)
	Open(name string) (io.ReadCloser, error)
}

// Walker is implemented by sources that can list a tree.
type Walker interface {
	Walk(root string, fn filepath.WalkFunc) error
}
