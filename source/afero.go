package source

import (
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

type Afero struct {
	fs afero.Fs
}

func NewAfero(fs afero.Fs) *Afero {
	return &Afero{fs: fs}
}

func (a *Afero) Stat(name string) (os.FileInfo, error) {
	return a.fs.Stat(name)
}

func (a *Afero) Open(name string) (io.ReadCloser, error) {
	return a.fs.Open(name)
}

func (a *Afero) Walk(root string, fn filepath.WalkFunc) error {
	return afero.Walk(a.fs, root, fn)
}
