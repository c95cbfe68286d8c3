package randomfiles

import (
	"io"
	"os"

	"github.com/colinmarc/hdfs/v2"
	"github.com/spf13/afero"
)

// FS is where fixture trees are written.
type FS interface {
	MkdirAll(path string, perm os.FileMode) error
	Create(name string) (io.WriteCloser, error)
}

type aferoFS struct {
	fs afero.Fs
}

func Afero(fs afero.Fs) FS {
	return aferoFS{fs: fs}
}

func (a aferoFS) MkdirAll(path string, perm os.FileMode) error {
	return a.fs.MkdirAll(path, perm)
}

func (a aferoFS) Create(name string) (io.WriteCloser, error) {
	return a.fs.Create(name)
}

type hdfsFS struct {
	client *hdfs.Client
}

func HDFS(client *hdfs.Client) FS {
	return hdfsFS{client: client}
}

func (h hdfsFS) MkdirAll(path string, perm os.FileMode) error {
	return h.client.MkdirAll(path, perm)
}

func (h hdfsFS) Create(name string) (io.WriteCloser, error) {
	return h.client.Create(name)
}
