package source

import (
	"io"
	"os"
	"path/filepath"

	"github.com/colinmarc/hdfs/v2"
)

type HDFS struct {
	client *hdfs.Client
}

func NewHDFS(client *hdfs.Client) *HDFS {
	return &HDFS{client: client}
}

func (h *HDFS) Stat(name string) (os.FileInfo, error) {
	return h.client.Stat(name)
}

func (h *HDFS) Open(name string) (io.ReadCloser, error) {
	return h.client.Open(name)
}

func (h *HDFS) Walk(root string, fn filepath.WalkFunc) error {
	return h.client.Walk(root, fn)
}
