package source

import (
	"bytes"
	"io"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func TestAfero(t *testing.T) {
	req := require.New(t)

	mem := afero.NewMemMapFs()
	req.NoError(afero.WriteFile(mem, "/docs/report.pdf", []byte("%PDF-1.4"), 0644))
	req.NoError(afero.WriteFile(mem, "/docs/sub/notes.txt", []byte("hello"), 0644))
	src := NewAfero(mem)

	info, err := src.Stat("/docs/report.pdf")
	req.NoError(err)
	req.Equal(int64(8), info.Size())

	_, err = src.Stat("/docs/missing")
	req.ErrorIs(err, fs.ErrNotExist)

	rc, err := src.Open("/docs/report.pdf")
	req.NoError(err)
	data, err := io.ReadAll(rc)
	req.NoError(err)
	req.NoError(rc.Close())
	req.Equal("%PDF-1.4", string(data))

	var files []string
	req.NoError(src.Walk("/docs", func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			files = append(files, filepath.ToSlash(path))
		}
		return nil
	}))
	sort.Strings(files)
	req.Equal([]string{"/docs/report.pdf", "/docs/sub/notes.txt"}, files)
}

func TestHTTP(t *testing.T) {
	req := require.New(t)

	content := append([]byte("%PDF-1.4\n"), bytes.Repeat([]byte("x"), 8192)...)
	modTime := time.Date(2022, 4, 1, 12, 0, 0, 0, time.UTC)

	var lastRange string
	mux := http.NewServeMux()
	mux.HandleFunc("/files/report.pdf", func(w http.ResponseWriter, r *http.Request) {
		lastRange = r.Header.Get("Range")
		http.ServeContent(w, r, "report.pdf", modTime, bytes.NewReader(content))
	})
	mux.HandleFunc("/files/broken", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	src, err := NewHTTP(srv.Client(), srv.URL)
	req.NoError(err)

	info, err := src.Stat("/files/report.pdf")
	req.NoError(err)
	req.Equal("report.pdf", info.Name())
	req.Equal(int64(len(content)), info.Size())
	req.True(info.ModTime().Equal(modTime))
	req.False(info.IsDir())

	_, err = src.Stat("/files/missing.pdf")
	req.ErrorIs(err, fs.ErrNotExist)

	_, err = src.Stat("/files/broken")
	req.Error(err)
	req.NotErrorIs(err, fs.ErrNotExist)

	rc, err := src.Open("/files/report.pdf")
	req.NoError(err)
	data, err := io.ReadAll(rc)
	req.NoError(err)
	req.NoError(rc.Close())
	req.Equal("bytes=0-3071", lastRange)
	req.Len(data, 3072)
	req.Equal([]byte("%PDF-1.4"), data[:8])

	_, err = src.Open("/files/broken")
	req.Error(err)
}

func TestNewHTTP(t *testing.T) {
	req := require.New(t)

	_, err := NewHTTP(nil, "ftp://example.com")
	req.Error(err)

	src, err := NewHTTP(nil, "https://example.com/base/")
	req.NoError(err)
	req.Equal("https://example.com/files/a.docx", src.resolve("/files/a.docx"))
	req.Equal("https://example.com/base/a.docx", src.resolve("a.docx"))
}
