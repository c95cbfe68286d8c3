package source

import (
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"path"
	"time"

	"contenttype/header"
)

// HTTP answers Stat with a HEAD request and Open with a ranged GET covering
// the sniffing header only.
type HTTP struct {
	client *http.Client
	base   *url.URL
}

func NewHTTP(client *http.Client, base string) (*HTTP, error) {
	u, err := url.Parse(base)
	if err != nil {
		return nil, err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if client == nil {
		client = &http.Client{
			Timeout: 30 * time.Second,
			CheckRedirect: func(r *http.Request, via []*http.Request) error {
				r.URL.Opaque = r.URL.Path
				return nil
			},
		}
	}
	return &HTTP{client: client, base: u}, nil
}

func (h *HTTP) resolve(name string) string {
	return h.base.ResolveReference(&url.URL{Path: name}).String()
}

func (h *HTTP) Stat(name string) (os.FileInfo, error) {
	req, err := http.NewRequest(http.MethodHead, h.resolve(name), nil)
	if err != nil {
		return nil, err
	}
	resp, err := h.client.Do(req)
	if err != nil {
		return nil, &fs.PathError{Op: "stat", Path: name, Err: err}
	}
	resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		return nil, &fs.PathError{Op: "stat", Path: name, Err: fs.ErrNotExist}
	case resp.StatusCode >= 300:
		return nil, &fs.PathError{Op: "stat", Path: name, Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}

	info := &remoteInfo{name: path.Base(name), size: resp.ContentLength}
	if lm := resp.Header.Get("Last-Modified"); lm != "" {
		if t, err := http.ParseTime(lm); err == nil {
			info.modTime = t
		}
	}
	return info, nil
}

func (h *HTTP) Open(name string) (io.ReadCloser, error) {
	req, err := http.NewRequest(http.MethodGet, h.resolve(name), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Range", fmt.Sprintf("bytes=0-%d", header.Limit()-1))

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, &fs.PathError{Op: "open", Path: name, Err: err}
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusPartialContent {
		resp.Body.Close()
		return nil, &fs.PathError{Op: "open", Path: name, Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}
	return resp.Body, nil
}

type remoteInfo struct {
	name    string
	size    int64
	modTime time.Time
}

func (i *remoteInfo) Name() string       { return i.name }
func (i *remoteInfo) Size() int64        { return i.size }
func (i *remoteInfo) Mode() fs.FileMode  { return 0444 }
func (i *remoteInfo) ModTime() time.Time { return i.modTime }
func (i *remoteInfo) IsDir() bool        { return false }
func (i *remoteInfo) Sys() any           { return nil }
