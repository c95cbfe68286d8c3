// Package scan classifies every regular file under a directory tree.
package scan

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"contenttype/classify"
	"contenttype/source"

	"github.com/sirupsen/logrus"
)

var ErrNotWalkable = errors.New("source cannot list directories")

type Record struct {
	Path   string `json:"path"`
	MIME   string `json:"mime,omitempty"`
	Origin string `json:"origin,omitempty"`
	Size   int64  `json:"size"`
	Err    string `json:"error,omitempty"`
}

func (r Record) Failed() bool {
	return r.Err != ""
}

// File is a regular file found while walking.
type File struct {
	Path string
	Size int64
}

type Scanner struct {
	Classifier *classify.Classifier
	// Source is read instead of the local filesystem when set. It must
	// also implement source.Walker.
	Source  source.Source
	Workers int
	Log     logrus.FieldLogger

	// OnRecord is called from the worker goroutines once per file.
	OnRecord func(Record)
}

func (s *Scanner) walk(root string, fn filepath.WalkFunc) error {
	if s.Source == nil {
		return filepath.Walk(root, fn)
	}
	w, ok := s.Source.(source.Walker)
	if !ok {
		return ErrNotWalkable
	}
	return w.Walk(root, fn)
}

// List returns the regular files under root in walk order.
func (s *Scanner) List(root string) ([]File, error) {
	var files []File
	err := s.walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.Mode().IsRegular() {
			files = append(files, File{Path: path, Size: info.Size()})
		}
		return nil
	})
	return files, err
}

// Classify runs files through at most Workers concurrent classifications.
// Records come back in the order of files.
func (s *Scanner) Classify(ctx context.Context, files []File) []Record {
	concurrent := s.Workers
	if concurrent < 1 {
		concurrent = 1
	}
	workers := make(chan int, concurrent)
	records := make([]Record, len(files))

	var wg sync.WaitGroup
	for i := range files {
		workers <- 1
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			defer func() { <-workers }()

			records[i] = s.classify(ctx, files[i])
			if s.OnRecord != nil {
				s.OnRecord(records[i])
			}
		}(i)
	}
	wg.Wait()
	close(workers)

	return records
}

func (s *Scanner) classify(ctx context.Context, f File) Record {
	rec := Record{Path: f.Path, Size: f.Size}
	if err := ctx.Err(); err != nil {
		rec.Err = err.Error()
		return rec
	}

	var (
		c   *classify.Classification
		err error
	)
	if s.Source == nil {
		c, err = s.Classifier.Path(f.Path)
	} else {
		c, err = s.Classifier.Source(s.Source, f.Path)
	}
	if err == nil {
		rec.MIME, err = c.ContentType()
	}
	if err != nil {
		rec.Err = err.Error()
		if s.Log != nil {
			s.Log.WithField("path", f.Path).WithError(err).Warn("classification failed")
		}
		return rec
	}
	rec.Origin = string(c.Result().Origin)
	return rec
}

// Scan lists root and classifies everything under it.
func (s *Scanner) Scan(ctx context.Context, root string) ([]Record, error) {
	files, err := s.List(root)
	if err != nil {
		return nil, err
	}
	return s.Classify(ctx, files), nil
}
