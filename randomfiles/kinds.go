package randomfiles

import (
	"bytes"
	"io"

	"github.com/klauspost/pgzip"
)

// Kind is one family of sample file. MIME is what classification must
// report; it is empty when the content is random and any answer is fine.
type Kind struct {
	Name  string
	Ext   string
	MIME  string
	write func(w io.Writer, size int64) error
}

var pngHeader = []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d, 'I', 'H', 'D', 'R'}

var Kinds = []Kind{
	{Name: "pdf", Ext: "pdf", MIME: "application/pdf", write: signed([]byte("%PDF-1.4\n"))},
	{Name: "pdf-noext", MIME: "application/pdf", write: signed([]byte("%PDF-1.7\n"))},
	{Name: "png", Ext: "png", MIME: "image/png", write: signed(pngHeader)},
	{Name: "gif", Ext: "gif", MIME: "image/gif", write: signed([]byte("GIF89a"))},
	{Name: "gzip", Ext: "gz", MIME: "application/gzip", write: gzipped},
	{Name: "text", Ext: "log", MIME: "text/plain", write: text},
	{
		Name:  "docx",
		Ext:   "docx",
		MIME:  "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		write: signed([]byte("PK\x03\x04")),
	},
	{
		Name:  "xlsm",
		Ext:   "xlsm",
		MIME:  "application/vnd.ms-excel.sheet.macroEnabled.12",
		write: signed([]byte("PK\x03\x04")),
	},
	{Name: "random", Ext: "", MIME: "", write: randomBytes},
}

// Write writes a sample of k with size bytes of payload.
func (k Kind) Write(w io.Writer, size int64) error {
	return k.write(w, size)
}

func signed(sig []byte) func(io.Writer, int64) error {
	return func(w io.Writer, size int64) error {
		if _, err := w.Write(sig); err != nil {
			return err
		}
		return randomBytes(w, size)
	}
}

func gzipped(w io.Writer, size int64) error {
	zw := pgzip.NewWriter(w)
	if err := randomBytes(zw, size); err != nil {
		zw.Close()
		return err
	}
	return zw.Close()
}

func text(w io.Writer, size int64) error {
	line := []byte("the quick brown fox jumps over the lazy dog\n")
	n := int(size)/len(line) + 1
	_, err := w.Write(bytes.Repeat(line, n))
	return err
}
