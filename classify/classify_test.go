package classify

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassifyPath(t *testing.T) {
	req := require.New(t)
	dir := t.TempDir()

	pdf := filepath.Join(dir, "pdftest")
	req.NoError(os.WriteFile(pdf, []byte("%PDF-1.4\n1 0 obj\n<<>>\nendobj\n"), 0644))
	mt, err := ClassifyPath(pdf)
	req.NoError(err)
	req.Equal("application/pdf", mt)

	docx := filepath.Join(dir, "form.docx")
	req.NoError(os.WriteFile(docx, []byte("PK\x03\x04 not really a zip"), 0644))
	mt, err = ClassifyPath(docx)
	req.NoError(err)
	req.Equal(docxMIME, mt)

	_, err = ClassifyPath("/nonexistent/file")
	req.ErrorIs(err, ErrInvalidPath)
}

func TestClassifyBuffer(t *testing.T) {
	req := require.New(t)

	mt, err := ClassifyBuffer([]byte("%PDF-1.4"))
	req.NoError(err)
	req.Equal("application/pdf", mt)

	mt, err = ClassifyBuffer([]byte("GIF89a\x01\x00\x01\x00"))
	req.NoError(err)
	req.Equal("image/gif", mt)
}

func BenchmarkClassification_Override(b *testing.B) {
	path := filepath.Join(b.TempDir(), "report.xlsx")
	require.NoError(b, os.WriteFile(path, []byte("PK"), 0644))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ClassifyPath(path); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkClassification_Sniff(b *testing.B) {
	path := filepath.Join(b.TempDir(), "pdftest.pdf")
	require.NoError(b, os.WriteFile(path, []byte("%PDF-1.4\n"), 0644))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ClassifyPath(path); err != nil {
			b.Fatal(err)
		}
	}
}
