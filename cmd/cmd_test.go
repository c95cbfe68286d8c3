package cmd

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"contenttype/classify"
	"contenttype/overrides"
	"contenttype/sniff"
	"contenttype/source"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func testClassifier() *classify.Classifier {
	l, _ := test.NewNullLogger()
	return classify.New(sniff.NewMimetype(), classify.WithLogger(l))
}

func TestClassifyPaths(t *testing.T) {
	dir := t.TempDir()
	pdf := filepath.Join(dir, "doc")
	docx := filepath.Join(dir, "memo.docx")
	require.NoError(t, os.WriteFile(pdf, []byte("%PDF-1.4\n"), 0644))
	require.NoError(t, os.WriteFile(docx, []byte("PK\x03\x04"), 0644))

	var out bytes.Buffer
	err := classifyPaths(&out, testClassifier(), nil, []string{pdf, docx})
	require.NoError(t, err)
	require.Equal(t,
		pdf+": application/pdf\n"+
			docx+": application/vnd.openxmlformats-officedocument.wordprocessingml.document\n",
		out.String())
}

func TestClassifyPathsReportsFailures(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/a.gif", []byte("GIF89a"), 0644))

	var out bytes.Buffer
	err := classifyPaths(&out, testClassifier(), source.NewAfero(fs), []string{"/a.gif", "/missing"})
	require.EqualError(t, err, "1 of 2 files could not be classified")
	require.Equal(t, "/a.gif: image/gif\n", out.String())
}

func TestReadInput(t *testing.T) {
	data, err := readInput(strings.NewReader("stdin"), nil)
	require.NoError(t, err)
	require.Equal(t, "stdin", string(data))

	data, err = readInput(strings.NewReader("dash"), []string{"-"})
	require.NoError(t, err)
	require.Equal(t, "dash", string(data))

	name := filepath.Join(t.TempDir(), "in")
	require.NoError(t, os.WriteFile(name, []byte("file"), 0644))
	data, err = readInput(nil, []string{name})
	require.NoError(t, err)
	require.Equal(t, "file", string(data))
}

func TestClassifyURL(t *testing.T) {
	content := append([]byte("%PDF-1.4\n"), bytes.Repeat([]byte{'x'}, 8192)...)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/files/report.pdf", "/files/memo.docx":
			http.ServeContent(w, r, "", time.Time{}, bytes.NewReader(content))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c := testClassifier()
	mt, err := classifyURL(c, srv.Client(), srv.URL+"/files/report.pdf")
	require.NoError(t, err)
	require.Equal(t, "application/pdf", mt)

	mt, err = classifyURL(c, srv.Client(), srv.URL+"/files/memo.docx")
	require.NoError(t, err)
	require.Equal(t, "application/vnd.openxmlformats-officedocument.wordprocessingml.document", mt)

	_, err = classifyURL(c, srv.Client(), srv.URL+"/files/absent")
	require.ErrorIs(t, err, classify.ErrInvalidPath)

	_, err = classifyURL(c, srv.Client(), "ftp://example.com/a")
	require.Error(t, err)
}

func TestListOverrides(t *testing.T) {
	var out bytes.Buffer
	listOverrides(&out)

	for _, e := range overrides.Entries() {
		require.Contains(t, out.String(), "."+e.Extension)
		require.Contains(t, out.String(), e.MIME)
	}
}
