package classify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtension(t *testing.T) {
	tests := []struct {
		name  string
		path  string
		want  string
		found bool
	}{
		{"Last of several dots", "archive.tar.gz", "gz", true},
		{"No dot", "noext", "", false},
		{"Empty", "", "", false},
		{"Dotfile", ".bashrc", "", false},
		{"Trailing dot", "file.", "", false},
		{"Case is kept", "REPORT.DOCX", "DOCX", true},
		{"Absolute path", "/srv/files/form.docx", "docx", true},
		{"Dot in directory only", "/srv/v1.2/README", "", false},
		{"Long name short extension", strings.Repeat("a", 20) + ".txt", "txt", true},
		{"Long name without dot", strings.Repeat("a", 20), "", false},
		{"Extension fills the window but one", "report." + strings.Repeat("x", MaxExtensionLen-1), strings.Repeat("x", MaxExtensionLen-1), true},
		{"Extension exhausts the window", "report." + strings.Repeat("x", MaxExtensionLen), "", false},
		{"Dot right at the bound", strings.Repeat("b", 4) + "." + strings.Repeat("y", 15), strings.Repeat("y", 15), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Extension(tt.path)
			require.Equal(t, tt.found, ok)
			require.Equal(t, tt.want, got)
		})
	}
}
