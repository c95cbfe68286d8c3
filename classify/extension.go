package classify

import "os"

// MaxExtensionLen bounds how far Extension looks back from the end of a
// path. Longer extensions are not found and such files are sniffed.
const MaxExtensionLen = 16

// Extension returns what follows the last dot of path when that dot lies
// within MaxExtensionLen bytes of the end. The first byte is never
// inspected, so dotfiles like ".bashrc" have no extension, and the scan
// stops at a path separator.
func Extension(path string) (string, bool) {
	for i, n := len(path)-1, 0; i > 0 && n < MaxExtensionLen; i, n = i-1, n+1 {
		if path[i] == '.' {
			ext := path[i+1:]
			return ext, ext != ""
		}
		if os.IsPathSeparator(path[i]) || path[i] == '/' {
			return "", false
		}
	}
	return "", false
}
