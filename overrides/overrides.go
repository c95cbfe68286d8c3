// Package overrides holds the extensions whose content type is decided by
// name alone. Office Open XML documents are zip containers and the generic
// signature databases report them as application/zip, so the extension wins.
package overrides

import "strings"

type Entry struct {
	Extension string
	MIME      string
}

// http://www.webdeveloper.com/forum/showthread.php?t=162526
var entries = []Entry{
	{"docm", "application/vnd.ms-word.document.macroEnabled.12"},
	{"docx", "application/vnd.openxmlformats-officedocument.wordprocessingml.document"},
	{"dotm", "application/vnd.ms-word.template.macroEnabled.12"},
	{"dotx", "application/vnd.openxmlformats-officedocument.wordprocessingml.template"},
	{"potm", "application/vnd.ms-powerpoint.template.macroEnabled.12"},
	{"potx", "application/vnd.openxmlformats-officedocument.presentationml.template"},
	{"ppam", "application/vnd.ms-powerpoint.addin.macroEnabled.12"},
	{"ppsm", "application/vnd.ms-powerpoint.slideshow.macroEnabled.12"},
	{"ppsx", "application/vnd.openxmlformats-officedocument.presentationml.slideshow"},
	{"pptm", "application/vnd.ms-powerpoint.presentation.macroEnabled.12"},
	{"pptx", "application/vnd.openxmlformats-officedocument.presentationml.presentation"},
	{"xlam", "application/vnd.ms-excel.addin.macroEnabled.12"},
	{"xlsb", "application/vnd.ms-excel.sheet.binary.macroEnabled.12"},
	{"xlsm", "application/vnd.ms-excel.sheet.macroEnabled.12"},
	{"xlsx", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"},
	{"xltm", "application/vnd.ms-excel.template.macroEnabled.12"},
	{"xltx", "application/vnd.openxmlformats-officedocument.spreadsheetml.template"},
}

// Lookup returns the overriding MIME type for ext, given without the leading
// dot. Extensions compare case-insensitively and must match in full.
func Lookup(ext string) (string, bool) {
	for _, e := range entries {
		if len(e.Extension) == len(ext) && strings.EqualFold(e.Extension, ext) {
			return e.MIME, true
		}
	}
	return "", false
}

// Entries returns a copy of the table.
func Entries() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}
