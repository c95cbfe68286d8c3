package classify

import "contenttype/sniff"

var defaultClassifier = New(sniff.NewMimetype())

// ClassifyPath returns the content type of the file at path using the
// built-in signature engine.
func ClassifyPath(path string) (string, error) {
	o, err := defaultClassifier.Path(path)
	if err != nil {
		return "", err
	}
	return o.ContentType()
}

// ClassifyBuffer returns the content type of data. Every call sniffs.
func ClassifyBuffer(data []byte) (string, error) {
	return defaultClassifier.Buffer(data)
}
