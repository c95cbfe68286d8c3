//go:generate go run go.uber.org/mock/mockgen -source=sniff.go -destination=../mocks/mock_sniff.go -package=mocks
package sniff

import (
	"errors"
	"fmt"
	"log"
	"mime"
	"sort"
	"strings"
	"sync"
)

var (
	ErrClosed    = errors.New("sniffer handle is closed")
	ErrNotLoaded = errors.New("signature database not loaded")
)

// Sniffer opens handles onto a signature engine.
type Sniffer interface {
	Open() (Handle, error)
}

// Handle is one open engine instance. It is loaded, used for a single
// classification and closed.
type Handle interface {
	Load() error
	File(path string) (string, error)
	Buffer(data []byte) (string, error)
	Close() error
}

var muBackends sync.Mutex
var backends = make(map[string]func() Sniffer)

func Register(name string, backend func() Sniffer) {
	muBackends.Lock()
	defer muBackends.Unlock()

	if _, ok := backends[name]; ok {
		log.Fatalf("sniffer '%s' registered twice", name)
	}
	backends[name] = backend
}

func New(name string) (Sniffer, error) {
	muBackends.Lock()
	defer muBackends.Unlock()

	backend, exists := backends[name]
	if !exists {
		return nil, fmt.Errorf("sniffer '%s' does not exist", name)
	}
	return backend(), nil
}

func Backends() []string {
	muBackends.Lock()
	defer muBackends.Unlock()

	ret := make([]string, 0, len(backends))
	for name := range backends {
		ret = append(ret, name)
	}
	sort.Strings(ret)
	return ret
}

// MediaType strips parameters such as charset from an engine answer.
func MediaType(s string) string {
	mt, _, err := mime.ParseMediaType(s)
	if err != nil {
		return strings.TrimSpace(s)
	}
	return mt
}
