// Package classify resolves the MIME type of a file or a buffer. A path is
// first matched against the extension overrides; anything else goes to the
// signature engine. Each Classification remembers its first answer.
package classify

import (
	"errors"
	"time"

	"contenttype/header"
	"contenttype/metrics"
	"contenttype/overrides"
	"contenttype/sniff"
	"contenttype/source"

	"github.com/sirupsen/logrus"
)

type Origin string

const (
	OriginOverride Origin = "override"
	OriginSniff    Origin = "sniff"
)

type Result struct {
	MIME     string
	Resolved bool
	Origin   Origin
}

// Classifier holds no per-request state and can be shared.
type Classifier struct {
	sniffer sniff.Sniffer
	log     logrus.FieldLogger
	metrics *metrics.Metrics
}

type Option func(*Classifier)

func WithLogger(l logrus.FieldLogger) Option {
	return func(c *Classifier) {
		c.log = l
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Classifier) {
		c.metrics = m
	}
}

func New(s sniff.Sniffer, opts ...Option) *Classifier {
	c := &Classifier{
		sniffer: s,
		log:     logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Path validates that path exists and returns its classification.
func (c *Classifier) Path(path string) (*Classification, error) {
	return c.Source(nil, path)
}

func (c *Classifier) Source(src source.Source, path string) (*Classification, error) {
	req, err := NewSourceRequest(src, path)
	if err != nil {
		return nil, err
	}
	return c.Classify(req), nil
}

func (c *Classifier) NewBuffer(data []byte) *Classification {
	return c.Classify(NewBufferRequest(data))
}

// Buffer sniffs data. Nothing is remembered between calls.
func (c *Classifier) Buffer(data []byte) (string, error) {
	return c.NewBuffer(data).ContentType()
}

func (c *Classifier) Classify(req *Request) *Classification {
	return &Classification{classifier: c, req: req}
}

// Classification is a request plus its memoized result. It is not safe for
// concurrent use.
type Classification struct {
	classifier *Classifier
	req        *Request
	result     Result
}

func (o *Classification) Result() Result {
	return o.result
}

// ContentType resolves the MIME type on the first successful call and
// returns the cached value afterwards. A failed call leaves the
// classification unresolved so the next call starts over.
func (o *Classification) ContentType() (string, error) {
	c := o.classifier
	if o.result.Resolved {
		c.metrics.Resolved("cache")
		return o.result.MIME, nil
	}

	if o.req.kind == PathRequest {
		if ext, ok := Extension(o.req.path); ok {
			if mt, ok := overrides.Lookup(ext); ok {
				o.resolve(mt, OriginOverride)
				return mt, nil
			}
		}
	}

	mt, err := o.sniff()
	if err != nil {
		var se *SnifferError
		if errors.As(err, &se) {
			c.metrics.Failed(string(se.Stage))
		}
		c.log.WithFields(logrus.Fields{
			"request": o.req.kind.String(),
			"path":    o.req.path,
		}).WithError(err).Debug("classification failed")
		return "", err
	}

	o.resolve(mt, OriginSniff)
	return mt, nil
}

func (o *Classification) resolve(mt string, origin Origin) {
	o.result = Result{MIME: mt, Resolved: true, Origin: origin}
	o.classifier.metrics.Resolved(string(origin))
	o.classifier.log.WithFields(logrus.Fields{
		"request": o.req.kind.String(),
		"path":    o.req.path,
		"origin":  origin,
		"mime":    mt,
	}).Debug("classified")
}

func (o *Classification) sniff() (mt string, err error) {
	c := o.classifier
	start := time.Now()
	defer func() { c.metrics.Sniffed(time.Since(start)) }()

	h, err := c.sniffer.Open()
	if err != nil {
		return "", &SnifferError{Stage: StageOpen, Err: err}
	}
	defer func() {
		if cerr := h.Close(); cerr != nil {
			c.log.WithError(cerr).Warn("closing sniffer handle")
		}
	}()

	if err := h.Load(); err != nil {
		return "", &SnifferError{Stage: StageLoad, Err: err}
	}

	stage := StageFile
	switch {
	case o.req.kind == BufferRequest:
		stage = StageBuffer
		mt, err = h.Buffer(o.req.data)
	case o.req.source != nil:
		var in []byte
		in, err = header.GetFileHeader(o.req.source, o.req.path, header.Limit())
		if err == nil {
			mt, err = h.Buffer(in)
		}
	default:
		mt, err = h.File(o.req.path)
	}
	if err == nil && mt == "" {
		err = errNoType
	}
	if err != nil {
		return "", &SnifferError{Stage: stage, Err: err}
	}
	return mt, nil
}
