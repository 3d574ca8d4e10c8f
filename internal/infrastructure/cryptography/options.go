package cryptography

import (
	"crypto/rand"
	"io"
)

// Option configures a processor or generator.
type Option func(*options)

type options struct {
	rand io.Reader
}

// WithRand replaces crypto/rand.Reader as the randomness source.
func WithRand(r io.Reader) Option {
	return func(o *options) {
		if r != nil {
			o.rand = r
		}
	}
}

func newOptions(opts []Option) options {
	o := options{rand: rand.Reader}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
