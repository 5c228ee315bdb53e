package xmlcursor

import "io"

// CharsetReaderFunc converts input declared in a non-UTF-8 charset to UTF-8.
type CharsetReaderFunc func(label string, input io.Reader) (io.Reader, error)

// Option configures a Reader.
type Option func(*options)

type options struct {
	charsetReader CharsetReaderFunc
	maxDepth      int
	strict        bool
}

// WithStrict toggles strict XML well-formedness checking (default true).
func WithStrict(strict bool) Option {
	return func(o *options) {
		o.strict = strict
	}
}

// WithMaxDepth limits element nesting. Zero disables the limit.
func WithMaxDepth(depth int) Option {
	return func(o *options) {
		o.maxDepth = depth
	}
}

// WithCharsetReader replaces the default IANA charset table.
// A nil fn rejects every non-UTF-8 document.
func WithCharsetReader(fn CharsetReaderFunc) Option {
	return func(o *options) {
		o.charsetReader = fn
	}
}

func buildOptions(opts ...Option) options {
	o := options{
		charsetReader: CharsetReader,
		strict:        true,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
