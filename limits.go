package wsc

import (
	"cmp"
	"fmt"
	"io"

	"github.com/joedowns/wsc/pkg/xmlcursor"
)

const (
	defaultMaxDepth         = 256
	defaultMaxDocumentBytes = 64 << 20
)

type parseLimits struct {
	maxDepth         int
	maxDocumentBytes int64
}

func resolveParseLimits(maxDepth int, maxDocumentBytes int64) (parseLimits, error) {
	if maxDepth < 0 {
		return parseLimits{}, fmt.Errorf("xml max depth must be >= 0")
	}
	if maxDocumentBytes < 0 {
		return parseLimits{}, fmt.Errorf("max document bytes must be >= 0")
	}
	return parseLimits{
		maxDepth:         cmp.Or(maxDepth, defaultMaxDepth),
		maxDocumentBytes: cmp.Or(maxDocumentBytes, defaultMaxDocumentBytes),
	}, nil
}

func (l parseLimits) options() []xmlcursor.Option {
	return []xmlcursor.Option{xmlcursor.WithMaxDepth(l.maxDepth)}
}

// limitReader fails instead of reporting EOF once more than max bytes were read,
// so an oversized document is not mistaken for a truncated one.
type limitReader struct {
	r   io.Reader
	max int64
	n   int64
}

func (l *limitReader) Read(p []byte) (int, error) {
	n, err := l.r.Read(p)
	l.n += int64(n)
	if l.n > l.max {
		return n, fmt.Errorf("document exceeds %d bytes", l.max)
	}
	return n, err
}
