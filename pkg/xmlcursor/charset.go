package xmlcursor

import (
	"errors"
	"fmt"
	"io"

	"golang.org/x/text/encoding/ianaindex"
)

var errUnsupportedCharset = errors.New("unsupported charset")

// CharsetReader decodes input in any IANA-registered charset supported by
// golang.org/x/text. It is the default for Reader.
func CharsetReader(label string, input io.Reader) (io.Reader, error) {
	enc, err := ianaindex.IANA.Encoding(label)
	if err != nil {
		return nil, fmt.Errorf("charset %q: %w", label, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("charset %q: %w", label, errUnsupportedCharset)
	}
	return enc.NewDecoder().Reader(input), nil
}
