package xmlcursor

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
)

// SyntaxError reports malformed XML with the position of the failing token.
type SyntaxError struct {
	Err    error
	Line   int
	Column int
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("xml syntax error at line %d, column %d: %v", e.Line, e.Column, e.Err)
}

// Unwrap returns the decoder error.
func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// Reader is a streaming Cursor backed by encoding/xml.
type Reader struct {
	dec        *xml.Decoder
	ns         nsStack
	name       xml.Name
	attrs      []xml.Attr
	text       string
	line       int
	column     int
	maxDepth   int
	kind       Kind
	pendingPop bool
	truncated  bool
}

// NewReader creates a cursor over r positioned on the first event.
func NewReader(r io.Reader, opts ...Option) (*Reader, error) {
	if r == nil {
		return nil, errNilReader
	}
	o := buildOptions(opts...)
	dec := xml.NewDecoder(r)
	dec.Strict = o.strict
	if o.charsetReader != nil {
		dec.CharsetReader = o.charsetReader
	}
	reader := &Reader{dec: dec, attrs: make([]xml.Attr, 0, 8), maxDepth: o.maxDepth}
	if _, err := reader.Next(); err != nil {
		return nil, err
	}
	return reader, nil
}

// Kind returns the current event kind.
func (r *Reader) Kind() Kind {
	return r.kind
}

// LocalName returns the local name of the current element event.
func (r *Reader) LocalName() string {
	return r.name.Local
}

// Namespace returns the namespace URI of the current element event.
func (r *Reader) Namespace() string {
	return r.name.Space
}

// Text returns the character data of the current event.
func (r *Reader) Text() string {
	return r.text
}

// Attr looks up an attribute on the current start event.
func (r *Reader) Attr(namespace, local string) (string, bool) {
	if r.kind != KindStart {
		return "", false
	}
	return lookupAttr(r.attrs, namespace, local)
}

// LookupPrefix resolves a namespace prefix in the scope of the current element.
func (r *Reader) LookupPrefix(prefix string) (string, bool) {
	return r.ns.lookup(prefix)
}

// Position describes the location of the current event.
func (r *Reader) Position() string {
	return fmt.Sprintf("line %d, column %d", r.line, r.column)
}

// Truncated reports whether input ended inside an open element.
func (r *Reader) Truncated() bool {
	return r.truncated
}

// Next advances to the next event. Input ending inside an open element is
// reported as KindEOF so callers can name the element left unclosed; Truncated
// distinguishes it from a clean end of document.
func (r *Reader) Next() (Kind, error) {
	if r.kind == KindEOF && r.dec == nil {
		return KindEOF, nil
	}
	if r.pendingPop {
		r.ns.pop()
		r.pendingPop = false
	}
	r.line, r.column = r.dec.InputPos()
	tok, err := r.dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			r.setEOF()
			return KindEOF, nil
		}
		var syntaxErr *xml.SyntaxError
		if errors.As(err, &syntaxErr) && syntaxErr.Msg == "unexpected EOF" {
			r.truncated = true
			r.setEOF()
			return KindEOF, nil
		}
		return r.kind, &SyntaxError{Line: r.line, Column: r.column, Err: err}
	}

	r.text = ""
	switch t := tok.(type) {
	case xml.StartElement:
		r.kind = KindStart
		r.name = t.Name
		r.attrs = append(r.attrs[:0], t.Attr...)
		r.ns.push(scopeFromAttrs(t.Attr))
		if r.maxDepth > 0 && r.ns.depth() > r.maxDepth {
			return r.kind, &SyntaxError{Line: r.line, Column: r.column, Err: ErrDepthLimit}
		}
	case xml.EndElement:
		r.kind = KindEnd
		r.name = t.Name
		r.attrs = r.attrs[:0]
		r.pendingPop = true
	case xml.CharData:
		r.kind = KindOther
		r.name = xml.Name{}
		r.attrs = r.attrs[:0]
		r.text = string(t)
	default:
		r.kind = KindOther
		r.name = xml.Name{}
		r.attrs = r.attrs[:0]
	}
	return r.kind, nil
}

func (r *Reader) setEOF() {
	r.kind = KindEOF
	r.name = xml.Name{}
	r.text = ""
	r.attrs = r.attrs[:0]
	r.dec = nil
}
