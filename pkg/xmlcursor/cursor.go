package xmlcursor

import (
	"errors"
)

// Kind identifies the event a cursor is positioned on.
type Kind uint8

const (
	// KindOther covers text, comments, processing instructions and directives.
	KindOther Kind = iota
	// KindStart is an element open event.
	KindStart
	// KindEnd is an element close event.
	KindEnd
	// KindEOF reports that input is exhausted.
	KindEOF
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindStart:
		return "start"
	case KindEnd:
		return "end"
	case KindEOF:
		return "eof"
	default:
		return "other"
	}
}

// Cursor is a forward-only stream of XML events.
//
// LocalName, Namespace and Attr describe the current event; Attr only reports
// values on start events and Text only on character data. Next advances and returns the new kind. Once input is
// exhausted Next keeps returning KindEOF with a nil error.
type Cursor interface {
	Kind() Kind
	LocalName() string
	Namespace() string
	Text() string
	Attr(namespace, local string) (string, bool)
	LookupPrefix(prefix string) (string, bool)
	Next() (Kind, error)
	Position() string
}

var (
	// ErrUnexpectedEOF reports input ending inside an element subtree.
	ErrUnexpectedEOF = errors.New("unexpected end of input")
	// ErrNotAtStart reports a subtree operation started off a start event.
	ErrNotAtStart = errors.New("cursor is not on a start element")
	// ErrNoElement reports a document without any element.
	ErrNoElement = errors.New("document has no element")
	// ErrDepthLimit reports element nesting beyond WithMaxDepth.
	ErrDepthLimit = errors.New("element nesting exceeds depth limit")

	errNilReader = errors.New("nil XML reader")
)

// Skip consumes the subtree of the current start event and leaves the cursor
// on its matching end event.
func Skip(c Cursor) error {
	if c.Kind() != KindStart {
		return ErrNotAtStart
	}
	depth := 1
	for {
		kind, err := c.Next()
		if err != nil {
			return err
		}
		switch kind {
		case KindStart:
			depth++
		case KindEnd:
			depth--
			if depth == 0 {
				return nil
			}
		case KindEOF:
			return ErrUnexpectedEOF
		}
	}
}

// ToStart advances until the cursor is on a start event. It does nothing when
// the cursor already is on one.
func ToStart(c Cursor) error {
	for {
		switch c.Kind() {
		case KindStart:
			return nil
		case KindEOF:
			return ErrNoElement
		}
		if _, err := c.Next(); err != nil {
			return err
		}
	}
}

// Is reports whether the cursor is on an event of kind k named {namespace}local.
func Is(c Cursor, k Kind, namespace, local string) bool {
	return c.Kind() == k && c.LocalName() == local && c.Namespace() == namespace
}
