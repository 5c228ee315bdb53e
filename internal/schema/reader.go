package schema

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	xsderrors "github.com/joedowns/wsc/errors"
	"github.com/joedowns/wsc/internal/qname"
	"github.com/joedowns/wsc/internal/xmlnames"
	"github.com/joedowns/wsc/pkg/xmlcursor"
)

// SubReader reads one element subtree.
//
// Read is called with the cursor on the element's start event. It must
// consume the whole subtree, nested elements included, and return with the
// cursor on the element's own end event. The schema read loop advances past
// that end event; a reader that stops early or late desynchronizes it.
type SubReader interface {
	Read(c xmlcursor.Cursor) error
}

var errNotAtStart = errors.New("reader called off a start element")

// advance moves the cursor and converts cursor failures into parse errors.
func advance(c xmlcursor.Cursor) (xmlcursor.Kind, error) {
	kind, err := c.Next()
	if err != nil {
		return kind, xsderrors.WrapParseError(xsderrors.ErrXMLSyntax, "malformed XML", c.Position(), err)
	}
	return kind, nil
}

func missingEndTag(local string, c xmlcursor.Cursor) error {
	return xsderrors.NewParseErrorf(xsderrors.ErrMissingEndTag, c.Position(), "failed to find end tag for '%s'", local)
}

// skip consumes an element this package does not model.
func skip(c xmlcursor.Cursor) error {
	local := c.LocalName()
	err := xmlcursor.Skip(c)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, xmlcursor.ErrUnexpectedEOF):
		return missingEndTag(local, c)
	default:
		return xsderrors.WrapParseError(xsderrors.ErrXMLSyntax, "malformed XML", c.Position(), err)
	}
}

// readChildren walks the children of the current start event. child is called
// on every child start event and must leave the cursor on that child's end
// event. readChildren returns on the parent's end event.
func readChildren(c xmlcursor.Cursor, child func(xmlcursor.Cursor) error) error {
	if c.Kind() != xmlcursor.KindStart {
		return errNotAtStart
	}
	local := c.LocalName()
	for {
		kind, err := advance(c)
		if err != nil {
			return err
		}
		switch kind {
		case xmlcursor.KindStart:
			if err := child(c); err != nil {
				return err
			}
		case xmlcursor.KindEnd:
			return nil
		case xmlcursor.KindEOF:
			return missingEndTag(local, c)
		}
	}
}

// readText collects the character data of the current element.
func readText(c xmlcursor.Cursor) (string, error) {
	if c.Kind() != xmlcursor.KindStart {
		return "", errNotAtStart
	}
	local := c.LocalName()
	var b strings.Builder
	depth := 1
	for {
		kind, err := advance(c)
		if err != nil {
			return "", err
		}
		switch kind {
		case xmlcursor.KindOther:
			b.WriteString(c.Text())
		case xmlcursor.KindStart:
			depth++
		case xmlcursor.KindEnd:
			depth--
			if depth == 0 {
				return strings.TrimSpace(b.String()), nil
			}
		case xmlcursor.KindEOF:
			return "", missingEndTag(local, c)
		}
	}
}

func isXSD(c xmlcursor.Cursor, local string) bool {
	return c.Namespace() == xmlnames.XSDNamespace && c.LocalName() == local
}

func attr(c xmlcursor.Cursor, local string) string {
	v, _ := c.Attr("", local)
	return strings.TrimSpace(v)
}

func attrOption(c xmlcursor.Cursor, local string) stringOption {
	v, ok := c.Attr("", local)
	return stringOption{value: v, set: ok}
}

func boolAttr(c xmlcursor.Cursor, local string) bool {
	v := attr(c, local)
	return v == "true" || v == "1"
}

// qnameAttr resolves a QName-valued attribute in the scope of the current element.
func qnameAttr(c xmlcursor.Cursor, local string) QName {
	v := attr(c, local)
	if v == "" {
		return QName{}
	}
	name, _ := qname.Resolve(v, c.LookupPrefix)
	return name
}

func qnameListAttr(c xmlcursor.Cursor, local string) []QName {
	fields := strings.Fields(attr(c, local))
	if len(fields) == 0 {
		return nil
	}
	names := make([]QName, 0, len(fields))
	for _, field := range fields {
		name, _ := qname.Resolve(field, c.LookupPrefix)
		names = append(names, name)
	}
	return names
}

// Unbounded is the MaxOccurs value of maxOccurs="unbounded".
const Unbounded = -1

func occursAttr(c xmlcursor.Cursor, local string) (int, error) {
	v := attr(c, local)
	switch v {
	case "":
		return 1, nil
	case xmlnames.Unbounded:
		if local == xmlnames.AttrMaxOccurs {
			return Unbounded, nil
		}
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid %s value %q", local, v)
	}
	return n, nil
}
