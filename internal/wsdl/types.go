package wsdl

import (
	"errors"
	"fmt"
	"iter"
	"sync/atomic"

	"github.com/untillpro/goutils/logger"

	xsderrors "github.com/joedowns/wsc/errors"
	"github.com/joedowns/wsc/internal/schema"
	"github.com/joedowns/wsc/internal/xiter"
	"github.com/joedowns/wsc/internal/xmlnames"
	"github.com/joedowns/wsc/pkg/xmlcursor"
)

var lastOwnerID atomic.Uint64

// Types is the <types> section of a WSDL document: one schema table per inline
// schema block, in document order.
//
// Blocks are read one after another from the same cursor; Types never starts a
// schema read before the previous one returned.
type Types struct {
	schemas []*schema.Schema
	id      schema.OwnerID
}

// NewTypes creates an empty container with a process-unique owner id.
func NewTypes() *Types {
	return &Types{id: schema.OwnerID(lastOwnerID.Add(1))}
}

// ID returns the owner id carried by the container's tables.
func (t *Types) ID() schema.OwnerID {
	return t.id
}

// Len returns the number of schema blocks read.
func (t *Types) Len() int {
	return len(t.schemas)
}

// Schemas returns the tables in document order.
func (t *Types) Schemas() []*schema.Schema {
	return append([]*schema.Schema(nil), t.schemas...)
}

// All yields the tables in document order without copying.
func (t *Types) All() iter.Seq[*schema.Schema] {
	return xiter.Slice(t.schemas)
}

// Schema returns the table at index i, or nil.
func (t *Types) Schema(i int) *schema.Schema {
	if i < 0 || i >= len(t.schemas) {
		return nil
	}
	return t.schemas[i]
}

// SchemaFor returns the first table declaring namespace as its target, or nil.
func (t *Types) SchemaFor(namespace string) *schema.Schema {
	s, _ := xiter.Find(t.All(), func(s *schema.Schema) bool { return s.TargetNamespace() == namespace })
	return s
}

// Resolve returns the table owning ref, or nil when ref belongs to another container.
func (t *Types) Resolve(ref schema.SchemaRef) *schema.Schema {
	if ref.Owner != t.id {
		return nil
	}
	return t.Schema(ref.Index)
}

// ReadSchema reads the schema block the cursor is positioned on and appends it.
// A table whose read failed is dropped.
func (t *Types) ReadSchema(c xmlcursor.Cursor) error {
	index := len(t.schemas)
	s := schema.New(t.id, index)
	if err := s.Read(c); err != nil {
		return fmt.Errorf("read schema %d: %w", index, err)
	}
	if logger.IsVerbose() {
		logger.Verbose("schema", index, s.TargetNamespace(), "registered", s.Len(), "definitions")
	}
	t.schemas = append(t.schemas, s)
	return nil
}

// Read reads a <types> element the cursor is positioned on and leaves the
// cursor on its end event. Children other than XSD schema blocks are skipped.
func (t *Types) Read(c xmlcursor.Cursor) error {
	return readChildren(c, func(c xmlcursor.Cursor) error {
		if xmlcursor.Is(c, xmlcursor.KindStart, xmlnames.XSDNamespace, xmlnames.Schema) {
			return t.ReadSchema(c)
		}
		if logger.IsVerbose() {
			logger.Verbose("types: skipping {" + c.Namespace() + "}" + c.LocalName())
		}
		return skip(c)
	})
}

func readChildren(c xmlcursor.Cursor, child func(xmlcursor.Cursor) error) error {
	local := c.LocalName()
	for {
		kind, err := c.Next()
		if err != nil {
			return xsderrors.WrapParseError(xsderrors.ErrXMLSyntax, "malformed XML", c.Position(), err)
		}
		switch kind {
		case xmlcursor.KindStart:
			if err := child(c); err != nil {
				return err
			}
		case xmlcursor.KindEnd:
			return nil
		case xmlcursor.KindEOF:
			return xsderrors.NewParseErrorf(xsderrors.ErrMissingEndTag, c.Position(), "failed to find end tag for '%s'", local)
		}
	}
}

func skip(c xmlcursor.Cursor) error {
	local := c.LocalName()
	err := xmlcursor.Skip(c)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, xmlcursor.ErrUnexpectedEOF):
		return xsderrors.NewParseErrorf(xsderrors.ErrMissingEndTag, c.Position(), "failed to find end tag for '%s'", local)
	default:
		return xsderrors.WrapParseError(xsderrors.ErrXMLSyntax, "malformed XML", c.Position(), err)
	}
}
