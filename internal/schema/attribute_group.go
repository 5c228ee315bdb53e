package schema

import (
	"github.com/joedowns/wsc/internal/xmlnames"
	"github.com/joedowns/wsc/pkg/xmlcursor"
)

// AttributeGroup is a named attribute group or a reference to one.
type AttributeGroup struct {
	Schema          SchemaRef
	Name            string
	Documentation   string
	Ref             QName
	Attributes      []*Attribute
	AttributeGroups []QName
}

// AttributeGroupReader reads <attributeGroup>.
type AttributeGroupReader struct {
	schema *Schema
	result *AttributeGroup
}

// NewAttributeGroupReader creates an attribute group reader bound to s.
func NewAttributeGroupReader(s *Schema) *AttributeGroupReader {
	return &AttributeGroupReader{schema: s}
}

// Result returns the group read by the last Read call.
func (r *AttributeGroupReader) Result() *AttributeGroup {
	return r.result
}

// Read implements SubReader.
func (r *AttributeGroupReader) Read(c xmlcursor.Cursor) error {
	if c.Kind() != xmlcursor.KindStart {
		return errNotAtStart
	}
	g := &AttributeGroup{
		Schema: r.schema.Ref(),
		Name:   attr(c, xmlnames.AttrName),
		Ref:    qnameAttr(c, xmlnames.AttrRef),
	}
	r.result = g

	return readChildren(c, func(c xmlcursor.Cursor) error {
		switch {
		case isXSD(c, xmlnames.Annotation):
			doc, err := readDocumentation(c)
			g.Documentation = doc
			return err
		case isXSD(c, xmlnames.Attribute):
			ar := NewAttributeReader(r.schema)
			if err := ar.Read(c); err != nil {
				return err
			}
			g.Attributes = append(g.Attributes, ar.Result())
			return nil
		case isXSD(c, xmlnames.AttributeGroup):
			if ref := qnameAttr(c, xmlnames.AttrRef); !ref.IsZero() {
				g.AttributeGroups = append(g.AttributeGroups, ref)
			}
			return skip(c)
		default:
			return skip(c)
		}
	})
}
