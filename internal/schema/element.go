package schema

import (
	xsderrors "github.com/joedowns/wsc/errors"
	"github.com/joedowns/wsc/internal/xmlnames"
	"github.com/joedowns/wsc/pkg/xmlcursor"
)

// Element is a global or local element declaration.
type Element struct {
	Schema        SchemaRef
	Name          string
	Documentation string
	Form          string
	Ref           QName
	Type          QName
	MinOccurs     int
	MaxOccurs     int
	Nillable      bool
	// Anonymous reports that Type names a type synthesized from an inline definition.
	Anonymous bool
}

// IsUnbounded reports whether maxOccurs is "unbounded".
func (e *Element) IsUnbounded() bool {
	return e.MaxOccurs == Unbounded
}

// IsArray reports whether the element may repeat.
func (e *Element) IsArray() bool {
	return e.MaxOccurs == Unbounded || e.MaxOccurs > 1
}

// ElementReader reads <element>. Inline type definitions are registered in the
// table under AnonymousTypeName(element name).
type ElementReader struct {
	schema *Schema
	result *Element
}

// NewElementReader creates an element reader bound to s.
func NewElementReader(s *Schema) *ElementReader {
	return &ElementReader{schema: s}
}

// Result returns the element read by the last Read call.
func (r *ElementReader) Result() *Element {
	return r.result
}

// Read implements SubReader.
func (r *ElementReader) Read(c xmlcursor.Cursor) error {
	if c.Kind() != xmlcursor.KindStart {
		return errNotAtStart
	}
	el := &Element{
		Schema:   r.schema.Ref(),
		Name:     attr(c, xmlnames.AttrName),
		Form:     attr(c, xmlnames.AttrForm),
		Ref:      qnameAttr(c, xmlnames.AttrRef),
		Type:     qnameAttr(c, xmlnames.AttrType),
		Nillable: boolAttr(c, xmlnames.AttrNillable),
	}
	var err error
	if el.MinOccurs, err = occursAttr(c, xmlnames.AttrMinOccurs); err != nil {
		return xsderrors.WrapParseError(xsderrors.ErrInvalidAttribute, "element "+el.Name, c.Position(), err)
	}
	if el.MaxOccurs, err = occursAttr(c, xmlnames.AttrMaxOccurs); err != nil {
		return xsderrors.WrapParseError(xsderrors.ErrInvalidAttribute, "element "+el.Name, c.Position(), err)
	}
	if el.Name == "" && !el.Ref.IsZero() {
		el.Name = el.Ref.Local
	}
	r.result = el

	return readChildren(c, func(c xmlcursor.Cursor) error {
		switch {
		case isXSD(c, xmlnames.Annotation):
			doc, err := readDocumentation(c)
			el.Documentation = doc
			return err
		case isXSD(c, xmlnames.ComplexType):
			name := r.schema.AnonymousTypeName(el.Name)
			ct := NewComplexTypeReader(r.schema, name)
			if err := ct.Read(c); err != nil {
				return err
			}
			r.schema.putComplexType(ct.Result())
			el.Type = r.schema.typeName(name)
			el.Anonymous = true
			return nil
		case isXSD(c, xmlnames.SimpleType):
			name := r.schema.AnonymousTypeName(el.Name)
			st := NewSimpleTypeReader(r.schema, name)
			if err := st.Read(c); err != nil {
				return err
			}
			r.schema.putSimpleType(st.Result())
			el.Type = r.schema.typeName(name)
			el.Anonymous = true
			return nil
		default:
			// identity constraints and foreign extension content
			return skip(c)
		}
	})
}
