package schema

import (
	"github.com/joedowns/wsc/internal/xmlnames"
	"github.com/joedowns/wsc/pkg/xmlcursor"
)

// Attribute is a global or local attribute declaration.
type Attribute struct {
	Schema        SchemaRef
	Name          string
	Use           string
	Default       string
	Fixed         string
	Form          string
	Documentation string
	Ref           QName
	Type          QName
	Anonymous     bool
}

// IsRequired reports whether use="required".
func (a *Attribute) IsRequired() bool {
	return a.Use == "required"
}

// AttributeReader reads <attribute>.
type AttributeReader struct {
	schema *Schema
	result *Attribute
}

// NewAttributeReader creates an attribute reader bound to s.
func NewAttributeReader(s *Schema) *AttributeReader {
	return &AttributeReader{schema: s}
}

// Result returns the attribute read by the last Read call.
func (r *AttributeReader) Result() *Attribute {
	return r.result
}

// Read implements SubReader.
func (r *AttributeReader) Read(c xmlcursor.Cursor) error {
	if c.Kind() != xmlcursor.KindStart {
		return errNotAtStart
	}
	a := &Attribute{
		Schema:  r.schema.Ref(),
		Name:    attr(c, xmlnames.AttrName),
		Use:     attr(c, xmlnames.AttrUse),
		Default: attr(c, xmlnames.AttrDefault),
		Fixed:   attr(c, xmlnames.AttrFixed),
		Form:    attr(c, xmlnames.AttrForm),
		Ref:     qnameAttr(c, xmlnames.AttrRef),
		Type:    qnameAttr(c, xmlnames.AttrType),
	}
	if a.Name == "" && !a.Ref.IsZero() {
		a.Name = a.Ref.Local
	}
	r.result = a

	return readChildren(c, func(c xmlcursor.Cursor) error {
		switch {
		case isXSD(c, xmlnames.Annotation):
			doc, err := readDocumentation(c)
			a.Documentation = doc
			return err
		case isXSD(c, xmlnames.SimpleType):
			name := r.schema.AnonymousTypeName(a.Name)
			st := NewSimpleTypeReader(r.schema, name)
			if err := st.Read(c); err != nil {
				return err
			}
			r.schema.putSimpleType(st.Result())
			a.Type = r.schema.typeName(name)
			a.Anonymous = true
			return nil
		default:
			return skip(c)
		}
	})
}
