package schema

import (
	"github.com/joedowns/wsc/internal/xmlnames"
	"github.com/joedowns/wsc/pkg/xmlcursor"
)

// SimpleType is a named or anonymous simple type definition.
type SimpleType struct {
	Schema        SchemaRef
	Name          string
	Documentation string
	Base          QName
	ItemType      QName
	Enumerations  []string
	MemberTypes   []QName
}

// IsEnumeration reports whether the type restricts its base to a value set.
func (t *SimpleType) IsEnumeration() bool {
	return len(t.Enumerations) > 0
}

// SimpleTypeReader reads <simpleType>.
type SimpleTypeReader struct {
	schema *Schema
	result *SimpleType
	name   string
}

// NewSimpleTypeReader creates a simple type reader bound to s. A non-empty
// name is used when the definition has no name attribute.
func NewSimpleTypeReader(s *Schema, name string) *SimpleTypeReader {
	return &SimpleTypeReader{schema: s, name: name}
}

// Result returns the type read by the last Read call.
func (r *SimpleTypeReader) Result() *SimpleType {
	return r.result
}

// Read implements SubReader.
func (r *SimpleTypeReader) Read(c xmlcursor.Cursor) error {
	if c.Kind() != xmlcursor.KindStart {
		return errNotAtStart
	}
	st := &SimpleType{
		Schema: r.schema.Ref(),
		Name:   attr(c, xmlnames.AttrName),
	}
	if st.Name == "" {
		st.Name = r.name
	}
	r.result = st

	return readChildren(c, func(c xmlcursor.Cursor) error {
		switch {
		case isXSD(c, xmlnames.Annotation):
			doc, err := readDocumentation(c)
			st.Documentation = doc
			return err
		case isXSD(c, xmlnames.Restriction):
			st.Base = qnameAttr(c, xmlnames.AttrBase)
			return readChildren(c, func(c xmlcursor.Cursor) error {
				if isXSD(c, xmlnames.Enumeration) {
					v, _ := c.Attr("", xmlnames.AttrValue)
					st.Enumerations = append(st.Enumerations, v)
				}
				// other facets and nested base types are not modeled
				return skip(c)
			})
		case isXSD(c, xmlnames.List):
			st.ItemType = qnameAttr(c, xmlnames.AttrItemType)
			return skip(c)
		case isXSD(c, xmlnames.Union):
			st.MemberTypes = qnameListAttr(c, xmlnames.AttrMemberTypes)
			return skip(c)
		default:
			return skip(c)
		}
	})
}
