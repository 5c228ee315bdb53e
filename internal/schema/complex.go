package schema

import (
	"fmt"
	"strings"

	"github.com/joedowns/wsc/internal/xmlnames"
	"github.com/joedowns/wsc/pkg/xmlcursor"
)

// ComplexType is a named or anonymous complex type definition.
type ComplexType struct {
	Schema        SchemaRef
	Name          string
	Documentation string
	// Content is complexContent or simpleContent when the type derives from Base.
	Content string
	// Derivation is extension or restriction when Content is set.
	Derivation string
	// Compositor is the outermost sequence, all or choice.
	Compositor      string
	Base            QName
	Elements        []*Element
	Attributes      []*Attribute
	AttributeGroups []QName
	Abstract        bool
	Mixed           bool
	HasAny          bool
}

// Element returns the local element called name, or nil.
func (t *ComplexType) Element(name string) *Element {
	for _, el := range t.Elements {
		if el.Name == name {
			return el
		}
	}
	return nil
}

// String lists the name, base and local element names.
func (t *ComplexType) String() string {
	names := make([]string, 0, len(t.Elements))
	for _, el := range t.Elements {
		names = append(names, el.Name)
	}
	base := ""
	if !t.Base.IsZero() {
		base = ", base=" + t.Base.String()
	}
	return fmt.Sprintf("ComplexType{name='%s'%s, elements=[%s]}", t.Name, base, strings.Join(names, ", "))
}

// ComplexTypeReader reads <complexType>.
type ComplexTypeReader struct {
	schema *Schema
	result *ComplexType
	name   string
}

// NewComplexTypeReader creates a complex type reader bound to s. A non-empty
// name is used when the definition has no name attribute.
func NewComplexTypeReader(s *Schema, name string) *ComplexTypeReader {
	return &ComplexTypeReader{schema: s, name: name}
}

// Result returns the type read by the last Read call.
func (r *ComplexTypeReader) Result() *ComplexType {
	return r.result
}

// Read implements SubReader.
func (r *ComplexTypeReader) Read(c xmlcursor.Cursor) error {
	if c.Kind() != xmlcursor.KindStart {
		return errNotAtStart
	}
	ct := &ComplexType{
		Schema:   r.schema.Ref(),
		Name:     attr(c, xmlnames.AttrName),
		Abstract: boolAttr(c, xmlnames.AttrAbstract),
		Mixed:    boolAttr(c, xmlnames.AttrMixed),
	}
	if ct.Name == "" {
		ct.Name = r.name
	}
	r.result = ct
	return readChildren(c, r.child)
}

// child handles the particles and attributes shared by complexType and the
// extension/restriction bodies of its content.
func (r *ComplexTypeReader) child(c xmlcursor.Cursor) error {
	ct := r.result
	if c.Namespace() != xmlnames.XSDNamespace {
		return skip(c)
	}
	switch c.LocalName() {
	case xmlnames.Annotation:
		doc, err := readDocumentation(c)
		if ct.Documentation == "" {
			ct.Documentation = doc
		}
		return err
	case xmlnames.Sequence, xmlnames.All, xmlnames.Choice:
		if ct.Compositor == "" {
			ct.Compositor = c.LocalName()
		}
		return readChildren(c, r.particle)
	case xmlnames.Attribute:
		ar := NewAttributeReader(r.schema)
		if err := ar.Read(c); err != nil {
			return err
		}
		ct.Attributes = append(ct.Attributes, ar.Result())
		return nil
	case xmlnames.AttributeGroup:
		if ref := qnameAttr(c, xmlnames.AttrRef); !ref.IsZero() {
			ct.AttributeGroups = append(ct.AttributeGroups, ref)
		}
		return skip(c)
	case xmlnames.ComplexContent, xmlnames.SimpleContent:
		ct.Content = c.LocalName()
		if boolAttr(c, xmlnames.AttrMixed) {
			ct.Mixed = true
		}
		return readChildren(c, r.derivation)
	default:
		// anyAttribute, group references, assertions
		return skip(c)
	}
}

func (r *ComplexTypeReader) derivation(c xmlcursor.Cursor) error {
	if !isXSD(c, xmlnames.Extension) && !isXSD(c, xmlnames.Restriction) {
		return skip(c)
	}
	r.result.Derivation = c.LocalName()
	r.result.Base = qnameAttr(c, xmlnames.AttrBase)
	return readChildren(c, r.child)
}

// particle reads one member of a compositor. Nested compositors are flattened
// into the type's element list.
func (r *ComplexTypeReader) particle(c xmlcursor.Cursor) error {
	ct := r.result
	if c.Namespace() != xmlnames.XSDNamespace {
		return skip(c)
	}
	switch c.LocalName() {
	case xmlnames.Element:
		er := NewElementReader(r.schema)
		if err := er.Read(c); err != nil {
			return err
		}
		ct.Elements = append(ct.Elements, er.Result())
		return nil
	case xmlnames.Sequence, xmlnames.All, xmlnames.Choice:
		return readChildren(c, r.particle)
	case xmlnames.Any:
		ct.HasAny = true
		return skip(c)
	default:
		return skip(c)
	}
}
