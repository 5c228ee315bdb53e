package schema

import (
	"fmt"

	"github.com/untillpro/goutils/logger"

	xsderrors "github.com/joedowns/wsc/errors"
	"github.com/joedowns/wsc/internal/xmlnames"
	"github.com/joedowns/wsc/pkg/xmlcursor"
)

// childKind classifies a direct child of <schema>.
type childKind uint8

const (
	kindUnsupported childKind = iota
	kindComplexType
	kindSimpleType
	kindElement
	kindAttribute
	kindAttributeGroup
	kindAnnotation
	kindSchema
	kindImport
)

var childKinds = map[QName]childKind{
	{Namespace: xmlnames.XSDNamespace, Local: xmlnames.ComplexType}:    kindComplexType,
	{Namespace: xmlnames.XSDNamespace, Local: xmlnames.SimpleType}:     kindSimpleType,
	{Namespace: xmlnames.XSDNamespace, Local: xmlnames.Element}:        kindElement,
	{Namespace: xmlnames.XSDNamespace, Local: xmlnames.Attribute}:      kindAttribute,
	{Namespace: xmlnames.XSDNamespace, Local: xmlnames.AttributeGroup}: kindAttributeGroup,
	{Namespace: xmlnames.XSDNamespace, Local: xmlnames.Annotation}:     kindAnnotation,
	{Namespace: xmlnames.XSDNamespace, Local: xmlnames.Schema}:         kindSchema,
	{Namespace: xmlnames.XSDNamespace, Local: xmlnames.Import}:         kindImport,
}

func classify(namespace, local string) childKind {
	return childKinds[QName{Namespace: namespace, Local: local}]
}

// Read fills the table from the schema block the cursor is positioned on.
//
// On success every child has been registered and the cursor is on the block's
// closing event. On failure the registries are partially filled and the table
// must be discarded. The cursor is borrowed and never closed.
func (s *Schema) Read(c xmlcursor.Cursor) error {
	s.targetNamespace = attrOption(c, xmlnames.TargetNamespace)
	s.elementFormDefault = attrOption(c, xmlnames.ElementFormDef)
	s.attributeFormDefault = attrOption(c, xmlnames.AttributeFormDef)

	for kind := c.Kind(); ; {
		switch kind {
		case xmlcursor.KindStart:
			if err := s.readChild(c); err != nil {
				return err
			}
		case xmlcursor.KindEnd:
			if isXSD(c, xmlnames.Schema) {
				return s.finish()
			}
		case xmlcursor.KindEOF:
			return missingEndTag(xmlnames.Schema, c)
		}

		var err error
		if kind, err = advance(c); err != nil {
			return err
		}
	}
}

func (s *Schema) finish() error {
	if !s.targetNamespace.set {
		return xsderrors.NewParseError(xsderrors.ErrMissingTargetNamespace, "schema:targetNamespace can not be null", "")
	}
	return nil
}

// readChild delegates the child start event the cursor is on. Registry readers
// return with the cursor on the child's end event.
func (s *Schema) readChild(c xmlcursor.Cursor) error {
	switch classify(c.Namespace(), c.LocalName()) {
	case kindComplexType:
		r := NewComplexTypeReader(s, "")
		if err := r.Read(c); err != nil {
			return fmt.Errorf("read complexType: %w", err)
		}
		s.putComplexType(r.Result())
	case kindSimpleType:
		r := NewSimpleTypeReader(s, "")
		if err := r.Read(c); err != nil {
			return fmt.Errorf("read simpleType: %w", err)
		}
		s.putSimpleType(r.Result())
	case kindElement:
		r := NewElementReader(s)
		if err := r.Read(c); err != nil {
			return fmt.Errorf("read element: %w", err)
		}
		s.putElement(r.Result())
	case kindAttribute:
		r := NewAttributeReader(s)
		if err := r.Read(c); err != nil {
			return fmt.Errorf("read attribute: %w", err)
		}
		s.putAttribute(r.Result())
	case kindAttributeGroup:
		r := NewAttributeGroupReader(s)
		if err := r.Read(c); err != nil {
			return fmt.Errorf("read attributeGroup: %w", err)
		}
		s.putAttributeGroup(r.Result())
	case kindAnnotation:
		if err := NewAnnotationReader().Read(c); err != nil {
			return fmt.Errorf("read annotation: %w", err)
		}
		if logger.IsVerbose() {
			logger.Verbose("schema", s.targetNamespace.value, "skipped annotation at", c.Position())
		}
	case kindSchema:
		// header tag
	case kindImport:
		location, ok := c.Attr("", xmlnames.SchemaLocation)
		if ok && location != "" {
			return xsderrors.NewParseErrorf(xsderrors.ErrExternalImport, c.Position(),
				"found schema import from location %s. External schema import not supported", location)
		}
		if logger.IsVerbose() {
			ns, _ := c.Attr("", "namespace")
			logger.Verbose("schema", s.targetNamespace.value, "import of", ns, "without location ignored")
		}
	default:
		return xsderrors.NewParseErrorf(xsderrors.ErrUnsupportedElement, c.Position(),
			"unsupported schema element found %s:%s", c.Namespace(), c.LocalName())
	}
	return nil
}
