package wsc

import (
	"github.com/joedowns/wsc/internal/qname"
	"github.com/joedowns/wsc/internal/schema"
)

// QName is a qualified name with namespace and local part.
type QName = qname.QName

// Schema is the registry table built from one inline schema block.
type Schema = schema.Schema

// SchemaRef identifies a table within the document that owns it.
type SchemaRef = schema.SchemaRef

// ComplexType is a complex type definition.
type ComplexType = schema.ComplexType

// SimpleType is a simple type definition.
type SimpleType = schema.SimpleType

// Element is an element declaration.
type Element = schema.Element

// Attribute is an attribute declaration.
type Attribute = schema.Attribute

// AttributeGroup is an attribute group definition.
type AttributeGroup = schema.AttributeGroup

// Unbounded is the MaxOccurs value of maxOccurs="unbounded".
const Unbounded = schema.Unbounded
