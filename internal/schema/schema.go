package schema

import (
	"fmt"
	"iter"
	"maps"
	"strings"

	"github.com/joedowns/wsc/internal/qname"
	"github.com/joedowns/wsc/internal/xiter"
	"github.com/joedowns/wsc/internal/xmlnames"
)

// QName is a resolved type or declaration reference.
type QName = qname.QName

// OwnerID identifies the container that holds a schema table.
type OwnerID uint64

// SchemaRef is the handle an entity keeps to the table that owns it.
// It is an identifier, never a pointer, so entities do not keep tables alive.
type SchemaRef struct {
	Owner OwnerID
	Index int
}

type stringOption struct {
	value string
	set   bool
}

func (o stringOption) String() string {
	if !o.set {
		return "<nil>"
	}
	return o.value
}

// Schema is the registry table built from one inline <schema> block.
//
// A table is filled by exactly one Read call. After a successful Read it is
// never mutated again and may be shared between goroutines. A table whose Read
// failed must be discarded.
type Schema struct {
	complexTypes         map[string]*ComplexType
	simpleTypes          map[string]*SimpleType
	elements             map[string]*Element
	attributes           map[string]*Attribute
	attributeGroups      map[string]*AttributeGroup
	anonymousTypes       map[string]int
	targetNamespace      stringOption
	elementFormDefault   stringOption
	attributeFormDefault stringOption
	ref                  SchemaRef
}

// New creates an empty table owned by container owner at position index.
func New(owner OwnerID, index int) *Schema {
	return &Schema{
		complexTypes:    make(map[string]*ComplexType),
		simpleTypes:     make(map[string]*SimpleType),
		elements:        make(map[string]*Element),
		attributes:      make(map[string]*Attribute),
		attributeGroups: make(map[string]*AttributeGroup),
		anonymousTypes:  make(map[string]int),
		ref:             SchemaRef{Owner: owner, Index: index},
	}
}

// Ref returns the handle entities of this table carry.
func (s *Schema) Ref() SchemaRef {
	return s.ref
}

// Owner returns the container the table belongs to.
func (s *Schema) Owner() OwnerID {
	return s.ref.Owner
}

// TargetNamespace returns the namespace the block defines its names in.
func (s *Schema) TargetNamespace() string {
	return s.targetNamespace.value
}

// ElementFormDefault returns the raw elementFormDefault literal.
func (s *Schema) ElementFormDefault() (string, bool) {
	return s.elementFormDefault.value, s.elementFormDefault.set
}

// AttributeFormDefault returns the raw attributeFormDefault literal.
func (s *Schema) AttributeFormDefault() (string, bool) {
	return s.attributeFormDefault.value, s.attributeFormDefault.set
}

// IsElementFormQualified reports whether elementFormDefault is exactly "qualified".
func (s *Schema) IsElementFormQualified() bool {
	return s.elementFormDefault.set && s.elementFormDefault.value == xmlnames.Qualified
}

// IsAttributeFormQualified reports whether attributeFormDefault is exactly "qualified".
func (s *Schema) IsAttributeFormQualified() bool {
	return s.attributeFormDefault.set && s.attributeFormDefault.value == xmlnames.Qualified
}

// ComplexType returns the complex type registered under name, or nil.
func (s *Schema) ComplexType(name string) *ComplexType {
	return s.complexTypes[name]
}

// SimpleType returns the simple type registered under name, or nil.
func (s *Schema) SimpleType(name string) *SimpleType {
	return s.simpleTypes[name]
}

// Element returns the global element registered under name, or nil.
func (s *Schema) Element(name string) *Element {
	return s.elements[name]
}

// Attribute returns the global attribute registered under name, or nil.
func (s *Schema) Attribute(name string) *Attribute {
	return s.attributes[name]
}

// AttributeGroup returns the attribute group registered under name, or nil.
func (s *Schema) AttributeGroup(name string) *AttributeGroup {
	return s.attributeGroups[name]
}

// ComplexTypes yields the registered complex types in no particular order.
func (s *Schema) ComplexTypes() iter.Seq[*ComplexType] {
	return maps.Values(s.complexTypes)
}

// SimpleTypes yields the registered simple types in no particular order.
func (s *Schema) SimpleTypes() iter.Seq[*SimpleType] {
	return maps.Values(s.simpleTypes)
}

// Elements yields the global elements in no particular order.
func (s *Schema) Elements() iter.Seq[*Element] {
	return maps.Values(s.elements)
}

// Attributes yields the global attributes in no particular order.
func (s *Schema) Attributes() iter.Seq[*Attribute] {
	return maps.Values(s.attributes)
}

// AttributeGroups yields the attribute groups in no particular order.
func (s *Schema) AttributeGroups() iter.Seq[*AttributeGroup] {
	return maps.Values(s.attributeGroups)
}

// FindAttribute searches the global attributes for name.
func (s *Schema) FindAttribute(name string) *Attribute {
	attr, _ := xiter.Find(s.Attributes(), func(a *Attribute) bool { return a.Name == name })
	return attr
}

// FindAttributeGroup searches the attribute groups for name.
func (s *Schema) FindAttributeGroup(name string) *AttributeGroup {
	group, _ := xiter.Find(s.AttributeGroups(), func(g *AttributeGroup) bool { return g.Name == name })
	return group
}

// Len returns the number of entries of every registry combined.
func (s *Schema) Len() int {
	return len(s.complexTypes) + len(s.simpleTypes) + len(s.elements) + len(s.attributes) + len(s.attributeGroups)
}

// String lists the namespace, the form defaults and the complex type registry.
func (s *Schema) String() string {
	var b strings.Builder
	b.WriteString("Schema{")
	fmt.Fprintf(&b, "targetNamespace='%s'", s.targetNamespace)
	fmt.Fprintf(&b, ", elementFormDefault='%s'", s.elementFormDefault)
	fmt.Fprintf(&b, ", attributeFormDefault='%s'", s.attributeFormDefault)
	b.WriteString(", complexTypes=[")
	sep := ""
	for ct := range xiter.ValuesBySortedKeys(s.complexTypes) {
		b.WriteString(sep)
		b.WriteString(ct.String())
		sep = ", "
	}
	b.WriteString("]}")
	return b.String()
}

// put* insert by the entity's discovered name; an existing entry is replaced.

func (s *Schema) putComplexType(ct *ComplexType) {
	s.complexTypes[ct.Name] = ct
}

func (s *Schema) putSimpleType(st *SimpleType) {
	s.simpleTypes[st.Name] = st
}

func (s *Schema) putElement(el *Element) {
	s.elements[el.Name] = el
}

func (s *Schema) putAttribute(attr *Attribute) {
	s.attributes[attr.Name] = attr
}

func (s *Schema) putAttributeGroup(group *AttributeGroup) {
	s.attributeGroups[group.Name] = group
}

// typeName qualifies a name defined by this block.
func (s *Schema) typeName(local string) QName {
	return QName{Namespace: s.targetNamespace.value, Local: local}
}
