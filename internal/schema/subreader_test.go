package schema

import (
	"strings"
	"testing"

	"github.com/joedowns/wsc/internal/xmlnames"
	"github.com/joedowns/wsc/pkg/xmlcursor"
)

// matchingEnd returns the index of the end event closing the start at index.
func matchingEnd(t *testing.T, events []xmlcursor.Event, index int) int {
	t.Helper()
	depth := 0
	for i := index; i < len(events); i++ {
		switch events[i].Kind {
		case xmlcursor.KindStart:
			depth++
		case xmlcursor.KindEnd:
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	t.Fatalf("no end event for start at %d", index)
	return -1
}

func TestSubReadersStopOnOwnEndEvent(t *testing.T) {
	tests := []struct {
		name     string
		fragment string
		reader   func(*Schema) SubReader
	}{
		{
			name: "complexType",
			fragment: `<xsd:complexType name="T"><xsd:annotation><xsd:documentation>d</xsd:documentation></xsd:annotation>
<xsd:sequence><xsd:element name="e"><xsd:complexType><xsd:all><xsd:element name="n" type="xsd:int"/></xsd:all></xsd:complexType></xsd:element>
<xsd:sequence><xsd:any/></xsd:sequence><xsd:group ref="tns:G"/></xsd:sequence>
<xsd:attribute name="a"><xsd:simpleType><xsd:restriction base="xsd:string"/></xsd:simpleType></xsd:attribute>
<ext:hint xmlns:ext="urn:ext"><ext:deep/></ext:hint></xsd:complexType>`,
			reader: func(s *Schema) SubReader { return NewComplexTypeReader(s, "") },
		},
		{
			name:     "complexType self-closing",
			fragment: `<xsd:complexType name="Empty"/>`,
			reader:   func(s *Schema) SubReader { return NewComplexTypeReader(s, "") },
		},
		{
			name: "simpleType",
			fragment: `<xsd:simpleType name="S"><xsd:restriction base="xsd:string">
<xsd:enumeration value="a"><xsd:annotation/></xsd:enumeration><xsd:pattern value="[a-z]+"/></xsd:restriction></xsd:simpleType>`,
			reader: func(s *Schema) SubReader { return NewSimpleTypeReader(s, "") },
		},
		{
			name:     "element",
			fragment: `<xsd:element name="E"><xsd:complexType><xsd:sequence/></xsd:complexType><xsd:unique name="u"><xsd:selector xpath="."/></xsd:unique></xsd:element>`,
			reader:   func(s *Schema) SubReader { return NewElementReader(s) },
		},
		{
			name:     "attribute",
			fragment: `<xsd:attribute name="A"><xsd:annotation><xsd:documentation>x</xsd:documentation></xsd:annotation><xsd:simpleType><xsd:list itemType="xsd:int"/></xsd:simpleType></xsd:attribute>`,
			reader:   func(s *Schema) SubReader { return NewAttributeReader(s) },
		},
		{
			name:     "attributeGroup",
			fragment: `<xsd:attributeGroup name="G"><xsd:attribute name="a"/><xsd:attributeGroup ref="tns:H"/><xsd:anyAttribute/></xsd:attributeGroup>`,
			reader:   func(s *Schema) SubReader { return NewAttributeGroupReader(s) },
		},
		{
			name:     "annotation",
			fragment: `<xsd:annotation><xsd:appinfo><a><b/></a></xsd:appinfo><xsd:documentation>one</xsd:documentation></xsd:annotation>`,
			reader:   func(*Schema) SubReader { return NewAnnotationReader() },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := `<w xmlns:xsd="http://www.w3.org/2001/XMLSchema" xmlns:tns="urn:test">` + tt.fragment + `<after/></w>`
			var events []xmlcursor.Event
			c, err := xmlcursor.Tokenize(strings.NewReader(doc))
			if err != nil {
				t.Fatalf("Tokenize() error = %v", err)
			}
			for c.Kind() != xmlcursor.KindEOF {
				events = append(events, xmlcursor.Event{Kind: c.Kind()})
				if _, err := c.Next(); err != nil {
					t.Fatalf("Next() error = %v", err)
				}
			}

			c, _ = xmlcursor.Tokenize(strings.NewReader(doc))
			if _, err := c.Next(); err != nil {
				t.Fatalf("Next() error = %v", err)
			}
			local := c.LocalName()
			want := matchingEnd(t, events, c.Index())

			s := New(1, 0)
			if err := tt.reader(s).Read(c); err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			if c.Index() != want {
				t.Fatalf("Read() left cursor at event %d, want %d", c.Index(), want)
			}
			if !xmlcursor.Is(c, xmlcursor.KindEnd, xmlnames.XSDNamespace, local) {
				t.Fatalf("Read() left cursor on %v %s, want end of %s", c.Kind(), c.LocalName(), local)
			}
		})
	}
}

func TestSubReadersRejectNonStart(t *testing.T) {
	s := New(1, 0)
	readers := []SubReader{
		NewComplexTypeReader(s, ""),
		NewSimpleTypeReader(s, ""),
		NewElementReader(s),
		NewAttributeReader(s),
		NewAttributeGroupReader(s),
		NewAnnotationReader(),
	}
	for _, r := range readers {
		c := xmlcursor.NewEvents([]xmlcursor.Event{xmlcursor.EndEvent(xmlnames.XSDNamespace, "x")})
		if err := r.Read(c); err == nil {
			t.Fatalf("%T.Read() off start error = nil, want error", r)
		}
	}
}

func TestAnnotationReaderDocumentation(t *testing.T) {
	c, err := xmlcursor.Tokenize(strings.NewReader(`<xsd:annotation xmlns:xsd="http://www.w3.org/2001/XMLSchema">
  <xsd:documentation> first </xsd:documentation>
  <xsd:documentation/>
  <xsd:documentation>second <em>part</em></xsd:documentation>
</xsd:annotation>`))
	if err != nil {
		t.Fatalf("Tokenize() error = %v", err)
	}
	r := NewAnnotationReader()
	if err := r.Read(c); err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if got := r.Result().Text(); got != "first\nsecond part" {
		t.Fatalf("Text() = %q, want %q", got, "first\nsecond part")
	}
	var empty *Annotation
	if empty.Text() != "" {
		t.Fatalf("nil Annotation Text() not empty")
	}
}

func TestNamedTypeKeepsOwnName(t *testing.T) {
	c, err := xmlcursor.Tokenize(strings.NewReader(`<xsd:complexType xmlns:xsd="http://www.w3.org/2001/XMLSchema" name="Own"/>`))
	if err != nil {
		t.Fatalf("Tokenize() error = %v", err)
	}
	r := NewComplexTypeReader(New(1, 0), "Fallback_element")
	if err := r.Read(c); err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if r.Result().Name != "Own" {
		t.Fatalf("Name = %q, want Own", r.Result().Name)
	}
}
