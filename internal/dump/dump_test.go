package dump

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/joedowns/wsc"
	"github.com/joedowns/wsc/internal/config"
)

const ordersWSDL = `<definitions xmlns="http://schemas.xmlsoap.org/wsdl/" name="Orders" targetNamespace="urn:orders">
  <types>
    <xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema" xmlns:o="urn:orders" targetNamespace="urn:orders" elementFormDefault="qualified">
      <xs:simpleType name="Status">
        <xs:restriction base="xs:string">
          <xs:enumeration value="open"/>
          <xs:enumeration value="closed"/>
        </xs:restriction>
      </xs:simpleType>
      <xs:complexType name="Order">
        <xs:sequence>
          <xs:element name="id" type="xs:long"/>
          <xs:element name="line" type="o:Line" minOccurs="0" maxOccurs="unbounded"/>
        </xs:sequence>
        <xs:attributeGroup ref="o:audit"/>
      </xs:complexType>
      <xs:complexType name="Line">
        <xs:sequence>
          <xs:element name="sku" type="xs:string"/>
        </xs:sequence>
      </xs:complexType>
      <xs:element name="order" type="o:Order"/>
      <xs:attribute name="version" type="xs:int"/>
      <xs:attributeGroup name="audit">
        <xs:attribute name="createdBy" type="xs:string" use="required"/>
      </xs:attributeGroup>
    </xs:schema>
  </types>
</definitions>`

func loadOrders(t *testing.T) *wsc.Document {
	t.Helper()
	doc, err := wsc.Load(strings.NewReader(ordersWSDL))
	require.NoError(t, err)
	return doc
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, loadOrders(t), config.OutputYAML, 2))

	var got documentView
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))

	assert.Equal(t, "Orders", got.Name)
	require.Len(t, got.Schemas, 1)
	s := got.Schemas[0]
	assert.Equal(t, "urn:orders", s.TargetNamespace)
	assert.Equal(t, "qualified", s.ElementFormDefault)
	assert.Empty(t, s.AttributeFormDefault)

	require.Len(t, s.ComplexTypes, 2)
	assert.Equal(t, "Line", s.ComplexTypes[0].Name)
	assert.Equal(t, "Order", s.ComplexTypes[1].Name)
	order := s.ComplexTypes[1]
	assert.Equal(t, "sequence", order.Compositor)
	assert.Equal(t, []string{"{urn:orders}audit"}, order.AttributeGroups)
	require.Len(t, order.Elements, 2)
	assert.Equal(t, elementView{Name: "line", Type: "{urn:orders}Line", MinOccurs: 0, MaxOccurs: "unbounded"}, order.Elements[1])
	assert.Equal(t, "1", order.Elements[0].MaxOccurs)

	require.Len(t, s.SimpleTypes, 1)
	assert.Equal(t, []string{"open", "closed"}, s.SimpleTypes[0].Enumerations)
	assert.Equal(t, "{http://www.w3.org/2001/XMLSchema}string", s.SimpleTypes[0].Base)

	require.Len(t, s.Elements, 1)
	require.Len(t, s.Attributes, 1)
	require.Len(t, s.AttributeGroups, 1)
	assert.Equal(t, "required", s.AttributeGroups[0].Attributes[0].Use)
}

func TestWriteYAMLIndent(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, loadOrders(t), config.OutputYAML, 4))
	assert.Contains(t, buf.String(), "\n    - targetNamespace: urn:orders\n")
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	doc := loadOrders(t)
	require.NoError(t, Write(&buf, doc, config.OutputText, 2))
	assert.Equal(t, doc.Schemas()[0].String()+"\n", buf.String())
	assert.Contains(t, buf.String(), "ComplexType{name='Line', elements=[sku]}, ComplexType{name='Order'")
}

func TestWriteUnsupportedFormat(t *testing.T) {
	err := Write(&bytes.Buffer{}, loadOrders(t), "json", 2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")
}
