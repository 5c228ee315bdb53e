package xmlnames

const (
	// XSDNamespace is the XML Schema namespace URI.
	XSDNamespace = "http://www.w3.org/2001/XMLSchema"
	// WSDLNamespace is the WSDL 1.1 namespace URI.
	WSDLNamespace = "http://schemas.xmlsoap.org/wsdl/"
	// XMLNSNamespace is the XMLNS namespace URI.
	XMLNSNamespace = "http://www.w3.org/2000/xmlns/"
	// XSINamespace is the XML Schema instance namespace URI.
	XSINamespace = "http://www.w3.org/2001/XMLSchema-instance"
)

// Schema vocabulary local names.
const (
	Schema           = "schema"
	ComplexType      = "complexType"
	SimpleType       = "simpleType"
	Element          = "element"
	Attribute        = "attribute"
	AttributeGroup   = "attributeGroup"
	Annotation       = "annotation"
	Documentation    = "documentation"
	Import           = "import"
	Sequence         = "sequence"
	All              = "all"
	Choice           = "choice"
	Any              = "any"
	ComplexContent   = "complexContent"
	SimpleContent    = "simpleContent"
	Extension        = "extension"
	Restriction      = "restriction"
	Enumeration      = "enumeration"
	List             = "list"
	Union            = "union"
	TargetNamespace  = "targetNamespace"
	ElementFormDef   = "elementFormDefault"
	AttributeFormDef = "attributeFormDefault"
	SchemaLocation   = "schemaLocation"
	Qualified        = "qualified"
	Unbounded        = "unbounded"
	Definitions      = "definitions"
	Types            = "types"
	AttrName         = "name"
	AttrType         = "type"
	AttrRef          = "ref"
	AttrBase         = "base"
	AttrValue        = "value"
	AttrItemType     = "itemType"
	AttrMemberTypes  = "memberTypes"
	AttrMinOccurs    = "minOccurs"
	AttrMaxOccurs    = "maxOccurs"
	AttrNillable     = "nillable"
	AttrForm         = "form"
	AttrUse          = "use"
	AttrDefault      = "default"
	AttrFixed        = "fixed"
	AttrAbstract     = "abstract"
	AttrMixed        = "mixed"
)
