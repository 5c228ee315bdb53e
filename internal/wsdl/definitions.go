package wsdl

import (
	"errors"

	"github.com/untillpro/goutils/logger"

	xsderrors "github.com/joedowns/wsc/errors"
	"github.com/joedowns/wsc/internal/xmlnames"
	"github.com/joedowns/wsc/pkg/xmlcursor"
)

// Definitions is the part of a WSDL document the type binding stage needs.
type Definitions struct {
	Types           *Types
	Name            string
	TargetNamespace string
	// Standalone reports that the document was a bare XSD schema.
	Standalone bool
}

// ReadOptions configures ReadDefinitions.
type ReadOptions struct {
	// AllowStandaloneSchema accepts a document whose root is xsd:schema.
	AllowStandaloneSchema bool
}

// ReadDefinitions reads a WSDL 1.1 document from c. Messages, port types,
// bindings, services and WSDL imports are skipped; only the types section is
// read.
func ReadDefinitions(c xmlcursor.Cursor, opts ReadOptions) (*Definitions, error) {
	if err := xmlcursor.ToStart(c); err != nil {
		if errors.Is(err, xmlcursor.ErrNoElement) {
			return nil, xsderrors.NewParseError(xsderrors.ErrUnexpectedRoot, "empty document", c.Position())
		}
		return nil, xsderrors.WrapParseError(xsderrors.ErrXMLSyntax, "malformed XML", c.Position(), err)
	}

	defs := &Definitions{Types: NewTypes()}
	switch {
	case xmlcursor.Is(c, xmlcursor.KindStart, xmlnames.WSDLNamespace, xmlnames.Definitions):
		defs.Name, _ = c.Attr("", xmlnames.AttrName)
		defs.TargetNamespace, _ = c.Attr("", xmlnames.TargetNamespace)
		if err := readChildren(c, defs.readSection); err != nil {
			return nil, err
		}
	case opts.AllowStandaloneSchema && xmlcursor.Is(c, xmlcursor.KindStart, xmlnames.XSDNamespace, xmlnames.Schema):
		defs.Standalone = true
		if err := defs.Types.ReadSchema(c); err != nil {
			return nil, err
		}
		defs.TargetNamespace = defs.Types.Schema(0).TargetNamespace()
	default:
		return nil, xsderrors.NewParseErrorf(xsderrors.ErrUnexpectedRoot, c.Position(),
			"root element must be wsdl:definitions, got {%s}%s", c.Namespace(), c.LocalName())
	}
	return defs, nil
}

func (d *Definitions) readSection(c xmlcursor.Cursor) error {
	if xmlcursor.Is(c, xmlcursor.KindStart, xmlnames.WSDLNamespace, xmlnames.Types) {
		return d.Types.Read(c)
	}
	if logger.IsVerbose() {
		logger.Verbose("definitions: skipping {" + c.Namespace() + "}" + c.LocalName())
	}
	return skip(c)
}
