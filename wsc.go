package wsc

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joedowns/wsc/internal/wsdl"
	"github.com/joedowns/wsc/pkg/xmlcursor"
)

// Document is a loaded WSDL document reduced to its type definitions.
type Document struct {
	defs *wsdl.Definitions
}

// Load reads a WSDL document from r with default options.
func Load(r io.Reader) (*Document, error) {
	return LoadWithOptions(r, NewLoadOptions())
}

// LoadWithOptions reads a WSDL document from r with explicit configuration.
func LoadWithOptions(r io.Reader, opts LoadOptions) (*Document, error) {
	if r == nil {
		return nil, fmt.Errorf("load wsdl: nil reader")
	}
	resolved, err := opts.withDefaults()
	if err != nil {
		return nil, fmt.Errorf("load wsdl: %w", err)
	}
	c, err := xmlcursor.NewReader(&limitReader{r: r, max: resolved.limits.maxDocumentBytes}, resolved.cursorOptions...)
	if err != nil {
		return nil, fmt.Errorf("load wsdl: %w", err)
	}
	defs, err := wsdl.ReadDefinitions(c, wsdl.ReadOptions{AllowStandaloneSchema: resolved.standaloneSchema})
	if err != nil {
		return nil, fmt.Errorf("load wsdl: %w", err)
	}
	return &Document{defs: defs}, nil
}

// LoadFS reads the WSDL document at location in fsys.
func LoadFS(fsys fs.FS, location string, opts LoadOptions) (doc *Document, err error) {
	if fsys == nil {
		return nil, fmt.Errorf("load wsdl %s: nil fs", location)
	}
	f, err := fsys.Open(location)
	if err != nil {
		return nil, fmt.Errorf("load wsdl %s: %w", location, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close wsdl %s: %w", location, closeErr)
		}
	}()

	doc, err = LoadWithOptions(f, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", location, err)
	}
	return doc, nil
}

// LoadFile reads a WSDL document from a file path.
func LoadFile(path string) (*Document, error) {
	return LoadFS(os.DirFS(filepath.Dir(path)), filepath.Base(path), NewLoadOptions())
}

// Name returns the definitions name attribute.
func (d *Document) Name() string {
	return d.defs.Name
}

// TargetNamespace returns the definitions target namespace, or the schema's
// for a standalone schema document.
func (d *Document) TargetNamespace() string {
	return d.defs.TargetNamespace
}

// Standalone reports whether the document was a bare schema.
func (d *Document) Standalone() bool {
	return d.defs.Standalone
}

// Schemas returns the schema tables in document order.
func (d *Document) Schemas() []*Schema {
	return d.defs.Types.Schemas()
}

// SchemaFor returns the first table whose target namespace is namespace, or nil.
func (d *Document) SchemaFor(namespace string) *Schema {
	return d.defs.Types.SchemaFor(namespace)
}

// Resolve returns the table ref points to, or nil when ref belongs to another document.
func (d *Document) Resolve(ref SchemaRef) *Schema {
	return d.defs.Types.Resolve(ref)
}

// ComplexType looks up a complex type by qualified name across all tables.
func (d *Document) ComplexType(name QName) *ComplexType {
	for s := range d.defs.Types.All() {
		if s.TargetNamespace() != name.Namespace {
			continue
		}
		if ct := s.ComplexType(name.Local); ct != nil {
			return ct
		}
	}
	return nil
}

// SimpleType looks up a simple type by qualified name across all tables.
func (d *Document) SimpleType(name QName) *SimpleType {
	for s := range d.defs.Types.All() {
		if s.TargetNamespace() != name.Namespace {
			continue
		}
		if st := s.SimpleType(name.Local); st != nil {
			return st
		}
	}
	return nil
}
