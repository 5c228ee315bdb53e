package wsc

import "github.com/joedowns/wsc/pkg/xmlcursor"

type intOption struct {
	value int
	set   bool
}

func (o intOption) resolved() int {
	if !o.set {
		return 0
	}
	return o.value
}

type int64Option struct {
	value int64
	set   bool
}

func (o int64Option) resolved() int64 {
	if !o.set {
		return 0
	}
	return o.value
}

// LoadOptions configures document loading.
type LoadOptions struct {
	charsetReader    xmlcursor.CharsetReaderFunc
	maxDepth         intOption
	maxDocumentBytes int64Option
	charsetSet       bool
	standaloneSchema bool
}

type resolvedLoadOptions struct {
	cursorOptions    []xmlcursor.Option
	limits           parseLimits
	standaloneSchema bool
}

// NewLoadOptions returns a default, valid load options value.
func NewLoadOptions() LoadOptions {
	return LoadOptions{}
}

// Validate validates load options values.
func (o LoadOptions) Validate() error {
	_, err := o.withDefaults()
	return err
}

// WithStandaloneSchema controls whether a bare xsd:schema document is accepted
// in place of wsdl:definitions.
func (o LoadOptions) WithStandaloneSchema(value bool) LoadOptions {
	o.standaloneSchema = value
	return o
}

// WithCharsetReader replaces the IANA charset table used for non-UTF-8
// documents. A nil fn rejects them.
func (o LoadOptions) WithCharsetReader(fn xmlcursor.CharsetReaderFunc) LoadOptions {
	o.charsetReader = fn
	o.charsetSet = true
	return o
}

// WithMaxDepth sets the element nesting limit (0 uses default).
func (o LoadOptions) WithMaxDepth(value int) LoadOptions {
	o.maxDepth = intOption{value: value, set: true}
	return o
}

// WithMaxDocumentBytes sets the document size limit (0 uses default).
func (o LoadOptions) WithMaxDocumentBytes(value int64) LoadOptions {
	o.maxDocumentBytes = int64Option{value: value, set: true}
	return o
}

func (o LoadOptions) withDefaults() (resolvedLoadOptions, error) {
	limits, err := resolveParseLimits(o.maxDepth.resolved(), o.maxDocumentBytes.resolved())
	if err != nil {
		return resolvedLoadOptions{}, err
	}
	cursorOptions := limits.options()
	if o.charsetSet {
		cursorOptions = append(cursorOptions, xmlcursor.WithCharsetReader(o.charsetReader))
	}
	return resolvedLoadOptions{
		cursorOptions:    cursorOptions,
		limits:           limits,
		standaloneSchema: o.standaloneSchema,
	}, nil
}
