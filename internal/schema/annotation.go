package schema

import (
	"strings"

	"github.com/joedowns/wsc/internal/xmlnames"
	"github.com/joedowns/wsc/pkg/xmlcursor"
)

// Annotation holds the documentation of an annotated component.
type Annotation struct {
	Documentation []string
}

// Text joins the documentation entries.
func (a *Annotation) Text() string {
	if a == nil {
		return ""
	}
	return strings.Join(a.Documentation, "\n")
}

// AnnotationReader reads <annotation>. appinfo content is skipped.
type AnnotationReader struct {
	result *Annotation
}

// NewAnnotationReader creates an annotation reader.
func NewAnnotationReader() *AnnotationReader {
	return &AnnotationReader{}
}

// Result returns the annotation read by the last Read call.
func (r *AnnotationReader) Result() *Annotation {
	return r.result
}

// Read implements SubReader.
func (r *AnnotationReader) Read(c xmlcursor.Cursor) error {
	r.result = &Annotation{}
	return readChildren(c, func(c xmlcursor.Cursor) error {
		if !isXSD(c, xmlnames.Documentation) {
			return skip(c)
		}
		text, err := readText(c)
		if err != nil {
			return err
		}
		if text != "" {
			r.result.Documentation = append(r.result.Documentation, text)
		}
		return nil
	})
}

// readDocumentation reads an annotation child and returns its text.
func readDocumentation(c xmlcursor.Cursor) (string, error) {
	r := NewAnnotationReader()
	if err := r.Read(c); err != nil {
		return "", err
	}
	return r.Result().Text(), nil
}
