// Package dump renders loaded documents for the wsc command.
package dump

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/joedowns/wsc"
	"github.com/joedowns/wsc/internal/config"
)

type documentView struct {
	Name            string       `yaml:"name,omitempty"`
	TargetNamespace string       `yaml:"targetNamespace,omitempty"`
	Standalone      bool         `yaml:"standalone,omitempty"`
	Schemas         []schemaView `yaml:"schemas"`
}

type schemaView struct {
	TargetNamespace      string               `yaml:"targetNamespace"`
	ElementFormDefault   string               `yaml:"elementFormDefault,omitempty"`
	AttributeFormDefault string               `yaml:"attributeFormDefault,omitempty"`
	ComplexTypes         []complexTypeView    `yaml:"complexTypes,omitempty"`
	SimpleTypes          []simpleTypeView     `yaml:"simpleTypes,omitempty"`
	Elements             []elementView        `yaml:"elements,omitempty"`
	Attributes           []attributeView      `yaml:"attributes,omitempty"`
	AttributeGroups      []attributeGroupView `yaml:"attributeGroups,omitempty"`
}

type complexTypeView struct {
	Name            string          `yaml:"name"`
	Base            string          `yaml:"base,omitempty"`
	Derivation      string          `yaml:"derivation,omitempty"`
	Compositor      string          `yaml:"compositor,omitempty"`
	Abstract        bool            `yaml:"abstract,omitempty"`
	Mixed           bool            `yaml:"mixed,omitempty"`
	Any             bool            `yaml:"any,omitempty"`
	Elements        []elementView   `yaml:"elements,omitempty"`
	Attributes      []attributeView `yaml:"attributes,omitempty"`
	AttributeGroups []string        `yaml:"attributeGroups,omitempty"`
	Documentation   string          `yaml:"documentation,omitempty"`
}

type simpleTypeView struct {
	Name          string   `yaml:"name"`
	Base          string   `yaml:"base,omitempty"`
	ItemType      string   `yaml:"itemType,omitempty"`
	MemberTypes   []string `yaml:"memberTypes,omitempty"`
	Enumerations  []string `yaml:"enumerations,omitempty"`
	Documentation string   `yaml:"documentation,omitempty"`
}

type elementView struct {
	Name          string `yaml:"name"`
	Type          string `yaml:"type,omitempty"`
	Ref           string `yaml:"ref,omitempty"`
	MinOccurs     int    `yaml:"minOccurs"`
	MaxOccurs     string `yaml:"maxOccurs"`
	Nillable      bool   `yaml:"nillable,omitempty"`
	Anonymous     bool   `yaml:"anonymous,omitempty"`
	Documentation string `yaml:"documentation,omitempty"`
}

type attributeView struct {
	Name    string `yaml:"name"`
	Type    string `yaml:"type,omitempty"`
	Ref     string `yaml:"ref,omitempty"`
	Use     string `yaml:"use,omitempty"`
	Default string `yaml:"default,omitempty"`
	Fixed   string `yaml:"fixed,omitempty"`
}

type attributeGroupView struct {
	Name            string          `yaml:"name"`
	Attributes      []attributeView `yaml:"attributes,omitempty"`
	AttributeGroups []string        `yaml:"attributeGroups,omitempty"`
}

// Write renders doc in the given format: config.OutputYAML lists every
// registry with names sorted, config.OutputText prints each table's summary line.
func Write(w io.Writer, doc *wsc.Document, format string, indent int) error {
	switch format {
	case config.OutputText:
		return writeText(w, doc)
	case config.OutputYAML:
		return writeYAML(w, doc, indent)
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

func writeText(w io.Writer, doc *wsc.Document) error {
	for _, s := range doc.Schemas() {
		if _, err := fmt.Fprintln(w, s.String()); err != nil {
			return fmt.Errorf("write schema: %w", err)
		}
	}
	return nil
}

func writeYAML(w io.Writer, doc *wsc.Document, indent int) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(indent)
	if err := enc.Encode(newDocumentView(doc)); err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	return nil
}

func newDocumentView(doc *wsc.Document) documentView {
	view := documentView{
		Name:            doc.Name(),
		TargetNamespace: doc.TargetNamespace(),
		Standalone:      doc.Standalone(),
		Schemas:         make([]schemaView, 0, len(doc.Schemas())),
	}
	for _, s := range doc.Schemas() {
		view.Schemas = append(view.Schemas, newSchemaView(s))
	}
	return view
}

func newSchemaView(s *wsc.Schema) schemaView {
	view := schemaView{TargetNamespace: s.TargetNamespace()}
	view.ElementFormDefault, _ = s.ElementFormDefault()
	view.AttributeFormDefault, _ = s.AttributeFormDefault()

	for _, ct := range slices.SortedFunc(s.ComplexTypes(), byName(func(t *wsc.ComplexType) string { return t.Name })) {
		view.ComplexTypes = append(view.ComplexTypes, newComplexTypeView(ct))
	}
	for _, st := range slices.SortedFunc(s.SimpleTypes(), byName(func(t *wsc.SimpleType) string { return t.Name })) {
		view.SimpleTypes = append(view.SimpleTypes, simpleTypeView{
			Name:          st.Name,
			Base:          qnameString(st.Base),
			ItemType:      qnameString(st.ItemType),
			MemberTypes:   qnameStrings(st.MemberTypes),
			Enumerations:  st.Enumerations,
			Documentation: st.Documentation,
		})
	}
	for _, el := range slices.SortedFunc(s.Elements(), byName(func(e *wsc.Element) string { return e.Name })) {
		view.Elements = append(view.Elements, newElementView(el))
	}
	for _, attr := range slices.SortedFunc(s.Attributes(), byName(func(a *wsc.Attribute) string { return a.Name })) {
		view.Attributes = append(view.Attributes, newAttributeView(attr))
	}
	for _, group := range slices.SortedFunc(s.AttributeGroups(), byName(func(g *wsc.AttributeGroup) string { return g.Name })) {
		gv := attributeGroupView{Name: group.Name, AttributeGroups: qnameStrings(group.AttributeGroups)}
		for _, attr := range group.Attributes {
			gv.Attributes = append(gv.Attributes, newAttributeView(attr))
		}
		view.AttributeGroups = append(view.AttributeGroups, gv)
	}
	return view
}

func newComplexTypeView(ct *wsc.ComplexType) complexTypeView {
	view := complexTypeView{
		Name:            ct.Name,
		Base:            qnameString(ct.Base),
		Derivation:      ct.Derivation,
		Compositor:      ct.Compositor,
		Abstract:        ct.Abstract,
		Mixed:           ct.Mixed,
		Any:             ct.HasAny,
		AttributeGroups: qnameStrings(ct.AttributeGroups),
		Documentation:   ct.Documentation,
	}
	for _, el := range ct.Elements {
		view.Elements = append(view.Elements, newElementView(el))
	}
	for _, attr := range ct.Attributes {
		view.Attributes = append(view.Attributes, newAttributeView(attr))
	}
	return view
}

func newElementView(el *wsc.Element) elementView {
	maxOccurs := strconv.Itoa(el.MaxOccurs)
	if el.IsUnbounded() {
		maxOccurs = "unbounded"
	}
	return elementView{
		Name:          el.Name,
		Type:          qnameString(el.Type),
		Ref:           qnameString(el.Ref),
		MinOccurs:     el.MinOccurs,
		MaxOccurs:     maxOccurs,
		Nillable:      el.Nillable,
		Anonymous:     el.Anonymous,
		Documentation: el.Documentation,
	}
}

func newAttributeView(attr *wsc.Attribute) attributeView {
	return attributeView{
		Name:    attr.Name,
		Type:    qnameString(attr.Type),
		Ref:     qnameString(attr.Ref),
		Use:     attr.Use,
		Default: attr.Default,
		Fixed:   attr.Fixed,
	}
}

func byName[T any](name func(T) string) func(a, b T) int {
	return func(a, b T) int {
		return strings.Compare(name(a), name(b))
	}
}

func qnameString(name wsc.QName) string {
	if name.IsZero() {
		return ""
	}
	return name.String()
}

func qnameStrings(names []wsc.QName) []string {
	if len(names) == 0 {
		return nil
	}
	out := make([]string, 0, len(names))
	for _, name := range names {
		out = append(out, name.String())
	}
	return out
}
