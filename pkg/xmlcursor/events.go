package xmlcursor

import (
	"encoding/xml"
	"fmt"
	"io"
)

// Event is one pre-tokenized structural event.
type Event struct {
	Name   xml.Name
	Text   string
	Attrs  []xml.Attr
	Kind   Kind
	Line   int
	Column int
}

// StartEvent builds a start event for {namespace}local.
func StartEvent(namespace, local string, attrs ...xml.Attr) Event {
	return Event{Kind: KindStart, Name: xml.Name{Space: namespace, Local: local}, Attrs: attrs}
}

// EndEvent builds an end event for {namespace}local.
func EndEvent(namespace, local string) Event {
	return Event{Kind: KindEnd, Name: xml.Name{Space: namespace, Local: local}}
}

// OtherEvent builds a non-structural event such as a comment.
func OtherEvent() Event {
	return Event{Kind: KindOther}
}

// TextEvent builds a character data event.
func TextEvent(text string) Event {
	return Event{Kind: KindOther, Text: text}
}

// NewAttr builds an attribute for StartEvent.
func NewAttr(namespace, local, value string) xml.Attr {
	return xml.Attr{Name: xml.Name{Space: namespace, Local: local}, Value: value}
}

// Events is a Cursor over an event slice. The slice must not contain KindEOF
// events; running past the last event reports KindEOF.
type Events struct {
	events     []Event
	ns         nsStack
	index      int
	pendingPop bool
}

// NewEvents creates a cursor positioned on the first event.
func NewEvents(events []Event) *Events {
	c := &Events{events: events}
	c.enter()
	return c
}

// Tokenize reads r to the end and returns a cursor over its events.
func Tokenize(r io.Reader, opts ...Option) (*Events, error) {
	reader, err := NewReader(r, opts...)
	if err != nil {
		return nil, err
	}
	var events []Event
	for reader.Kind() != KindEOF {
		ev := Event{
			Kind:   reader.Kind(),
			Name:   reader.name,
			Text:   reader.text,
			Line:   reader.line,
			Column: reader.column,
		}
		if ev.Kind == KindStart {
			ev.Attrs = append([]xml.Attr(nil), reader.attrs...)
		}
		events = append(events, ev)
		if _, err := reader.Next(); err != nil {
			return nil, err
		}
	}
	return NewEvents(events), nil
}

// Index returns the offset of the current event; len(events) at end of input.
func (c *Events) Index() int {
	return c.index
}

// Len returns the number of events.
func (c *Events) Len() int {
	return len(c.events)
}

func (c *Events) current() (Event, bool) {
	if c.index >= len(c.events) {
		return Event{}, false
	}
	return c.events[c.index], true
}

// Kind returns the current event kind.
func (c *Events) Kind() Kind {
	ev, ok := c.current()
	if !ok {
		return KindEOF
	}
	return ev.Kind
}

// LocalName returns the local name of the current element event.
func (c *Events) LocalName() string {
	ev, _ := c.current()
	return ev.Name.Local
}

// Namespace returns the namespace URI of the current element event.
func (c *Events) Namespace() string {
	ev, _ := c.current()
	return ev.Name.Space
}

// Text returns the character data of the current event.
func (c *Events) Text() string {
	ev, _ := c.current()
	return ev.Text
}

// Attr looks up an attribute on the current start event.
func (c *Events) Attr(namespace, local string) (string, bool) {
	ev, ok := c.current()
	if !ok || ev.Kind != KindStart {
		return "", false
	}
	return lookupAttr(ev.Attrs, namespace, local)
}

// LookupPrefix resolves a namespace prefix in the scope of the current element.
func (c *Events) LookupPrefix(prefix string) (string, bool) {
	return c.ns.lookup(prefix)
}

// Position describes the current event by index and, when known, line.
func (c *Events) Position() string {
	ev, ok := c.current()
	if ok && ev.Line > 0 {
		return fmt.Sprintf("line %d, column %d", ev.Line, ev.Column)
	}
	return fmt.Sprintf("event %d", c.index)
}

// Next advances to the next event.
func (c *Events) Next() (Kind, error) {
	if c.index >= len(c.events) {
		return KindEOF, nil
	}
	if c.pendingPop {
		c.ns.pop()
		c.pendingPop = false
	}
	c.index++
	c.enter()
	return c.Kind(), nil
}

func (c *Events) enter() {
	ev, ok := c.current()
	if !ok {
		return
	}
	switch ev.Kind {
	case KindStart:
		c.ns.push(scopeFromAttrs(ev.Attrs))
	case KindEnd:
		c.pendingPop = true
	}
}
