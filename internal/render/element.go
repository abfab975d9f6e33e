package render

import (
	"html"
	"sort"
	"strings"
)

// Element is the renderable building block the media and section renderers
// produce. Text and attribute values are escaped on write; RawHTML is
// emitted verbatim and reserved for author-trusted rich text.
//
// An Element with an empty Tag is a fragment: only its children are written.
type Element struct {
	Tag      string
	Classes  []string
	Attrs    map[string]string
	Text     string
	RawHTML  string
	Children []*Element
}

var voidTags = map[string]bool{
	"img":   true,
	"br":    true,
	"hr":    true,
	"input": true,
}

func NewElement(tag string, classes ...string) *Element {
	return &Element{Tag: tag, Classes: classes}
}

func Fragment(children ...*Element) *Element {
	return &Element{Children: children}
}

func (e *Element) AddClass(classes ...string) *Element {
	e.Classes = append(e.Classes, classes...)
	return e
}

func (e *Element) SetAttr(key, value string) *Element {
	if e.Attrs == nil {
		e.Attrs = make(map[string]string)
	}
	e.Attrs[key] = value
	return e
}

func (e *Element) SetText(text string) *Element {
	e.Text = text
	return e
}

// SetRawHTML marks content as trusted markup, written without escaping.
func (e *Element) SetRawHTML(markup string) *Element {
	e.RawHTML = markup
	return e
}

func (e *Element) Append(children ...*Element) *Element {
	for _, c := range children {
		if c != nil {
			e.Children = append(e.Children, c)
		}
	}
	return e
}

// HTML serializes the element tree. Attributes are written in sorted key
// order so output is deterministic.
func (e *Element) HTML() string {
	var sb strings.Builder
	e.writeTo(&sb)
	return sb.String()
}

func (e *Element) writeTo(sb *strings.Builder) {
	if e == nil {
		return
	}

	if e.Tag == "" {
		e.writeInner(sb)
		return
	}

	sb.WriteByte('<')
	sb.WriteString(e.Tag)

	if len(e.Classes) > 0 {
		sb.WriteString(` class="`)
		sb.WriteString(html.EscapeString(strings.Join(e.Classes, " ")))
		sb.WriteByte('"')
	}

	if len(e.Attrs) > 0 {
		keys := make([]string, 0, len(e.Attrs))
		for k := range e.Attrs {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			sb.WriteByte(' ')
			sb.WriteString(k)
			sb.WriteString(`="`)
			sb.WriteString(html.EscapeString(e.Attrs[k]))
			sb.WriteByte('"')
		}
	}

	if voidTags[e.Tag] {
		sb.WriteByte('>')
		return
	}

	sb.WriteByte('>')
	e.writeInner(sb)
	sb.WriteString("</")
	sb.WriteString(e.Tag)
	sb.WriteByte('>')
}

func (e *Element) writeInner(sb *strings.Builder) {
	if e.Text != "" {
		sb.WriteString(html.EscapeString(e.Text))
	}
	if e.RawHTML != "" {
		sb.WriteString(e.RawHTML)
	}
	for _, c := range e.Children {
		c.writeTo(sb)
	}
}
