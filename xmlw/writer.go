// Package xmlw provides a small streaming XML writer: an indent-tracked
// sink with a single contract for emitting an element — open the tag, run a
// body continuation, close the tag — so that every element is guaranteed
// balanced on the success path and propagation is immediate on failure.
package xmlw

import (
	"fmt"
	"io"
	"strings"

	"github.com/thoth-pub/thoth-onix/onixerr"
)

// Attr is a single XML attribute rendered on an opening tag.
type Attr struct {
	Name  string
	Value string
}

// Writer wraps a byte sink and tracks indent depth. The zero value is not
// usable; construct with New.
type Writer struct {
	out    io.Writer
	depth  int
	err    error
	indent string
}

// New wraps w with a two-space-indent XML writer and emits the XML 1.0
// declaration as the first write.
func New(w io.Writer) (*Writer, error) {
	xw := &Writer{out: w, indent: "  "}
	if _, err := io.WriteString(xw.out, `<?xml version="1.0" encoding="UTF-8"?>`+"\n"); err != nil {
		return nil, onixerr.Internalf("writing XML declaration: %v", err)
	}
	return xw, nil
}

func (w *Writer) line(s string) {
	if w.err != nil {
		return
	}
	if _, err := io.WriteString(w.out, strings.Repeat(w.indent, w.depth)+s+"\n"); err != nil {
		w.err = onixerr.Internalf("writing XML output: %v", err)
	}
}

func (w *Writer) rawInline(s string) {
	if w.err != nil {
		return
	}
	if _, err := io.WriteString(w.out, s); err != nil {
		w.err = onixerr.Internalf("writing XML output: %v", err)
	}
}

func openTagBody(name string, attrs []Attr, namespaces []Attr) string {
	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(name)
	for _, ns := range namespaces {
		fmt.Fprintf(&b, ` %s="%s"`, ns.Name, EscapeAttr(ns.Value))
	}
	for _, a := range attrs {
		fmt.Fprintf(&b, ` %s="%s"`, a.Name, EscapeAttr(a.Value))
	}
	return b.String()
}

func openTag(name string, attrs []Attr, namespaces []Attr) string {
	return openTagBody(name, attrs, namespaces) + ">"
}

// WriteElementBlock emits <name>, invokes body, then emits </name>. body may
// call other WriteElementBlock/WriteText calls on the same writer to produce
// nested content. If body returns an error, that error is returned
// immediately and no closing tag is emitted for this call's children beyond
// what body already wrote; the caller is expected to discard the document.
func (w *Writer) WriteElementBlock(name string, body func(*Writer) error) error {
	return w.WriteFullElementBlock(name, nil, nil, body)
}

// WriteFullElementBlock is WriteElementBlock plus attributes and namespace
// declarations on the opening tag.
func (w *Writer) WriteFullElementBlock(name string, attrs, namespaces []Attr, body func(*Writer) error) error {
	if w.err != nil {
		return w.err
	}
	w.line(openTag(name, attrs, namespaces))
	w.depth++
	if err := body(w); err != nil {
		return err
	}
	if w.err != nil {
		return w.err
	}
	w.depth--
	w.line("</" + name + ">")
	return w.err
}

// WriteText writes a self-contained <name>text</name> leaf element, escaping
// text for XML content.
func (w *Writer) WriteText(name, text string) error {
	if w.err != nil {
		return w.err
	}
	w.line(fmt.Sprintf("<%s>%s</%s>", name, EscapeText(text), name))
	return w.err
}

// WriteFullText is WriteText plus attributes on the element.
func (w *Writer) WriteFullText(name string, attrs []Attr, text string) error {
	if w.err != nil {
		return w.err
	}
	tag := openTagBody(name, attrs, nil) + ">"
	w.rawInline(strings.Repeat(w.indent, w.depth) + tag + EscapeText(text) + "</" + name + ">\n")
	return w.err
}

// WriteEmpty writes a self-closed empty element, e.g. <MainSubject/>.
func (w *Writer) WriteEmpty(name string) error {
	if w.err != nil {
		return w.err
	}
	w.line("<" + name + "/>")
	return w.err
}

// EscapeText escapes the minimal set of characters required in XML text
// content.
func EscapeText(s string) string {
	r := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
	)
	return r.Replace(s)
}

// EscapeAttr escapes the minimal set of characters required in a
// double-quoted XML attribute value.
func EscapeAttr(s string) string {
	r := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
	)
	return r.Replace(s)
}
