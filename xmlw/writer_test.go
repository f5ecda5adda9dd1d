package xmlw

import (
	"strings"
	"testing"
)

func TestNewEmitsDeclaration(t *testing.T) {
	var buf strings.Builder
	if _, err := New(&buf); err != nil {
		t.Fatalf("New: unexpected error: %v", err)
	}
	want := `<?xml version="1.0" encoding="UTF-8"?>` + "\n"
	if buf.String() != want {
		t.Errorf("New wrote %q, want %q", buf.String(), want)
	}
}

func TestWriteElementBlockNesting(t *testing.T) {
	var buf strings.Builder
	w, err := New(&buf)
	if err != nil {
		t.Fatal(err)
	}
	err = w.WriteElementBlock("Outer", func(w *Writer) error {
		return w.WriteText("Inner", "hello")
	})
	if err != nil {
		t.Fatalf("WriteElementBlock: unexpected error: %v", err)
	}
	got := buf.String()
	if !strings.Contains(got, "<Outer>\n  <Inner>hello</Inner>\n</Outer>\n") {
		t.Errorf("WriteElementBlock output = %q, missing expected nested block", got)
	}
}

func TestWriteElementBlockPropagatesBodyError(t *testing.T) {
	var buf strings.Builder
	w, err := New(&buf)
	if err != nil {
		t.Fatal(err)
	}
	sentinel := strings.NewReader("")
	_ = sentinel
	bodyErr := &fakeErr{"body failed"}
	err = w.WriteElementBlock("Outer", func(w *Writer) error {
		return bodyErr
	})
	if err != bodyErr {
		t.Errorf("WriteElementBlock error = %v, want %v", err, bodyErr)
	}
}

type fakeErr struct{ msg string }

func (e *fakeErr) Error() string { return e.msg }

func TestWriteFullElementBlockAttrsAndNamespaces(t *testing.T) {
	var buf strings.Builder
	w, err := New(&buf)
	if err != nil {
		t.Fatal(err)
	}
	err = w.WriteFullElementBlock("Root",
		[]Attr{{Name: "xsi:schemaLocation", Value: "http://example.org/schema"}},
		[]Attr{{Name: "xmlns", Value: "http://example.org/ns"}},
		func(w *Writer) error { return nil },
	)
	if err != nil {
		t.Fatal(err)
	}
	got := buf.String()
	if !strings.Contains(got, `<Root xmlns="http://example.org/ns" xsi:schemaLocation="http://example.org/schema">`) {
		t.Errorf("WriteFullElementBlock output = %q, missing expected opening tag", got)
	}
}

func TestWriteFullTextAttrs(t *testing.T) {
	var buf strings.Builder
	w, err := New(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.WriteFullText("Date", []Attr{{Name: "dateformat", Value: "00"}}, "20200101"); err != nil {
		t.Fatal(err)
	}
	want := `<Date dateformat="00">20200101</Date>` + "\n"
	if !strings.Contains(buf.String(), want) {
		t.Errorf("WriteFullText output = %q, want substring %q", buf.String(), want)
	}
}

func TestWriteEmpty(t *testing.T) {
	var buf strings.Builder
	w, err := New(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.WriteEmpty("MainSubject"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "<MainSubject/>\n") {
		t.Errorf("WriteEmpty output = %q, missing self-closed tag", buf.String())
	}
}

func TestEscapeText(t *testing.T) {
	cases := map[string]string{
		"plain":          "plain",
		"a & b":          "a &amp; b",
		"<tag>":          "&lt;tag&gt;",
		`quote " stays`:  `quote " stays`,
	}
	for in, want := range cases {
		if got := EscapeText(in); got != want {
			t.Errorf("EscapeText(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestEscapeAttr(t *testing.T) {
	if got := EscapeAttr(`a "quoted" <value> & more`); got != `a &quot;quoted&quot; &lt;value&gt; &amp; more` {
		t.Errorf("EscapeAttr output = %q", got)
	}
}

func TestWriteTextEscapesContent(t *testing.T) {
	var buf strings.Builder
	w, err := New(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.WriteText("Title", "Cats & Dogs <Really>"); err != nil {
		t.Fatal(err)
	}
	want := "<Title>Cats &amp; Dogs &lt;Really&gt;</Title>\n"
	if !strings.Contains(buf.String(), want) {
		t.Errorf("WriteText output = %q, want substring %q", buf.String(), want)
	}
}
