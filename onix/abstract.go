package onix

import (
	"github.com/thoth-pub/thoth-onix/work"
	"github.com/thoth-pub/thoth-onix/xmlw"
)

// truncateCodepoints returns the codepoint-prefix of s of length
// min(limit, len(runes(s))), never splitting a multi-byte UTF-8 sequence.
func truncateCodepoints(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

// shortAbstract picks the Short abstract from abstracts, truncated to 350
// codepoints per the ONIX TextType 02 field-length constraint.
func shortAbstract(abstracts []work.Abstract) string {
	for _, a := range abstracts {
		if a.Type == work.AbstractShort {
			return truncateCodepoints(a.Content, 350)
		}
	}
	return ""
}

// longAbstract picks the Long abstract from abstracts, unmodified.
func longAbstract(abstracts []work.Abstract) (string, bool) {
	for _, a := range abstracts {
		if a.Type == work.AbstractLong {
			return a.Content, true
		}
	}
	return "", false
}

// writeShortAbstract emits the TextType 02 TextContent block.
func writeShortAbstract(w *xmlw.Writer, abstracts []work.Abstract) error {
	text := shortAbstract(abstracts)
	return w.WriteElementBlock("TextContent", func(w *xmlw.Writer) error {
		if err := w.WriteText("TextType", "02"); err != nil {
			return err
		}
		if err := w.WriteText("ContentAudience", "00"); err != nil {
			return err
		}
		return w.WriteText("Text", text)
	})
}

// writeLongAbstract emits the TextType 03 and 30 TextContent blocks, if a
// long abstract is present.
func writeLongAbstract(w *xmlw.Writer, abstracts []work.Abstract) error {
	text, ok := longAbstract(abstracts)
	if !ok {
		return nil
	}
	for _, textType := range []string{"03", "30"} {
		textType := textType
		if err := w.WriteElementBlock("TextContent", func(w *xmlw.Writer) error {
			if err := w.WriteText("TextType", textType); err != nil {
				return err
			}
			if err := w.WriteText("ContentAudience", "00"); err != nil {
				return err
			}
			return w.WriteText("Text", text)
		}); err != nil {
			return err
		}
	}
	return nil
}

// writeGeneralNote emits the TextType 13 TextContent block, if present.
func writeGeneralNote(w *xmlw.Writer, note string) error {
	if note == "" {
		return nil
	}
	return w.WriteElementBlock("TextContent", func(w *xmlw.Writer) error {
		if err := w.WriteText("TextType", "13"); err != nil {
			return err
		}
		if err := w.WriteText("ContentAudience", "00"); err != nil {
			return err
		}
		return w.WriteText("Text", note)
	})
}

// writeOpenAccessStatement emits the TextType 20 TextContent block when a
// licence is present.
func writeOpenAccessStatement(w *xmlw.Writer, licenseURL string) error {
	if licenseURL == "" {
		return nil
	}
	return w.WriteElementBlock("TextContent", func(w *xmlw.Writer) error {
		if err := w.WriteText("TextType", "20"); err != nil {
			return err
		}
		if err := w.WriteText("ContentAudience", "00"); err != nil {
			return err
		}
		return w.WriteFullText("Text", []xmlw.Attr{{Name: "language", Value: "eng"}}, "Open Access")
	})
}
