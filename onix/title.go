package onix

import "github.com/thoth-pub/thoth-onix/xmlw"

// writeTitle emits a TitleDetail block: type 01 (distinctive title), a
// single TitleElement at product level (01) with TitleText and an optional
// Subtitle.
func writeTitle(w *xmlw.Writer, title, subtitle string) error {
	return w.WriteElementBlock("TitleDetail", func(w *xmlw.Writer) error {
		if err := w.WriteText("TitleType", "01"); err != nil {
			return err
		}
		return w.WriteElementBlock("TitleElement", func(w *xmlw.Writer) error {
			if err := w.WriteText("TitleElementLevel", "01"); err != nil {
				return err
			}
			if err := w.WriteText("TitleText", title); err != nil {
				return err
			}
			if subtitle != "" {
				return w.WriteText("Subtitle", subtitle)
			}
			return nil
		})
	})
}
