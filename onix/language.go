package onix

import (
	"strings"

	"github.com/thoth-pub/thoth-onix/work"
	"github.com/thoth-pub/thoth-onix/xmlw"
)

// writeLanguages emits one Language block per language.
func writeLanguages(w *xmlw.Writer, languages []work.Language) error {
	for _, l := range languages {
		l := l
		if err := w.WriteElementBlock("Language", func(w *xmlw.Writer) error {
			if err := w.WriteText("LanguageRole", languageRoleCode(l.Relation)); err != nil {
				return err
			}
			return w.WriteText("LanguageCode", strings.ToLower(l.Code))
		}); err != nil {
			return err
		}
	}
	return nil
}
