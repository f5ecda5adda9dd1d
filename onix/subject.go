package onix

import (
	"github.com/thoth-pub/thoth-onix/work"
	"github.com/thoth-pub/thoth-onix/xmlw"
)

// writeSubjects emits one Subject block per subject, marking the first
// ordinal==1 subject per distinct type with an empty MainSubject element.
func writeSubjects(w *xmlw.Writer, subjects []work.Subject) error {
	seenMain := map[work.SubjectType]bool{}
	for _, s := range subjects {
		s := s
		main := s.Ordinal == 1 && !seenMain[s.Type]
		if main {
			seenMain[s.Type] = true
		}
		if err := w.WriteElementBlock("Subject", func(w *xmlw.Writer) error {
			if main {
				if err := w.WriteEmpty("MainSubject"); err != nil {
					return err
				}
			}
			if err := w.WriteText("SubjectSchemeIdentifier", subjectSchemeIdentifierCode(s.Type)); err != nil {
				return err
			}
			if subjectUsesHeadingText(s.Type) {
				return w.WriteText("SubjectHeadingText", s.Code)
			}
			return w.WriteText("SubjectCode", s.Code)
		}); err != nil {
			return err
		}
	}
	return nil
}
