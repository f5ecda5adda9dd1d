package onix

import "github.com/thoth-pub/thoth-onix/xmlw"

// writeCopyright emits a CopyrightStatement with a PersonName copyright
// owner, if a holder is set. The source data doesn't distinguish a person
// from a corporate copyright holder, so PersonName is used for both.
func writeCopyright(w *xmlw.Writer, copyrightHolder string) error {
	if copyrightHolder == "" {
		return nil
	}
	return w.WriteElementBlock("CopyrightStatement", func(w *xmlw.Writer) error {
		return w.WriteElementBlock("CopyrightOwner", func(w *xmlw.Writer) error {
			return w.WriteText("PersonName", copyrightHolder)
		})
	})
}
