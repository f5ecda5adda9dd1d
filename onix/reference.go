package onix

import (
	"github.com/thoth-pub/thoth-onix/work"
	"github.com/thoth-pub/thoth-onix/xmlw"
)

// writeReferences emits one RelatedProduct (code 34, "Cites") block per
// reference: DOI-keyed (ProductIDType 06) when present, otherwise the
// mandatory unstructured citation (ProductIDType 01).
func writeReferences(w *xmlw.Writer, refs []work.Reference) error {
	for _, r := range refs {
		r := r
		if err := w.WriteElementBlock("RelatedProduct", func(w *xmlw.Writer) error {
			if err := w.WriteText("ProductRelationCode", "34"); err != nil {
				return err
			}
			idType := "01"
			idValue := r.UnstructuredCitation
			if r.DOI != "" {
				idType = "06"
				idValue = r.DOI
			}
			return w.WriteElementBlock("ProductIdentifier", func(w *xmlw.Writer) error {
				if err := w.WriteText("ProductIDType", idType); err != nil {
					return err
				}
				if idType == "01" {
					if err := w.WriteText("IDTypeName", "Unstructured citation"); err != nil {
						return err
					}
				}
				return w.WriteText("IDValue", idValue)
			})
		}); err != nil {
			return err
		}
	}
	return nil
}
