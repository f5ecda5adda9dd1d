package onix

import (
	"sort"

	"github.com/thoth-pub/thoth-onix/work"
	"github.com/thoth-pub/thoth-onix/xmlw"
)

func isTranslationRelation(t work.RelationType) bool {
	return t == work.RelationHasTranslation || t == work.RelationIsTranslationOf
}

func isChildRelation(t work.RelationType) bool {
	return t == work.RelationHasChild || t == work.RelationIsChildOf
}

// nonChildRelations returns relations other than HasChild/IsChildOf whose
// related work carries a DOI, ordered translation relations first (stable
// within each group, preserving input order — ordinal ties keep input
// order per the spec's tiebreak rule).
func nonChildRelations(relations []work.Relation) []work.Relation {
	var out []work.Relation
	for _, r := range relations {
		if isChildRelation(r.Type) {
			continue
		}
		if r.RelatedWork.DOI == "" {
			continue
		}
		out = append(out, r)
	}
	sort.SliceStable(out, func(i, j int) bool {
		ti, tj := isTranslationRelation(out[i].Type), isTranslationRelation(out[j].Type)
		if ti == tj {
			return false
		}
		return ti
	})
	return out
}

// writeRelatedMaterial emits, in order: translation/part/replacement
// relations (translations first), one RelatedProduct per sibling ISBN
// (excluding currentISBN), then one RelatedProduct per reference. Callers
// use hasAnyRelatedMaterial to skip an empty RelatedMaterial wrapper.
func writeRelatedMaterial(w *xmlw.Writer, relations []work.Relation, siblingISBNs []string, currentISBN string, references []work.Reference) error {
	for _, r := range nonChildRelations(relations) {
		r := r
		if err := writeWorkRelation(w, r); err != nil {
			return err
		}
	}
	for _, isbn := range siblingISBNs {
		if isbn == "" || isbn == currentISBN {
			continue
		}
		isbn := isbn
		if err := w.WriteElementBlock("RelatedProduct", func(w *xmlw.Writer) error {
			if err := w.WriteText("ProductRelationCode", "06"); err != nil {
				return err
			}
			return w.WriteElementBlock("ProductIdentifier", func(w *xmlw.Writer) error {
				if err := w.WriteText("ProductIDType", "15"); err != nil {
					return err
				}
				return w.WriteText("IDValue", isbn)
			})
		}); err != nil {
			return err
		}
	}
	return writeReferences(w, references)
}

func writeWorkRelation(w *xmlw.Writer, r work.Relation) error {
	if isTranslationRelation(r.Type) {
		return w.WriteElementBlock("RelatedWork", func(w *xmlw.Writer) error {
			if err := w.WriteText("WorkRelationCode", workRelationCode(r.Type)); err != nil {
				return err
			}
			return w.WriteElementBlock("WorkIdentifier", func(w *xmlw.Writer) error {
				if err := w.WriteText("WorkIDType", "06"); err != nil {
					return err
				}
				return w.WriteText("IDValue", r.RelatedWork.DOI)
			})
		})
	}
	return w.WriteElementBlock("RelatedProduct", func(w *xmlw.Writer) error {
		if err := w.WriteText("ProductRelationCode", relatedProductRelationCode(r.Type)); err != nil {
			return err
		}
		return w.WriteElementBlock("ProductIdentifier", func(w *xmlw.Writer) error {
			if err := w.WriteText("ProductIDType", "06"); err != nil {
				return err
			}
			return w.WriteText("IDValue", r.RelatedWork.DOI)
		})
	})
}

// hasAnyRelatedMaterial reports whether writeRelatedMaterial would emit
// anything, so callers can skip the wrapping RelatedMaterial element.
func hasAnyRelatedMaterial(relations []work.Relation, siblingISBNs []string, currentISBN string, references []work.Reference) bool {
	if len(nonChildRelations(relations)) > 0 {
		return true
	}
	for _, isbn := range siblingISBNs {
		if isbn != "" && isbn != currentISBN {
			return true
		}
	}
	return len(references) > 0
}
