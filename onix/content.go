package onix

import (
	"sort"
	"strconv"

	"github.com/thoth-pub/thoth-onix/work"
	"github.com/thoth-pub/thoth-onix/xmlw"
)

// childRelations returns HasChild relations whose related work carries a
// DOI, sorted by ordinal (stable, so ties keep input order).
func childRelations(relations []work.Relation) []work.Relation {
	var out []work.Relation
	for _, r := range relations {
		if r.Type == work.RelationHasChild && r.RelatedWork.DOI != "" {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Ordinal < out[j].Ordinal })
	return out
}

// writeContentDetail emits one ContentItem per qualifying HasChild
// relation. It writes nothing when no relation qualifies; callers use
// hasContentDetail to skip the wrapping ContentDetail element.
func writeContentDetail(w *xmlw.Writer, relations []work.Relation) error {
	chapters := childRelations(relations)
	for _, r := range chapters {
		r := r
		if err := w.WriteElementBlock("ContentItem", func(w *xmlw.Writer) error {
			return writeContentItem(w, r)
		}); err != nil {
			return err
		}
	}
	return nil
}

// hasContentDetail reports whether writeContentDetail would emit anything.
func hasContentDetail(relations []work.Relation) bool {
	return len(childRelations(relations)) > 0
}

func writeContentItem(w *xmlw.Writer, r work.Relation) error {
	rw := r.RelatedWork
	if err := w.WriteText("LevelSequenceNumber", strconv.Itoa(r.Ordinal)); err != nil {
		return err
	}
	if err := w.WriteElementBlock("TextItem", func(w *xmlw.Writer) error {
		if err := w.WriteText("TextItemType", "03"); err != nil {
			return err
		}
		if err := w.WriteElementBlock("TextItemIdentifier", func(w *xmlw.Writer) error {
			if err := w.WriteText("TextItemIDType", "06"); err != nil {
				return err
			}
			return w.WriteText("IDValue", rw.DOI)
		}); err != nil {
			return err
		}
		if rw.FirstPage != "" && rw.LastPage != "" {
			if err := w.WriteElementBlock("PageRun", func(w *xmlw.Writer) error {
				if err := w.WriteText("FirstPageNumber", rw.FirstPage); err != nil {
					return err
				}
				return w.WriteText("LastPageNumber", rw.LastPage)
			}); err != nil {
				return err
			}
		}
		if rw.PageCount > 0 {
			if err := w.WriteText("NumberOfPages", strconv.Itoa(rw.PageCount)); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		return err
	}
	if err := writeEpubLicense(w, rw.License); err != nil {
		return err
	}
	if err := w.WriteText("ComponentTypeName", "Chapter"); err != nil {
		return err
	}
	if title, ok := canonicalTitle(rw.Titles); ok {
		if err := writeTitle(w, title.Title, title.Subtitle); err != nil {
			return err
		}
	}
	contributions := make([]work.Contribution, len(rw.Contributions))
	copy(contributions, rw.Contributions)
	sortContributions(contributions)
	if err := writeContributions(w, contributions); err != nil {
		return err
	}
	if err := writeLanguages(w, rw.Languages); err != nil {
		return err
	}
	if err := writeShortAbstract(w, rw.Abstracts); err != nil {
		return err
	}
	if err := writeLongAbstract(w, rw.Abstracts); err != nil {
		return err
	}
	if err := writeOpenAccessStatement(w, rw.License); err != nil {
		return err
	}
	if err := writeGeneralNote(w, rw.GeneralNote); err != nil {
		return err
	}
	if err := writeCopyright(w, rw.CopyrightHolder); err != nil {
		return err
	}
	return writeReferences(w, rw.References)
}

func canonicalTitle(titles []work.Title) (work.Title, bool) {
	for _, t := range titles {
		if t.Canonical {
			return t, true
		}
	}
	if len(titles) > 0 {
		return titles[0], true
	}
	return work.Title{}, false
}
