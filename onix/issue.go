package onix

import (
	"strconv"
	"strings"

	"github.com/thoth-pub/thoth-onix/work"
	"github.com/thoth-pub/thoth-onix/xmlw"
)

// writeIssues emits one Collection block per issue: collection type 10
// (publisher collection, e.g. series), the series' proprietary id, optional
// ISSN and URLs, a publication-order sequence, and a cover-title TitleDetail
// carrying the issue's part number.
func writeIssues(w *xmlw.Writer, issues []work.Issue) error {
	for _, iss := range issues {
		iss := iss
		if err := w.WriteElementBlock("Collection", func(w *xmlw.Writer) error {
			return writeIssue(w, iss)
		}); err != nil {
			return err
		}
	}
	return nil
}

func writeIssue(w *xmlw.Writer, iss work.Issue) error {
	if err := w.WriteText("CollectionType", "10"); err != nil {
		return err
	}
	if err := w.WriteElementBlock("CollectionIdentifier", func(w *xmlw.Writer) error {
		if err := w.WriteText("CollectionIDType", "01"); err != nil {
			return err
		}
		if err := w.WriteText("IDTypeName", "Series ID"); err != nil {
			return err
		}
		return w.WriteText("IDValue", iss.Series.ID.String())
	}); err != nil {
		return err
	}
	if iss.Series.ISSNDigital != "" {
		if err := w.WriteElementBlock("CollectionIdentifier", func(w *xmlw.Writer) error {
			if err := w.WriteText("CollectionIDType", "02"); err != nil {
				return err
			}
			return w.WriteText("IDValue", strings.ReplaceAll(iss.Series.ISSNDigital, "-", ""))
		}); err != nil {
			return err
		}
	}
	if iss.Series.URL != "" {
		if err := w.WriteElementBlock("CollectionIdentifier", func(w *xmlw.Writer) error {
			if err := w.WriteText("CollectionIDType", "01"); err != nil {
				return err
			}
			if err := w.WriteText("IDTypeName", "Series URL"); err != nil {
				return err
			}
			return w.WriteText("IDValue", iss.Series.URL)
		}); err != nil {
			return err
		}
	}
	if iss.Series.CFPURL != "" {
		if err := w.WriteElementBlock("CollectionIdentifier", func(w *xmlw.Writer) error {
			if err := w.WriteText("CollectionIDType", "01"); err != nil {
				return err
			}
			if err := w.WriteText("IDTypeName", "Series Call for Proposals URL"); err != nil {
				return err
			}
			return w.WriteText("IDValue", iss.Series.CFPURL)
		}); err != nil {
			return err
		}
	}
	ordinal := strconv.Itoa(iss.Ordinal)
	if err := w.WriteElementBlock("CollectionSequence", func(w *xmlw.Writer) error {
		if err := w.WriteText("CollectionSequenceType", "03"); err != nil {
			return err
		}
		return w.WriteText("CollectionSequenceNumber", ordinal)
	}); err != nil {
		return err
	}
	return w.WriteElementBlock("TitleDetail", func(w *xmlw.Writer) error {
		if err := w.WriteText("TitleType", "01"); err != nil {
			return err
		}
		return w.WriteElementBlock("TitleElement", func(w *xmlw.Writer) error {
			if err := w.WriteText("TitleElementLevel", "02"); err != nil {
				return err
			}
			if err := w.WriteText("PartNumber", ordinal); err != nil {
				return err
			}
			return w.WriteText("TitleText", iss.Series.Name)
		})
	})
}
