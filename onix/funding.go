package onix

import (
	"github.com/thoth-pub/thoth-onix/work"
	"github.com/thoth-pub/thoth-onix/xmlw"
)

// writeFundings emits one Publisher block per funding, role 16 (funding
// body). fullIdentifierSet selects between the 3.1 Thoth profile's five
// proprietary identifiers and the reduced three-identifier set used by the
// OverDrive dialect (which never carried projectshortname/jurisdiction).
func writeFundings(w *xmlw.Writer, fundings []work.Funding, fullIdentifierSet bool) error {
	for _, f := range fundings {
		f := f
		if err := w.WriteElementBlock("Publisher", func(w *xmlw.Writer) error {
			return writeFunding(w, f, fullIdentifierSet)
		}); err != nil {
			return err
		}
	}
	return nil
}

func writeFunding(w *xmlw.Writer, f work.Funding, fullIdentifierSet bool) error {
	if err := w.WriteText("PublishingRole", "16"); err != nil {
		return err
	}
	if f.Institution.ROR != "" {
		if err := w.WriteElementBlock("PublisherIdentifier", func(w *xmlw.Writer) error {
			if err := w.WriteText("PublisherIDType", "40"); err != nil {
				return err
			}
			return w.WriteText("IDValue", f.Institution.ROR)
		}); err != nil {
			return err
		}
	}
	if f.Institution.DOI != "" {
		if err := w.WriteElementBlock("PublisherIdentifier", func(w *xmlw.Writer) error {
			if err := w.WriteText("PublisherIDType", "32"); err != nil {
				return err
			}
			return w.WriteText("IDValue", f.Institution.DOI)
		}); err != nil {
			return err
		}
	}
	if err := w.WriteText("PublisherName", f.Institution.Name); err != nil {
		return err
	}

	type ident struct{ name, value string }
	idents := []ident{
		{"programname", f.Program},
		{"projectname", f.ProjectName},
		{"grantnumber", f.GrantNumber},
	}
	if fullIdentifierSet {
		idents = []ident{
			{"programname", f.Program},
			{"projectname", f.ProjectName},
			{"projectshortname", f.ProjectShortname},
			{"grantnumber", f.GrantNumber},
			{"jurisdiction", f.Jurisdiction},
		}
	}
	any := false
	for _, id := range idents {
		if id.value != "" {
			any = true
			break
		}
	}
	if !any {
		return nil
	}
	return w.WriteElementBlock("Funding", func(w *xmlw.Writer) error {
		for _, id := range idents {
			if id.value == "" {
				continue
			}
			id := id
			if err := w.WriteElementBlock("FundingIdentifier", func(w *xmlw.Writer) error {
				if err := w.WriteText("FundingIDType", "01"); err != nil {
					return err
				}
				if err := w.WriteText("IDTypeName", id.name); err != nil {
					return err
				}
				return w.WriteText("IDValue", id.value)
			}); err != nil {
				return err
			}
		}
		return nil
	})
}
