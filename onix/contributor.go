package onix

import (
	"strconv"

	"github.com/thoth-pub/thoth-onix/work"
	"github.com/thoth-pub/thoth-onix/xmlw"
)

// writeContributions emits one Contributor block per contribution, in the
// order given (callers sort by Ordinal beforehand).
func writeContributions(w *xmlw.Writer, contributions []work.Contribution) error {
	for _, c := range contributions {
		c := c
		if err := w.WriteElementBlock("Contributor", func(w *xmlw.Writer) error {
			return writeContribution(w, c)
		}); err != nil {
			return err
		}
	}
	return nil
}

func writeContribution(w *xmlw.Writer, c work.Contribution) error {
	if err := w.WriteText("SequenceNumber", strconv.Itoa(c.Ordinal)); err != nil {
		return err
	}
	if err := w.WriteText("ContributorRole", contributorRoleCode(c.Type)); err != nil {
		return err
	}
	if c.Contributor.ORCID != "" {
		if err := w.WriteElementBlock("NameIdentifier", func(w *xmlw.Writer) error {
			if err := w.WriteText("NameIDType", "21"); err != nil {
				return err
			}
			return w.WriteText("IDValue", c.Contributor.ORCID)
		}); err != nil {
			return err
		}
	}
	if err := w.WriteText("PersonName", c.FullName); err != nil {
		return err
	}
	if c.FirstName != "" {
		if err := w.WriteText("NamesBeforeKey", c.FirstName); err != nil {
			return err
		}
	}
	if err := w.WriteText("KeyNames", c.LastName); err != nil {
		return err
	}
	for _, aff := range c.Affiliations {
		aff := aff
		if err := w.WriteElementBlock("ProfessionalAffiliation", func(w *xmlw.Writer) error {
			return writeAffiliation(w, aff)
		}); err != nil {
			return err
		}
	}
	if c.Biography != "" {
		if err := w.WriteText("BiographicalNote", c.Biography); err != nil {
			return err
		}
	}
	if c.Contributor.Website != "" {
		if err := w.WriteElementBlock("Website", func(w *xmlw.Writer) error {
			if err := w.WriteText("WebsiteRole", "06"); err != nil {
				return err
			}
			if err := w.WriteText("WebsiteDescription", "Own website"); err != nil {
				return err
			}
			return w.WriteText("WebsiteLink", c.Contributor.Website)
		}); err != nil {
			return err
		}
	}
	return nil
}

func writeAffiliation(w *xmlw.Writer, aff work.Affiliation) error {
	if aff.Position != "" {
		if err := w.WriteText("ProfessionalPosition", aff.Position); err != nil {
			return err
		}
	}
	if aff.Institution.ROR != "" {
		if err := w.WriteElementBlock("AffiliationIdentifier", func(w *xmlw.Writer) error {
			if err := w.WriteText("AffiliationIDType", "40"); err != nil {
				return err
			}
			return w.WriteText("IDValue", aff.Institution.ROR)
		}); err != nil {
			return err
		}
	}
	return w.WriteText("Affiliation", aff.Institution.Name)
}
