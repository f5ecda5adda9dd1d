package onix

import "github.com/thoth-pub/thoth-onix/work"

// Thoth31 is the ONIX 3.1 Thoth profile driver: one Product per
// Publication (not per Work), so a multi-ISBN Work yields multiple records
// that cross-link to each other via RelatedMaterial. Carries both work and
// publication proprietary identifiers, the full five-identifier Funding
// set, and chapter-level ContentDetail.
var Thoth31 = driver{
	dialect:        DialectThoth31,
	namespace:      "http://ns.editeur.org/onix/3.1/reference",
	schemaLocation: "http://ns.editeur.org/onix/3.1/reference http://www.editeur.org/onix/3.1/reference/onix-international.xsd",
	selectProducts: func(wk *work.Work) ([]productPlan, error) {
		if len(wk.Publications) == 0 {
			return nil, missingErr(DialectThoth31, "No publications supplied")
		}
		plans := make([]productPlan, 0, len(wk.Publications))
		for _, pub := range wk.Publications {
			plans = append(plans, productPlan{
				publication: pub,
				opts: productOptions{
					recordReference:       "urn:uuid:" + pub.ID.String(),
					includeWorkID:          true,
					includePublicationID:   true,
					fullFundingIdentifiers: true,
					includeContentDetail:   true,
					siblingISBNs:           siblingISBNs(wk, pub),
				},
			})
		}
		return plans, nil
	},
}
