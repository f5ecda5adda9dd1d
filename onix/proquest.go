package onix

import "github.com/thoth-pub/thoth-onix/work"

// Proquest is the ProQuest distributor dialect driver. Not present in the
// kept original sources; derived by the same analogy as JSTOR.
var Proquest = driver{
	dialect:        DialectProquest,
	namespace:      "http://ns.editeur.org/onix/3.0/reference",
	schemaLocation: "http://ns.editeur.org/onix/3.0/reference http://www.editeur.org/onix/3.0/reference/onix-international.xsd",
	selectProducts: func(wk *work.Work) ([]productPlan, error) {
		pub, err := selectPublicationWithPlatform(wk, DialectProquest, work.LocationProquest)
		if err != nil {
			return nil, err
		}
		return []productPlan{{
			publication: pub,
			opts: productOptions{
				recordReference: "urn:uuid:" + wk.ID.String(),
				siblingISBNs:    siblingISBNs(wk, pub),
			},
		}}, nil
	},
}
