package onix

import "github.com/thoth-pub/thoth-onix/work"

// Generic30 is the generic ONIX 3.0 dialect driver: one Product per Work,
// with no distributor-specific preconditions beyond requiring at least one
// Publication to render.
var Generic30 = driver{
	dialect:        DialectGeneric30,
	namespace:      "http://ns.editeur.org/onix/3.0/reference",
	schemaLocation: "http://ns.editeur.org/onix/3.0/reference http://www.editeur.org/onix/3.0/reference/onix-international.xsd",
	selectProducts: func(wk *work.Work) ([]productPlan, error) {
		if len(wk.Publications) == 0 {
			return nil, missingErr(DialectGeneric30, "Not enough data")
		}
		pub := wk.Publications[0]
		return []productPlan{{
			publication: pub,
			opts: productOptions{
				recordReference: "urn:uuid:" + wk.ID.String(),
				siblingISBNs:    siblingISBNs(wk, pub),
			},
		}}, nil
	},
}
