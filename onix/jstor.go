package onix

import "github.com/thoth-pub/thoth-onix/work"

// JSTOR is the JSTOR distributor dialect driver. Not present in the kept
// original sources; derived from the spec's description ("JSTOR requires a
// JSTOR-platform location") by analogy with OverDrive's gate shape.
var JSTOR = driver{
	dialect:        DialectJSTOR,
	namespace:      "http://ns.editeur.org/onix/3.0/reference",
	schemaLocation: "http://ns.editeur.org/onix/3.0/reference http://www.editeur.org/onix/3.0/reference/onix-international.xsd",
	selectProducts: func(wk *work.Work) ([]productPlan, error) {
		pub, err := selectPublicationWithPlatform(wk, DialectJSTOR, work.LocationJSTOR)
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

func selectPublicationWithPlatform(wk *work.Work, dialect Dialect, platform work.LocationPlatform) (work.Publication, error) {
	for _, pub := range wk.Publications {
		for _, loc := range pub.Locations {
			if loc.Platform == platform {
				return pub, nil
			}
		}
	}
	return work.Publication{}, missingErr(dialect, "No "+string(platform)+" location found")
}
