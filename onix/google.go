package onix

import "github.com/thoth-pub/thoth-onix/work"

// Google is the Google Books distributor dialect driver. Not present in the
// kept original sources; derived from the spec's one-line description
// ("Google requires a landing page") by analogy with OverDrive's gate
// shape. Selects the first publication carrying at least one non-zero
// price (its locations are not checked), same Product assembly as
// generic 3.0.
var Google = driver{
	dialect:        DialectGoogle,
	namespace:      "http://ns.editeur.org/onix/3.0/reference",
	schemaLocation: "http://ns.editeur.org/onix/3.0/reference http://www.editeur.org/onix/3.0/reference/onix-international.xsd",
	selectProducts: func(wk *work.Work) ([]productPlan, error) {
		if wk.LandingPage == "" {
			return nil, missingErr(DialectGoogle, "Missing Landing Page")
		}
		pub, err := selectFirstPricedPublication(wk, DialectGoogle)
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

// selectFirstPricedPublication picks the first publication carrying at
// least one non-zero price. Used by the Google dialect; JSTOR and ProQuest
// select by location platform instead (selectPublicationWithPlatform).
func selectFirstPricedPublication(wk *work.Work, dialect Dialect) (work.Publication, error) {
	for _, pub := range wk.Publications {
		if hasNonZeroPrice(pub) {
			return pub, nil
		}
	}
	return work.Publication{}, missingErr(dialect, "No priced publication found")
}
