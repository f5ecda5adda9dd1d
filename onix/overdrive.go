package onix

import "github.com/thoth-pub/thoth-onix/work"

// Overdrive is the OverDrive distributor dialect driver. Requires a
// publication date, a long abstract, at least one language, and at least
// one of {EPUB, PDF} with a canonical location carrying a full-text URL and
// at least one non-zero price including USD.
var Overdrive = driver{
	dialect:        DialectOverdrive,
	namespace:      "http://ns.editeur.org/onix/3.0/reference",
	schemaLocation: "http://ns.editeur.org/onix/3.0/reference http://www.editeur.org/onix/3.0/reference/onix-international.xsd",
	selectProducts: func(wk *work.Work) ([]productPlan, error) {
		if wk.PublicationDate == nil {
			return nil, missingErr(DialectOverdrive, "Missing Publication Date")
		}
		if _, ok := wk.Abstract(work.AbstractLong); !ok {
			return nil, missingErr(DialectOverdrive, "Missing Long Abstract")
		}
		if len(wk.Languages) == 0 {
			return nil, missingErr(DialectOverdrive, "Missing Language Code(s)")
		}
		pub, err := selectOverdrivePublication(wk)
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

// selectOverdrivePublication picks the main publication: prefer EPUB, fall
// back to PDF, requiring a canonical location with a full-text URL and at
// least one USD price among non-zero prices.
func selectOverdrivePublication(wk *work.Work) (work.Publication, error) {
	for _, wantType := range []work.PublicationType{work.PublicationEPUB, work.PublicationPDF} {
		for _, pub := range wk.Publications {
			if pub.Type != wantType {
				continue
			}
			if !hasCanonicalFullText(pub) {
				continue
			}
			if !hasNonZeroPrice(pub) {
				continue
			}
			if !hasUSDPrice(pub) {
				return work.Publication{}, missingErr(DialectOverdrive, "No USD price found")
			}
			return pub, nil
		}
	}
	return work.Publication{}, missingErr(DialectOverdrive, "No priced EPUB or PDF URL")
}

func hasCanonicalFullText(pub work.Publication) bool {
	for _, loc := range pub.Locations {
		if loc.Canonical && loc.FullTextURL != "" {
			return true
		}
	}
	return false
}

func hasNonZeroPrice(pub work.Publication) bool {
	for _, pr := range pub.Prices {
		if pr.UnitPrice > 0 {
			return true
		}
	}
	return false
}

func hasUSDPrice(pub work.Publication) bool {
	for _, pr := range pub.Prices {
		if pr.CurrencyCode == "USD" && pr.UnitPrice > 0 {
			return true
		}
	}
	return false
}
