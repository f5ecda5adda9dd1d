package onix

import (
	"fmt"

	"github.com/thoth-pub/thoth-onix/work"
	"github.com/thoth-pub/thoth-onix/xmlw"
)

// supplyLocations returns the locations to render for a publication,
// synthesising a single PublisherWebsite location from the work's landing
// page when the publication has none. Locations are returned in a fixed
// order — landing-page location(s) before full-text-only locations — since
// the historical driver this is grounded on used an unordered map here and
// produced non-deterministic output; this reimplementation always orders
// explicitly instead.
func supplyLocations(p work.Publication, landingPage string) []work.Location {
	if len(p.Locations) > 0 {
		locs := make([]work.Location, len(p.Locations))
		copy(locs, p.Locations)
		ordered := make([]work.Location, 0, len(locs))
		for _, l := range locs {
			if l.LandingPage != "" {
				ordered = append(ordered, l)
			}
		}
		for _, l := range locs {
			if l.LandingPage == "" {
				ordered = append(ordered, l)
			}
		}
		return ordered
	}
	if landingPage == "" {
		return nil
	}
	return []work.Location{{
		LandingPage: landingPage,
		Platform:    work.LocationPublisherWebsite,
		Canonical:   true,
	}}
}

// writeProductSupply emits the ProductSupply block: Market=World, one
// SupplyDetail per location, ProductAvailability derived from work status,
// SupplyDate role 08, and per-currency prices (or UnpricedItemType=01 when
// the publication has no prices).
func writeProductSupply(w *xmlw.Writer, status work.Status, p work.Publication, publicationDate *string, landingPage string) error {
	return w.WriteElementBlock("ProductSupply", func(w *xmlw.Writer) error {
		if err := w.WriteElementBlock("Market", func(w *xmlw.Writer) error {
			return w.WriteElementBlock("Territory", func(w *xmlw.Writer) error {
				return w.WriteText("RegionsIncluded", "WORLD")
			})
		}); err != nil {
			return err
		}
		for _, loc := range supplyLocations(p, landingPage) {
			loc := loc
			if err := w.WriteElementBlock("SupplyDetail", func(w *xmlw.Writer) error {
				return writeSupplyDetail(w, status, p, loc, publicationDate)
			}); err != nil {
				return err
			}
		}
		return nil
	})
}

func writeSupplyDetail(w *xmlw.Writer, status work.Status, p work.Publication, loc work.Location, publicationDate *string) error {
	supplierRole, websiteRole, supplierName, description := supplierInfo(loc.Platform)
	if err := w.WriteElementBlock("Supplier", func(w *xmlw.Writer) error {
		if err := w.WriteText("SupplierRole", supplierRole); err != nil {
			return err
		}
		if supplierName != "" {
			if err := w.WriteText("SupplierName", supplierName); err != nil {
				return err
			}
		}
		url := loc.LandingPage
		if url == "" {
			url = loc.FullTextURL
		}
		if url == "" {
			return nil
		}
		return w.WriteElementBlock("Website", func(w *xmlw.Writer) error {
			if err := w.WriteText("WebsiteRole", websiteRole); err != nil {
				return err
			}
			if description != "" {
				if err := w.WriteText("WebsiteDescription", description); err != nil {
					return err
				}
			}
			return w.WriteText("WebsiteLink", url)
		})
	}); err != nil {
		return err
	}
	if err := w.WriteText("ProductAvailability", productAvailabilityCode(status)); err != nil {
		return err
	}
	if publicationDate != nil {
		if err := w.WriteElementBlock("SupplyDate", func(w *xmlw.Writer) error {
			if err := w.WriteText("SupplyDateRole", "08"); err != nil {
				return err
			}
			return w.WriteFullText("Date", []xmlw.Attr{{Name: "dateformat", Value: "00"}}, *publicationDate)
		}); err != nil {
			return err
		}
	}
	if len(p.Prices) == 0 {
		return w.WriteText("UnpricedItemType", "01")
	}
	for _, price := range p.Prices {
		price := price
		if err := w.WriteElementBlock("Price", func(w *xmlw.Writer) error {
			if err := w.WriteText("PriceType", "02"); err != nil {
				return err
			}
			if err := w.WriteText("PriceAmount", fmt.Sprintf("%.2f", price.UnitPrice)); err != nil {
				return err
			}
			if err := w.WriteText("CurrencyCode", price.CurrencyCode); err != nil {
				return err
			}
			return w.WriteElementBlock("Territory", func(w *xmlw.Writer) error {
				return w.WriteText("RegionsIncluded", "WORLD")
			})
		}); err != nil {
			return err
		}
	}
	return nil
}
