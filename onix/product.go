package onix

import (
	"strconv"

	"github.com/thoth-pub/thoth-onix/work"
	"github.com/thoth-pub/thoth-onix/xmlw"
)

// productOptions parameterises writeProduct across dialects: which
// identifiers to carry, whether Funding uses the full five-identifier set,
// and whether ContentDetail (chapter rendering) applies.
type productOptions struct {
	recordReference        string
	includeWorkID           bool
	includePublicationID    bool
	fullFundingIdentifiers  bool
	includeContentDetail    bool
	siblingISBNs            []string
}

// writeProduct emits a single <Product> for wk rendered against pub,
// following the fixed child order DescriptiveDetail -> CollateralDetail
// (if present) -> ContentDetail (if present) -> PublishingDetail ->
// RelatedMaterial (if present) -> ProductSupply.
func writeProduct(w *xmlw.Writer, wk *work.Work, pub work.Publication, opts productOptions) error {
	return w.WriteElementBlock("Product", func(w *xmlw.Writer) error {
		if err := w.WriteText("RecordReference", opts.recordReference); err != nil {
			return err
		}
		if err := w.WriteText("NotificationType", "03"); err != nil {
			return err
		}
		if err := w.WriteText("RecordSourceType", "01"); err != nil {
			return err
		}
		if err := writeProductIdentifiers(w, wk, pub, opts); err != nil {
			return err
		}
		if err := w.WriteElementBlock("DescriptiveDetail", func(w *xmlw.Writer) error {
			return writeDescriptiveDetail(w, wk, pub, opts)
		}); err != nil {
			return err
		}
		if hasCollateralDetail(wk) {
			if err := w.WriteElementBlock("CollateralDetail", func(w *xmlw.Writer) error {
				return writeCollateralDetail(w, wk)
			}); err != nil {
				return err
			}
		}
		if opts.includeContentDetail && hasContentDetail(wk.Relations) {
			if err := w.WriteElementBlock("ContentDetail", func(w *xmlw.Writer) error {
				return writeContentDetail(w, wk.Relations)
			}); err != nil {
				return err
			}
		}
		if err := w.WriteElementBlock("PublishingDetail", func(w *xmlw.Writer) error {
			return writePublishingDetail(w, wk, opts)
		}); err != nil {
			return err
		}
		if hasAnyRelatedMaterial(wk.Relations, opts.siblingISBNs, pub.ISBN, wk.References) {
			if err := w.WriteElementBlock("RelatedMaterial", func(w *xmlw.Writer) error {
				return writeRelatedMaterial(w, wk.Relations, opts.siblingISBNs, pub.ISBN, wk.References)
			}); err != nil {
				return err
			}
		}
		var pubDate *string
		if wk.PublicationDate != nil {
			s := wk.PublicationDate.Format("20060102")
			pubDate = &s
		}
		return writeProductSupply(w, wk.Status, pub, pubDate, wk.LandingPage)
	})
}

func writeProductIdentifiers(w *xmlw.Writer, wk *work.Work, pub work.Publication, opts productOptions) error {
	if opts.includeWorkID {
		if err := writeProprietaryID(w, "thoth-work-id", wk.ID.String()); err != nil {
			return err
		}
	}
	if opts.includePublicationID {
		if err := writeProprietaryID(w, "thoth-publication-id", pub.ID.String()); err != nil {
			return err
		}
	}
	if pub.ISBN != "" {
		if err := w.WriteElementBlock("ProductIdentifier", func(w *xmlw.Writer) error {
			if err := w.WriteText("ProductIDType", "15"); err != nil {
				return err
			}
			return w.WriteText("IDValue", pub.ISBN)
		}); err != nil {
			return err
		}
	}
	if wk.DOI != "" {
		if err := w.WriteElementBlock("ProductIdentifier", func(w *xmlw.Writer) error {
			if err := w.WriteText("ProductIDType", "06"); err != nil {
				return err
			}
			return w.WriteText("IDValue", wk.DOI)
		}); err != nil {
			return err
		}
	}
	if wk.LCCN != "" {
		if err := w.WriteElementBlock("ProductIdentifier", func(w *xmlw.Writer) error {
			if err := w.WriteText("ProductIDType", "13"); err != nil {
				return err
			}
			return w.WriteText("IDValue", wk.LCCN)
		}); err != nil {
			return err
		}
	}
	if wk.OCLC != "" {
		if err := w.WriteElementBlock("ProductIdentifier", func(w *xmlw.Writer) error {
			if err := w.WriteText("ProductIDType", "23"); err != nil {
				return err
			}
			return w.WriteText("IDValue", wk.OCLC)
		}); err != nil {
			return err
		}
	}
	if wk.InternalReference != "" {
		if err := w.WriteElementBlock("ProductIdentifier", func(w *xmlw.Writer) error {
			if err := w.WriteText("ProductIDType", "01"); err != nil {
				return err
			}
			if err := w.WriteText("IDTypeName", "internal-reference"); err != nil {
				return err
			}
			return w.WriteText("IDValue", wk.InternalReference)
		}); err != nil {
			return err
		}
	}
	return nil
}

func writeProprietaryID(w *xmlw.Writer, idTypeName, value string) error {
	return w.WriteElementBlock("ProductIdentifier", func(w *xmlw.Writer) error {
		if err := w.WriteText("ProductIDType", "01"); err != nil {
			return err
		}
		if err := w.WriteText("IDTypeName", idTypeName); err != nil {
			return err
		}
		return w.WriteText("IDValue", value)
	})
}

func writeDescriptiveDetail(w *xmlw.Writer, wk *work.Work, pub work.Publication, opts productOptions) error {
	if err := w.WriteText("ProductComposition", "00"); err != nil {
		return err
	}
	form, detail := productFormCodes(pub.Type)
	if err := w.WriteText("ProductForm", form); err != nil {
		return err
	}
	if detail != "" {
		if err := w.WriteText("ProductFormDetail", detail); err != nil {
			return err
		}
	}
	if err := w.WriteText("PrimaryContentType", "10"); err != nil {
		return err
	}
	if err := writeMeasures(w, pub); err != nil {
		return err
	}
	if err := writeEpubLicense(w, wk.License); err != nil {
		return err
	}
	if err := writeIssues(w, wk.Issues); err != nil {
		return err
	}
	if title, ok := wk.CanonicalTitle(); ok {
		if err := writeTitle(w, title.Title, title.Subtitle); err != nil {
			return err
		}
	}
	contributions := make([]work.Contribution, len(wk.Contributions))
	copy(contributions, wk.Contributions)
	sortContributions(contributions)
	if err := writeContributions(w, contributions); err != nil {
		return err
	}
	if wk.Edition > 1 {
		if err := w.WriteText("EditionNumber", strconv.Itoa(wk.Edition)); err != nil {
			return err
		}
	}
	if err := writeLanguages(w, wk.Languages); err != nil {
		return err
	}
	if wk.PageCount > 0 {
		if err := w.WriteElementBlock("Extent", func(w *xmlw.Writer) error {
			if err := w.WriteText("ExtentType", "00"); err != nil {
				return err
			}
			if err := w.WriteText("ExtentValue", strconv.Itoa(wk.PageCount)); err != nil {
				return err
			}
			return w.WriteText("ExtentUnit", "03")
		}); err != nil {
			return err
		}
	}
	if wk.BibliographyNote != "" {
		if err := w.WriteText("IllustrationsNote", wk.BibliographyNote); err != nil {
			return err
		}
	}
	if err := writeAncillaryContent(w, wk); err != nil {
		return err
	}
	if err := writeSubjects(w, wk.Subjects); err != nil {
		return err
	}
	return w.WriteElementBlock("Audience", func(w *xmlw.Writer) error {
		if err := w.WriteText("AudienceCodeType", "01"); err != nil {
			return err
		}
		return w.WriteText("AudienceCodeValue", "06")
	})
}

// writeAncillaryContent emits one AncillaryContent block per non-zero
// image/table/audio/video count: images=09, tables=11, audio=19, video=00
// with a free-text description (video has no dedicated ONIX count code).
func writeAncillaryContent(w *xmlw.Writer, wk *work.Work) error {
	type ancillary struct {
		code        string
		count       int
		description string
	}
	items := []ancillary{
		{"09", wk.ImageCount, "Images"},
		{"11", wk.TableCount, "Tables"},
		{"19", wk.AudioCount, "Audio"},
		{"00", wk.VideoCount, "Video"},
	}
	for _, it := range items {
		if it.count <= 0 {
			continue
		}
		it := it
		if err := w.WriteElementBlock("AncillaryContent", func(w *xmlw.Writer) error {
			if err := w.WriteText("AncillaryContentType", it.code); err != nil {
				return err
			}
			if it.code == "00" {
				if err := w.WriteText("AncillaryContentDescription", it.description); err != nil {
					return err
				}
			}
			return nil
		}); err != nil {
			return err
		}
	}
	return nil
}

func sortContributions(c []work.Contribution) {
	// insertion sort: input is already near-sorted and must remain stable
	// on ordinal ties (tiebreak: preserve input order).
	for i := 1; i < len(c); i++ {
		for j := i; j > 0 && c[j].Ordinal < c[j-1].Ordinal; j-- {
			c[j], c[j-1] = c[j-1], c[j]
		}
	}
}

func hasCollateralDetail(wk *work.Work) bool {
	if _, ok := wk.Abstract(work.AbstractShort); ok {
		return true
	}
	if _, ok := wk.Abstract(work.AbstractLong); ok {
		return true
	}
	return wk.TOC != "" || wk.GeneralNote != "" || wk.CoverURL != "" || wk.License != ""
}

func writeCollateralDetail(w *xmlw.Writer, wk *work.Work) error {
	if _, ok := wk.Abstract(work.AbstractShort); ok {
		if err := writeShortAbstract(w, wk.Abstracts); err != nil {
			return err
		}
	}
	if err := writeLongAbstract(w, wk.Abstracts); err != nil {
		return err
	}
	if wk.TOC != "" {
		if err := w.WriteElementBlock("TextContent", func(w *xmlw.Writer) error {
			if err := w.WriteText("TextType", "04"); err != nil {
				return err
			}
			if err := w.WriteText("ContentAudience", "00"); err != nil {
				return err
			}
			return w.WriteText("Text", wk.TOC)
		}); err != nil {
			return err
		}
	}
	if err := writeOpenAccessStatement(w, wk.License); err != nil {
		return err
	}
	if err := writeGeneralNote(w, wk.GeneralNote); err != nil {
		return err
	}
	if wk.CoverURL != "" {
		if err := w.WriteElementBlock("SupportingResource", func(w *xmlw.Writer) error {
			if err := w.WriteText("ResourceContentType", "01"); err != nil {
				return err
			}
			if err := w.WriteText("ContentAudience", "00"); err != nil {
				return err
			}
			if err := w.WriteText("ResourceMode", "03"); err != nil {
				return err
			}
			if wk.CoverCaption != "" {
				if err := w.WriteElementBlock("ResourceFeature", func(w *xmlw.Writer) error {
					if err := w.WriteText("ResourceFeatureType", "02"); err != nil {
						return err
					}
					return w.WriteText("FeatureNote", wk.CoverCaption)
				}); err != nil {
					return err
				}
			}
			return w.WriteElementBlock("ResourceVersion", func(w *xmlw.Writer) error {
				if err := w.WriteText("ResourceForm", "02"); err != nil {
					return err
				}
				return w.WriteText("ResourceLink", wk.CoverURL)
			})
		}); err != nil {
			return err
		}
	}
	return nil
}

func writePublishingDetail(w *xmlw.Writer, wk *work.Work, opts productOptions) error {
	if err := w.WriteElementBlock("Imprint", func(w *xmlw.Writer) error {
		if wk.Imprint.URL != "" {
			if err := w.WriteElementBlock("ImprintIdentifier", func(w *xmlw.Writer) error {
				if err := w.WriteText("ImprintIDType", "01"); err != nil {
					return err
				}
				if err := w.WriteText("IDTypeName", "URL"); err != nil {
					return err
				}
				return w.WriteText("IDValue", wk.Imprint.URL)
			}); err != nil {
				return err
			}
		}
		return w.WriteText("ImprintName", wk.Imprint.Name)
	}); err != nil {
		return err
	}
	if err := w.WriteElementBlock("Publisher", func(w *xmlw.Writer) error {
		if err := w.WriteText("PublishingRole", "01"); err != nil {
			return err
		}
		if err := w.WriteText("PublisherName", wk.Imprint.Publisher.Name); err != nil {
			return err
		}
		if wk.Imprint.Publisher.URL != "" {
			if err := w.WriteElementBlock("Website", func(w *xmlw.Writer) error {
				if err := w.WriteText("WebsiteRole", "01"); err != nil {
					return err
				}
				return w.WriteText("WebsiteLink", wk.Imprint.Publisher.URL)
			}); err != nil {
				return err
			}
		}
		if wk.LandingPage != "" {
			if err := w.WriteElementBlock("Website", func(w *xmlw.Writer) error {
				if err := w.WriteText("WebsiteRole", "02"); err != nil {
					return err
				}
				return w.WriteText("WebsiteLink", wk.LandingPage)
			}); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		return err
	}
	if err := writeFundings(w, wk.Fundings, opts.fullFundingIdentifiers); err != nil {
		return err
	}
	if wk.Place != "" {
		if err := w.WriteText("CityOfPublication", wk.Place); err != nil {
			return err
		}
	}
	if err := w.WriteText("PublishingStatus", publishingStatusCode(wk.Status)); err != nil {
		return err
	}
	if wk.PublicationDate != nil {
		if err := w.WriteElementBlock("PublishingDate", func(w *xmlw.Writer) error {
			if err := w.WriteText("PublishingDateRole", "01"); err != nil {
				return err
			}
			return w.WriteFullText("Date", []xmlw.Attr{{Name: "dateformat", Value: "00"}}, wk.PublicationDate.Format("20060102"))
		}); err != nil {
			return err
		}
	}
	if wk.WithdrawnDate != nil {
		if err := w.WriteElementBlock("PublishingDate", func(w *xmlw.Writer) error {
			if err := w.WriteText("PublishingDateRole", "13"); err != nil {
				return err
			}
			return w.WriteFullText("Date", []xmlw.Attr{{Name: "dateformat", Value: "00"}}, wk.WithdrawnDate.Format("20060102"))
		}); err != nil {
			return err
		}
	}
	if err := writeCopyright(w, wk.CopyrightHolder); err != nil {
		return err
	}
	return w.WriteElementBlock("SalesRights", func(w *xmlw.Writer) error {
		if err := w.WriteText("SalesRightsType", "02"); err != nil {
			return err
		}
		return w.WriteElementBlock("Territory", func(w *xmlw.Writer) error {
			return w.WriteText("RegionsIncluded", "WORLD")
		})
	})
}
