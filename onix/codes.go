// Package onix implements the ONIX for Books 3.0/3.1 dialect drivers: the
// controlled-vocabulary code maps, the dialect trait layer, the shared
// Product renderers, and one driver per supported dialect.
package onix

import (
	"fmt"

	"github.com/thoth-pub/thoth-onix/work"
)

// publishingStatusCode maps a Work's Status to ONIX PublishingStatus.
func publishingStatusCode(s work.Status) string {
	switch s {
	case work.StatusCancelled:
		return "01"
	case work.StatusForthcoming:
		return "02"
	case work.StatusPostponedIndefinitely:
		return "03"
	case work.StatusActive:
		return "04"
	case work.StatusSuperseded:
		return "08"
	case work.StatusWithdrawn:
		return "11"
	default:
		panic(fmt.Sprintf("onix: unreachable WorkStatus variant %q", s))
	}
}

// productAvailabilityCode maps a Work's Status to ONIX ProductAvailability.
func productAvailabilityCode(s work.Status) string {
	switch s {
	case work.StatusCancelled:
		return "01"
	case work.StatusForthcoming:
		return "10"
	case work.StatusPostponedIndefinitely:
		return "09"
	case work.StatusActive:
		return "20"
	case work.StatusSuperseded:
		return "41"
	case work.StatusWithdrawn:
		return "49"
	default:
		panic(fmt.Sprintf("onix: unreachable WorkStatus variant %q", s))
	}
}

// subjectSchemeIdentifierCode maps a Subject's Type to ONIX
// SubjectSchemeIdentifier.
func subjectSchemeIdentifierCode(t work.SubjectType) string {
	switch t {
	case work.SubjectBIC:
		return "12"
	case work.SubjectBISAC:
		return "10"
	case work.SubjectKeyword:
		return "20"
	case work.SubjectLCC:
		return "04"
	case work.SubjectThema:
		return "93"
	case work.SubjectCustom:
		return "B2"
	default:
		panic(fmt.Sprintf("onix: unreachable SubjectType variant %q", t))
	}
}

// subjectUsesHeadingText reports whether a subject type renders its code as
// SubjectHeadingText (free text) rather than SubjectCode.
func subjectUsesHeadingText(t work.SubjectType) bool {
	return t == work.SubjectKeyword || t == work.SubjectCustom
}

// languageRoleCode maps a LanguageRelation to ONIX LanguageRole.
func languageRoleCode(r work.LanguageRelation) string {
	switch r {
	case work.LanguageOriginal:
		return "01"
	case work.LanguageTranslatedFrom:
		return "02"
	case work.LanguageTranslatedInto:
		return "01"
	default:
		panic(fmt.Sprintf("onix: unreachable LanguageRelation variant %q", r))
	}
}

// contributorRoleCode maps a ContributionType to ONIX ContributorRole.
func contributorRoleCode(t work.ContributionType) string {
	switch t {
	case work.ContributionAuthor:
		return "A01"
	case work.ContributionEditor:
		return "B01"
	case work.ContributionTranslator:
		return "B06"
	case work.ContributionPhotographer:
		return "A13"
	case work.ContributionIllustrator:
		return "A12"
	case work.ContributionMusicEditor:
		return "B25"
	case work.ContributionForewordBy:
		return "A23"
	case work.ContributionIntroductionBy:
		return "A24"
	case work.ContributionAfterwordBy:
		return "A19"
	case work.ContributionPrefaceBy:
		return "A15"
	case work.ContributionSoftwareBy:
		return "A30"
	case work.ContributionResearchBy:
		return "A51"
	case work.ContributionContributionsBy:
		return "A32"
	case work.ContributionIndexer:
		return "A34"
	default:
		panic(fmt.Sprintf("onix: unreachable ContributionType variant %q", t))
	}
}

// productFormCodes maps a PublicationType to (ProductForm, ProductFormDetail).
// The second return value is empty when the publication type has no detail
// code (Paperback, Hardback).
func productFormCodes(t work.PublicationType) (form, detail string) {
	switch t {
	case work.PublicationPaperback:
		return "BC", ""
	case work.PublicationHardback:
		return "BB", ""
	case work.PublicationPDF:
		return "EB", "E107"
	case work.PublicationHTML:
		return "EB", "E105"
	case work.PublicationXML:
		return "EB", "E113"
	case work.PublicationEPUB:
		return "EB", "E101"
	case work.PublicationMOBI:
		return "EB", "E127"
	case work.PublicationAZW3:
		return "EB", "E116"
	case work.PublicationDOCX:
		return "EB", "E104"
	case work.PublicationFictionBook:
		return "EB", "E100"
	case work.PublicationMP3:
		return "AN", "A103"
	case work.PublicationWAV:
		return "AN", "A104"
	default:
		panic(fmt.Sprintf("onix: unreachable PublicationType variant %q", t))
	}
}

// relatedProductRelationCode maps non-translation, non-parent/child relation
// types to ONIX ProductRelationCode. Panics for relation types that must be
// handled elsewhere (HasChild/IsChildOf drive ContentDetail;
// HasTranslation/IsTranslationOf drive workRelationCode).
func relatedProductRelationCode(t work.RelationType) string {
	switch t {
	case work.RelationHasPart:
		return "01"
	case work.RelationIsPartOf:
		return "02"
	case work.RelationReplaces:
		return "03"
	case work.RelationIsReplacedBy:
		return "05"
	default:
		panic(fmt.Sprintf("onix: relation type %q is not a RelatedProduct relation", t))
	}
}

// workRelationCode maps translation relation types to ONIX WorkRelationCode.
func workRelationCode(t work.RelationType) string {
	switch t {
	case work.RelationHasTranslation:
		return "49"
	case work.RelationIsTranslationOf:
		return "29"
	default:
		panic(fmt.Sprintf("onix: relation type %q is not a translation relation", t))
	}
}

// supplierInfo derives the Supplier role, website role, supplier name, and
// description from a Location's platform.
func supplierInfo(p work.LocationPlatform) (supplierRole, websiteRole, supplierName, description string) {
	switch p {
	case work.LocationPublisherWebsite:
		return "09", "02", "", ""
	case work.LocationOther:
		return "11", "36", "Unknown", "Unspecified hosting platform"
	case work.LocationJSTOR:
		return "11", "36", "JSTOR", "JSTOR platform"
	case work.LocationOAPEN:
		return "11", "36", "OAPEN", "OAPEN platform"
	case work.LocationProquest:
		return "11", "36", "ProQuest", "ProQuest platform"
	case work.LocationGoogleBooks:
		return "11", "36", "Google Books", "Google Books platform"
	default:
		panic(fmt.Sprintf("onix: unreachable LocationPlatform variant %q", p))
	}
}
