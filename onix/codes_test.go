package onix

import (
	"testing"

	"github.com/thoth-pub/thoth-onix/work"
)

func TestPublishingStatusCode(t *testing.T) {
	cases := map[work.Status]string{
		work.StatusCancelled:             "01",
		work.StatusForthcoming:           "02",
		work.StatusPostponedIndefinitely: "03",
		work.StatusActive:                "04",
		work.StatusSuperseded:            "08",
		work.StatusWithdrawn:             "11",
	}
	for status, want := range cases {
		if got := publishingStatusCode(status); got != want {
			t.Errorf("publishingStatusCode(%q) = %q, want %q", status, got, want)
		}
	}
}

func TestPublishingStatusCodeUnreachablePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for unreachable Status variant")
		}
	}()
	publishingStatusCode(work.Status("BOGUS"))
}

func TestProductAvailabilityCode(t *testing.T) {
	cases := map[work.Status]string{
		work.StatusCancelled:             "01",
		work.StatusForthcoming:           "10",
		work.StatusPostponedIndefinitely: "09",
		work.StatusActive:                "20",
		work.StatusSuperseded:            "41",
		work.StatusWithdrawn:             "49",
	}
	for status, want := range cases {
		if got := productAvailabilityCode(status); got != want {
			t.Errorf("productAvailabilityCode(%q) = %q, want %q", status, got, want)
		}
	}
}

func TestSubjectSchemeIdentifierCode(t *testing.T) {
	cases := map[work.SubjectType]string{
		work.SubjectBIC:     "12",
		work.SubjectBISAC:   "10",
		work.SubjectKeyword: "20",
		work.SubjectLCC:     "04",
		work.SubjectThema:   "93",
		work.SubjectCustom:  "B2",
	}
	for st, want := range cases {
		if got := subjectSchemeIdentifierCode(st); got != want {
			t.Errorf("subjectSchemeIdentifierCode(%q) = %q, want %q", st, got, want)
		}
	}
}

func TestSubjectUsesHeadingText(t *testing.T) {
	if !subjectUsesHeadingText(work.SubjectKeyword) {
		t.Error("SubjectKeyword should use heading text")
	}
	if !subjectUsesHeadingText(work.SubjectCustom) {
		t.Error("SubjectCustom should use heading text")
	}
	if subjectUsesHeadingText(work.SubjectBIC) {
		t.Error("SubjectBIC should not use heading text")
	}
}

func TestLanguageRoleCode(t *testing.T) {
	cases := map[work.LanguageRelation]string{
		work.LanguageOriginal:       "01",
		work.LanguageTranslatedFrom: "02",
		work.LanguageTranslatedInto: "01",
	}
	for r, want := range cases {
		if got := languageRoleCode(r); got != want {
			t.Errorf("languageRoleCode(%q) = %q, want %q", r, got, want)
		}
	}
}

func TestContributorRoleCode(t *testing.T) {
	if got := contributorRoleCode(work.ContributionAuthor); got != "A01" {
		t.Errorf("contributorRoleCode(Author) = %q, want A01", got)
	}
	if got := contributorRoleCode(work.ContributionTranslator); got != "B06" {
		t.Errorf("contributorRoleCode(Translator) = %q, want B06", got)
	}
}

func TestProductFormCodes(t *testing.T) {
	form, detail := productFormCodes(work.PublicationEPUB)
	if form != "EB" || detail != "E101" {
		t.Errorf("productFormCodes(EPUB) = (%q, %q), want (EB, E101)", form, detail)
	}
	form, detail = productFormCodes(work.PublicationHardback)
	if form != "BB" || detail != "" {
		t.Errorf("productFormCodes(Hardback) = (%q, %q), want (BB, \"\")", form, detail)
	}
	form, detail = productFormCodes(work.PublicationMP3)
	if form != "AN" || detail != "A103" {
		t.Errorf("productFormCodes(MP3) = (%q, %q), want (AN, A103)", form, detail)
	}
}

func TestRelatedProductRelationCode(t *testing.T) {
	cases := map[work.RelationType]string{
		work.RelationHasPart:      "01",
		work.RelationIsPartOf:     "02",
		work.RelationReplaces:     "03",
		work.RelationIsReplacedBy: "05",
	}
	for rt, want := range cases {
		if got := relatedProductRelationCode(rt); got != want {
			t.Errorf("relatedProductRelationCode(%q) = %q, want %q", rt, got, want)
		}
	}
}

func TestRelatedProductRelationCodePanicsOnChildOrTranslation(t *testing.T) {
	for _, rt := range []work.RelationType{work.RelationHasChild, work.RelationHasTranslation} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("expected panic for relation type %q", rt)
				}
			}()
			relatedProductRelationCode(rt)
		}()
	}
}

func TestWorkRelationCode(t *testing.T) {
	if got := workRelationCode(work.RelationHasTranslation); got != "49" {
		t.Errorf("workRelationCode(HasTranslation) = %q, want 49", got)
	}
	if got := workRelationCode(work.RelationIsTranslationOf); got != "29" {
		t.Errorf("workRelationCode(IsTranslationOf) = %q, want 29", got)
	}
}

func TestSupplierInfo(t *testing.T) {
	role, webRole, name, desc := supplierInfo(work.LocationPublisherWebsite)
	if role != "09" || webRole != "02" || name != "" || desc != "" {
		t.Errorf("supplierInfo(PublisherWebsite) = (%q, %q, %q, %q)", role, webRole, name, desc)
	}
	role, webRole, name, desc = supplierInfo(work.LocationJSTOR)
	if role != "11" || webRole != "36" || name != "JSTOR" || desc == "" {
		t.Errorf("supplierInfo(JSTOR) = (%q, %q, %q, %q)", role, webRole, name, desc)
	}
	role, webRole, name, desc = supplierInfo(work.LocationOther)
	if name != "Unknown" || desc != "Unspecified hosting platform" {
		t.Errorf("supplierInfo(Other) = (%q, %q, %q, %q)", role, webRole, name, desc)
	}
}
