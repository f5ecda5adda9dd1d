package onix

import (
	"log"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/thoth-pub/thoth-onix/onixerr"
	"github.com/thoth-pub/thoth-onix/work"
	"github.com/thoth-pub/thoth-onix/xmlw"
)

func mustTime(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &t
}

// minimalMonograph builds a Work that satisfies every dialect's generic
// preconditions plus Overdrive's: a priced, canonically-located EPUB, a
// publication date, a long abstract, and a language.
func minimalMonograph() *work.Work {
	pubID := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	return &work.Work{
		ID:              uuid.MustParse("00000000-0000-0000-0000-000000000001"),
		Type:            work.TypeMonograph,
		Status:          work.StatusActive,
		PublicationDate: mustTime("2020-01-01"),
		LandingPage:     "https://example.org/books/minimal",
		Imprint: &work.Imprint{
			Name:      "Example Press",
			Publisher: work.Publisher{Name: "Example Publisher"},
		},
		Titles: []work.Title{
			{Title: "Minimal Monograph", Canonical: true},
		},
		Abstracts: []work.Abstract{
			{Type: work.AbstractLong, Content: "A long abstract describing the book in detail."},
		},
		Languages: []work.Language{
			{Code: "eng", Relation: work.LanguageOriginal},
		},
		Publications: []work.Publication{
			{
				ID:   pubID,
				Type: work.PublicationEPUB,
				ISBN: "9781234567897",
				Prices: []work.Price{
					{CurrencyCode: "USD", UnitPrice: 9.99},
				},
				Locations: []work.Location{
					{Canonical: true, FullTextURL: "https://example.org/full/minimal.epub", Platform: work.LocationPublisherWebsite},
				},
			},
		},
	}
}

func render(t *testing.T, d driver, works []*work.Work) (string, error) {
	t.Helper()
	var buf strings.Builder
	err := Handle(d, &buf, works, time.Date(2020, 6, 1, 12, 0, 0, 0, time.UTC), nil)
	return buf.String(), err
}

func TestOverdriveMinimalMonograph(t *testing.T) {
	out, err := render(t, Overdrive, []*work.Work{minimalMonograph()})
	if err != nil {
		t.Fatalf("Handle: unexpected error: %v", err)
	}
	for _, want := range []string{
		"<RecordReference>urn:uuid:00000000-0000-0000-0000-000000000001</RecordReference>",
		"<TitleText>Minimal Monograph</TitleText>",
		"<ProductIDType>15</ProductIDType>",
		"<IDValue>9781234567897</IDValue>",
		"<CurrencyCode>USD</CurrencyCode>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\nfull output:\n%s", want, out)
		}
	}
}

func TestOverdriveMissingUSDPrice(t *testing.T) {
	wk := minimalMonograph()
	wk.Publications[0].Prices = []work.Price{{CurrencyCode: "GBP", UnitPrice: 9.99}}
	_, err := render(t, Overdrive, []*work.Work{wk})
	if err == nil {
		t.Fatal("Handle: want error for missing USD price, got nil")
	}
	var incomplete *onixerr.IncompleteMetadataRecord
	if !asIncomplete(err, &incomplete) {
		t.Fatalf("Handle error = %v (%T), want *onixerr.IncompleteMetadataRecord", err, err)
	}
	if incomplete.Reason != "No USD price found" {
		t.Errorf("Reason = %q, want %q", incomplete.Reason, "No USD price found")
	}
}

func TestOverdriveMissingLongAbstract(t *testing.T) {
	wk := minimalMonograph()
	wk.Abstracts = nil
	_, err := render(t, Overdrive, []*work.Work{wk})
	if err == nil {
		t.Fatal("Handle: want error for missing long abstract, got nil")
	}
	var incomplete *onixerr.IncompleteMetadataRecord
	if !asIncomplete(err, &incomplete) {
		t.Fatalf("Handle error = %v (%T), want *onixerr.IncompleteMetadataRecord", err, err)
	}
	if incomplete.Reason != "Missing Long Abstract" {
		t.Errorf("Reason = %q, want %q", incomplete.Reason, "Missing Long Abstract")
	}
}

func TestThoth31MultiPublicationCrossLinking(t *testing.T) {
	wk := minimalMonograph()
	secondID := uuid.MustParse("22222222-2222-2222-2222-222222222222")
	wk.Publications = append(wk.Publications, work.Publication{
		ID:   secondID,
		Type: work.PublicationPDF,
		ISBN: "9789999999999",
	})
	out, err := render(t, Thoth31, []*work.Work{wk})
	if err != nil {
		t.Fatalf("Handle: unexpected error: %v", err)
	}
	// two Products, one per Publication
	if got := strings.Count(out, "<RecordReference>urn:uuid:"+wk.Publications[0].ID.String()+"</RecordReference>"); got != 1 {
		t.Errorf("expected one Product for first publication, got %d", got)
	}
	if got := strings.Count(out, "<RecordReference>urn:uuid:"+secondID.String()+"</RecordReference>"); got != 1 {
		t.Errorf("expected one Product for second publication, got %d", got)
	}
	// each Product cross-links to the other's ISBN as a sibling RelatedProduct
	if !strings.Contains(out, "9789999999999") {
		t.Error("output missing cross-linked sibling ISBN 9789999999999")
	}
	if !strings.Contains(out, "9781234567897") {
		t.Error("output missing cross-linked sibling ISBN 9781234567897")
	}
	if strings.Count(out, "<Product>") != 2 {
		t.Errorf("expected 2 <Product> elements, got %d", strings.Count(out, "<Product>"))
	}
}

func TestShortAbstractTruncationAtCodepointBoundary(t *testing.T) {
	// 349 ASCII characters followed by a 4-byte emoji at position 349 (0-indexed):
	// truncating at 350 codepoints must keep the emoji whole, not split its bytes.
	prefix := strings.Repeat("a", 349)
	content := prefix + "\U0001F600" + "trailing text that must be cut off"
	got := shortAbstract([]work.Abstract{{Type: work.AbstractShort, Content: content}})
	wantRunes := []rune(prefix + "\U0001F600")
	if got != string(wantRunes) {
		t.Errorf("shortAbstract truncation = %q, want %q", got, string(wantRunes))
	}
	if n := len([]rune(got)); n != 350 {
		t.Errorf("truncated abstract has %d codepoints, want 350", n)
	}
	if !strings.HasSuffix(got, "\U0001F600") {
		t.Error("truncation split the emoji's bytes instead of keeping it whole")
	}
}

func TestShortAbstractPreservesDecomposedSequences(t *testing.T) {
	// "e" + combining acute accent (U+0065 U+0301), not the precomposed
	// U+00E9: the emitted text must be a prefix of the input's own bytes,
	// not of a normalized form, so this decomposed sequence must survive
	// untouched rather than being collapsed into a single precomposed rune.
	decomposed := "éclat"
	got := shortAbstract([]work.Abstract{{Type: work.AbstractShort, Content: decomposed}})
	if got != decomposed {
		t.Errorf("shortAbstract(%q) = %q, want %q unchanged (no normalization)", decomposed, got, decomposed)
	}
}

func TestContentDetailOrdinalOrdering(t *testing.T) {
	relations := []work.Relation{
		{Type: work.RelationHasChild, Ordinal: 2, RelatedWork: work.RelatedWork{DOI: "10.1234/chapter-two"}},
		{Type: work.RelationHasChild, Ordinal: 1, RelatedWork: work.RelatedWork{DOI: "10.1234/chapter-one"}},
	}
	chapters := childRelations(relations)
	if len(chapters) != 2 {
		t.Fatalf("childRelations: got %d, want 2", len(chapters))
	}
	if chapters[0].RelatedWork.DOI != "10.1234/chapter-one" || chapters[1].RelatedWork.DOI != "10.1234/chapter-two" {
		t.Errorf("childRelations not ordinal-sorted: got %+v", chapters)
	}

	var buf strings.Builder
	w, err := xmlw.New(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if err := writeContentDetail(w, relations); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	idxOne := strings.Index(out, "10.1234/chapter-one")
	idxTwo := strings.Index(out, "10.1234/chapter-two")
	if idxOne == -1 || idxTwo == -1 || idxOne > idxTwo {
		t.Errorf("chapter-one must render before chapter-two in output:\n%s", out)
	}
}

func TestChildRelationWithoutDOIIsExcluded(t *testing.T) {
	relations := []work.Relation{
		{Type: work.RelationHasChild, Ordinal: 1, RelatedWork: work.RelatedWork{}},
	}
	if hasContentDetail(relations) {
		t.Error("hasContentDetail: HasChild relation without DOI should not count")
	}
	if len(childRelations(relations)) != 0 {
		t.Error("childRelations: HasChild relation without DOI should be excluded")
	}
}

func TestEmptyWorksReturnsIncomplete(t *testing.T) {
	_, err := render(t, Generic30, nil)
	var incomplete *onixerr.IncompleteMetadataRecord
	if !asIncomplete(err, &incomplete) {
		t.Fatalf("Handle with empty works = %v, want *onixerr.IncompleteMetadataRecord", err)
	}
}

func TestMultiWorkSkipsBookChapters(t *testing.T) {
	wk := minimalMonograph()
	chapter := minimalMonograph()
	chapter.ID = uuid.MustParse("00000000-0000-0000-0000-000000000099")
	chapter.Type = work.TypeBookChapter
	out, err := render(t, Generic30, []*work.Work{wk, chapter})
	if err != nil {
		t.Fatalf("Handle: unexpected error: %v", err)
	}
	if strings.Contains(out, chapter.ID.String()) {
		t.Error("BookChapter work should have been skipped in multi-work mode")
	}
	if strings.Count(out, "<Product>") != 1 {
		t.Errorf("expected exactly 1 Product, got %d", strings.Count(out, "<Product>"))
	}
}

func TestMultiWorkSwallowsIncompleteRecordsAndLogs(t *testing.T) {
	good := minimalMonograph()
	bad := minimalMonograph()
	bad.ID = uuid.MustParse("00000000-0000-0000-0000-000000000098")
	bad.Abstracts = nil // fails Overdrive precondition

	var buf strings.Builder
	var logBuf strings.Builder
	logger := log.New(&logBuf, "", 0)
	err := Handle(Overdrive, &buf, []*work.Work{good, bad}, time.Date(2020, 6, 1, 0, 0, 0, 0, time.UTC), logger)
	if err != nil {
		t.Fatalf("Handle: unexpected fatal error: %v", err)
	}
	if strings.Count(buf.String(), "<Product>") != 1 {
		t.Errorf("expected exactly 1 Product rendered, got %d", strings.Count(buf.String(), "<Product>"))
	}
	if !strings.Contains(logBuf.String(), bad.ID.String()) {
		t.Error("expected the swallowed work's ID to be logged")
	}
}

func TestEmptyPricesYieldsUnpricedItemType(t *testing.T) {
	wk := minimalMonograph()
	wk.Publications[0].Prices = nil
	out, err := render(t, Generic30, []*work.Work{wk})
	if err != nil {
		t.Fatalf("Handle: unexpected error: %v", err)
	}
	if !strings.Contains(out, "<UnpricedItemType>01</UnpricedItemType>") {
		t.Error("expected UnpricedItemType fallback when publication has no prices")
	}
}

func TestEmptyLocationsSynthesizesPublisherWebsiteSupplyDetail(t *testing.T) {
	wk := minimalMonograph()
	wk.Publications[0].Locations = nil
	out, err := render(t, Generic30, []*work.Work{wk})
	if err != nil {
		t.Fatalf("Handle: unexpected error: %v", err)
	}
	if !strings.Contains(out, wk.LandingPage) {
		t.Error("expected landing page to be used as the synthesized SupplyDetail location")
	}
	if strings.Count(out, "<SupplyDetail>") != 1 {
		t.Errorf("expected exactly 1 SupplyDetail, got %d", strings.Count(out, "<SupplyDetail>"))
	}
}

func TestEditionOmittedAtOneEmittedAtTwo(t *testing.T) {
	wk := minimalMonograph()
	wk.Edition = 1
	out, err := render(t, Generic30, []*work.Work{wk})
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out, "<EditionNumber>") {
		t.Error("EditionNumber should be omitted when Edition is 1")
	}

	wk.Edition = 2
	out, err = render(t, Generic30, []*work.Work{wk})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "<EditionNumber>2</EditionNumber>") {
		t.Error("EditionNumber should be emitted when Edition is 2")
	}
}

func TestSupplyDateRoleIsAlways08(t *testing.T) {
	out, err := render(t, Generic30, []*work.Work{minimalMonograph()})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "<SupplyDateRole>08</SupplyDateRole>") {
		t.Error("expected SupplyDateRole 08")
	}
	if strings.Contains(out, "<SupplyDateRole>02</SupplyDateRole>") {
		t.Error("SupplyDateRole must never be 02")
	}
}
