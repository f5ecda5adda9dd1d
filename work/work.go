// Package work defines the Work aggregate and everything it owns: the
// domain model consumed by the ONIX dialect drivers. A Work is constructed
// once from an already-resolved upstream result and is treated as immutable
// read-only data for the duration of emission.
package work

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/thoth-pub/thoth-onix/onixerr"
)

// Type is a Work's publication type.
type Type string

const (
	TypeMonograph    Type = "MONOGRAPH"
	TypeEditedBook   Type = "EDITED_BOOK"
	TypeTextbook     Type = "TEXTBOOK"
	TypeJournalIssue Type = "JOURNAL_ISSUE"
	TypeBookSet      Type = "BOOK_SET"
	TypeBookChapter  Type = "BOOK_CHAPTER"
)

// Status is a Work's publishing status.
type Status string

const (
	StatusForthcoming          Status = "FORTHCOMING"
	StatusPostponedIndefinitely Status = "POSTPONED_INDEFINITELY"
	StatusActive               Status = "ACTIVE"
	StatusWithdrawn            Status = "WITHDRAWN"
	StatusSuperseded           Status = "SUPERSEDED"
	StatusCancelled            Status = "CANCELLED"
)

// Work is the top-level aggregate: a conceptual publication that may have
// multiple concrete Publications (formats).
type Work struct {
	ID                 uuid.UUID
	Type               Type
	Status             Status
	Edition            int // 0 means unset/unknown; callers should treat <=1 as "no Edition block"
	DOI                string
	PublicationDate    *time.Time
	WithdrawnDate      *time.Time
	Place              string
	PageCount          int
	ImageCount         int
	TableCount         int
	AudioCount         int
	VideoCount         int
	License            string // URL, empty if none
	CopyrightHolder    string
	BibliographyNote   string
	GeneralNote        string
	TOC                string
	LandingPage        string
	CoverURL           string
	CoverCaption       string
	LCCN               string
	OCLC               string
	InternalReference  string

	Imprint *Imprint

	Titles        []Title
	Abstracts     []Abstract
	Contributions []Contribution
	Publications  []Publication
	Languages     []Language
	Subjects      []Subject
	Issues        []Issue
	Fundings      []Funding
	References    []Reference
	Relations     []Relation
}

// CanonicalTitle returns the Work's canonical title, per the invariant that
// every Work has exactly one.
func (w *Work) CanonicalTitle() (Title, bool) {
	for _, t := range w.Titles {
		if t.Canonical {
			return t, true
		}
	}
	return Title{}, false
}

// Abstract returns the first abstract of the given type, if any.
func (w *Work) Abstract(t AbstractType) (Abstract, bool) {
	for _, a := range w.Abstracts {
		if a.Type == t {
			return a, true
		}
	}
	return Abstract{}, false
}

// Title belongs to a Work or a related Work (chapter).
type Title struct {
	Title     string
	Subtitle  string // empty if none
	FullTitle string
	Locale    string
	Canonical bool
}

// AbstractType distinguishes short from long abstracts.
type AbstractType string

const (
	AbstractShort AbstractType = "SHORT"
	AbstractLong  AbstractType = "LONG"
)

// Abstract belongs to a Work.
type Abstract struct {
	Content   string
	Type      AbstractType
	Locale    string
	Canonical bool
}

// ContributionType is one of the 14 coded contribution roles.
type ContributionType string

const (
	ContributionAuthor          ContributionType = "AUTHOR"
	ContributionEditor          ContributionType = "EDITOR"
	ContributionTranslator      ContributionType = "TRANSLATOR"
	ContributionPhotographer    ContributionType = "PHOTOGRAPHER"
	ContributionIllustrator     ContributionType = "ILLUSTRATOR"
	ContributionMusicEditor     ContributionType = "MUSIC_EDITOR"
	ContributionForewordBy      ContributionType = "FOREWORD_BY"
	ContributionIntroductionBy  ContributionType = "INTRODUCTION_BY"
	ContributionAfterwordBy     ContributionType = "AFTERWORD_BY"
	ContributionPrefaceBy       ContributionType = "PREFACE_BY"
	ContributionSoftwareBy      ContributionType = "SOFTWARE_BY"
	ContributionResearchBy      ContributionType = "RESEARCH_BY"
	ContributionContributionsBy ContributionType = "CONTRIBUTIONS_BY"
	ContributionIndexer         ContributionType = "INDEXER"
)

// Contribution is one contributor's role on a Work (or chapter), ordered by
// Ordinal.
type Contribution struct {
	Type         ContributionType
	FirstName    string // empty if unknown
	LastName     string
	FullName     string
	Biography    string
	Ordinal      int
	Main         bool
	Contributor  Contributor
	Affiliations []Affiliation
}

// Contributor is the person behind a Contribution.
type Contributor struct {
	ORCID   string // canonical https://orcid.org/xxxx-xxxx-xxxx-xxxx form, empty if unset
	Website string
}

// Affiliation links a Contribution to an Institution.
type Affiliation struct {
	Position    string
	Ordinal     int
	Institution Institution
}

// Institution is a funder, affiliation, or other named organisation.
type Institution struct {
	Name           string
	ROR            string // https://ror.org/xxxxxxxxx, empty if unset
	DOI            string
	CountryCode    string
}

// PublicationType enumerates concrete publication formats.
type PublicationType string

const (
	PublicationPaperback    PublicationType = "PAPERBACK"
	PublicationHardback     PublicationType = "HARDBACK"
	PublicationPDF          PublicationType = "PDF"
	PublicationHTML         PublicationType = "HTML"
	PublicationXML          PublicationType = "XML"
	PublicationEPUB         PublicationType = "EPUB"
	PublicationMOBI         PublicationType = "MOBI"
	PublicationAZW3         PublicationType = "AZW3"
	PublicationDOCX         PublicationType = "DOCX"
	PublicationFictionBook  PublicationType = "FICTION_BOOK"
	PublicationMP3          PublicationType = "MP3"
	PublicationWAV          PublicationType = "WAV"
)

// Publication is a concrete format of a Work.
type Publication struct {
	ID   uuid.UUID
	Type PublicationType
	ISBN string // 13-digit, hyphenless canonical form; empty if unset

	WidthMM, HeightMM, DepthMM    float64
	WidthCM, HeightCM, DepthCM    float64
	WidthIn, HeightIn, DepthIn    float64
	WeightG, WeightOz             float64

	Prices    []Price
	Locations []Location
}

// Price is a non-zero unit price in a single currency.
type Price struct {
	CurrencyCode string // ISO 4217
	UnitPrice    float64
}

// LocationPlatform identifies the hosting platform of a Location.
type LocationPlatform string

const (
	LocationPublisherWebsite LocationPlatform = "PUBLISHER_WEBSITE"
	LocationJSTOR            LocationPlatform = "JSTOR"
	LocationOAPEN            LocationPlatform = "OAPEN"
	LocationProquest         LocationPlatform = "PROQUEST"
	LocationGoogleBooks      LocationPlatform = "GOOGLE_BOOKS"
	LocationOther            LocationPlatform = "OTHER"
)

// Location is a supply location for a Publication.
type Location struct {
	LandingPage  string
	FullTextURL  string
	Platform     LocationPlatform
	Canonical    bool
}

// SubjectType enumerates subject classification schemes.
type SubjectType string

const (
	SubjectBIC     SubjectType = "BIC"
	SubjectBISAC   SubjectType = "BISAC"
	SubjectLCC     SubjectType = "LCC"
	SubjectThema   SubjectType = "THEMA"
	SubjectKeyword SubjectType = "KEYWORD"
	SubjectCustom  SubjectType = "CUSTOM"
)

// Subject is one classification code for a Work.
type Subject struct {
	Code    string
	Type    SubjectType
	Ordinal int
}

// LanguageRelation describes how a Language relates to the Work's content.
type LanguageRelation string

const (
	LanguageOriginal       LanguageRelation = "ORIGINAL"
	LanguageTranslatedFrom LanguageRelation = "TRANSLATED_FROM"
	LanguageTranslatedInto LanguageRelation = "TRANSLATED_INTO"
)

// Language is one language relation on a Work.
type Language struct {
	Code     string // ISO 639, rendered lowercase
	Relation LanguageRelation
}

// Issue places a Work within a Series.
type Issue struct {
	Ordinal int
	Series  Series
}

// Series groups related Works (e.g. a book series or journal).
type Series struct {
	ID          uuid.UUID
	Name        string
	ISSNPrint   string
	ISSNDigital string
	URL         string
	CFPURL      string
	Description string
}

// Funding records a funding body's support for a Work.
type Funding struct {
	Program          string
	ProjectName      string
	ProjectShortname string
	GrantNumber      string
	Jurisdiction     string
	Institution      Institution
}

// Reference is one citation made by a Work. At least one of DOI or
// UnstructuredCitation must be set; enforced by NewReference.
type Reference struct {
	Ordinal               int
	DOI                   string
	UnstructuredCitation  string
	ISSN                  string
	ISBN                  string
	JournalTitle          string
	ArticleTitle          string
	VolumeTitle           string
	Edition               string
	Author                string
	Volume                string
	IssueNumber           string
	FirstPage             string
	PublicationDate       *time.Time
}

// NewReference validates the "DOI or unstructured citation" invariant at
// construction time (InvalidInput, per the error taxonomy) and returns the
// assembled Reference.
func NewReference(r Reference) (Reference, error) {
	if r.DOI == "" && r.UnstructuredCitation == "" {
		return Reference{}, onixerr.Invalid("Reference", "must have a DOI or an unstructured citation")
	}
	return r, nil
}

// RelationType enumerates how a Work relates to another Work.
type RelationType string

const (
	RelationHasChild       RelationType = "HAS_CHILD"
	RelationIsChildOf      RelationType = "IS_CHILD_OF"
	RelationHasPart        RelationType = "HAS_PART"
	RelationIsPartOf       RelationType = "IS_PART_OF"
	RelationHasTranslation RelationType = "HAS_TRANSLATION"
	RelationIsTranslationOf RelationType = "IS_TRANSLATION_OF"
	RelationReplaces       RelationType = "REPLACES"
	RelationIsReplacedBy   RelationType = "IS_REPLACED_BY"
)

// RelatedWork is a Relation's target: a reduced projection of a Work,
// carrying only what's needed to render chapter content or related-material
// links without requiring the full aggregate.
type RelatedWork struct {
	DOI             string // empty if the related work has no DOI
	ISBN            string
	Titles          []Title
	Abstracts       []Abstract
	Contributions   []Contribution
	Languages       []Language
	References      []Reference
	License         string
	CopyrightHolder string
	GeneralNote     string
	FirstPage       string
	LastPage        string
	PageCount       int
}

// Relation links a Work to a RelatedWork, ordered by Ordinal.
type Relation struct {
	Type        RelationType
	Ordinal     int
	RelatedWork RelatedWork
}

// Imprint is the publishing imprint under which a Work is released.
type Imprint struct {
	Name         string
	URL          string
	CrossmarkDOI string
	Publisher    Publisher
}

// Publisher is the organisation behind an Imprint.
type Publisher struct {
	Name      string
	ShortName string
	URL       string
}

var isbnDigits = regexp.MustCompile(`^\d{13}$`)

// NewISBN validates and normalises an ISBN-13, stripping hyphens, and
// returns the hyphenless canonical form.
func NewISBN(raw string) (string, error) {
	stripped := strings.ReplaceAll(raw, "-", "")
	if !isbnDigits.MatchString(stripped) {
		return "", onixerr.Invalid("ISBN", "must be 13 digits")
	}
	return stripped, nil
}

var doiPrefix = regexp.MustCompile(`^10\.\d{4,9}/\S+$`)

// NewDOI validates and normalises a DOI, stripping any leading URL scheme so
// that render(doi) = render(render(doi)).
func NewDOI(raw string) (string, error) {
	canonical := raw
	for _, prefix := range []string{"https://doi.org/", "http://doi.org/", "doi:"} {
		canonical = strings.TrimPrefix(canonical, prefix)
	}
	if !doiPrefix.MatchString(canonical) {
		return "", onixerr.Invalid("DOI", "must be of the form 10.xxxx/yyyy")
	}
	return canonical, nil
}

var orcidDigits = regexp.MustCompile(`^\d{4}-\d{4}-\d{4}-\d{3}[\dX]$`)

// NewORCID validates an ORCID identifier and returns its canonical
// https://orcid.org/xxxx-xxxx-xxxx-xxxx form.
func NewORCID(raw string) (string, error) {
	id := raw
	for _, prefix := range []string{"https://orcid.org/", "http://orcid.org/"} {
		id = strings.TrimPrefix(id, prefix)
	}
	if !orcidDigits.MatchString(id) {
		return "", onixerr.Invalid("ORCID", "must be of the form xxxx-xxxx-xxxx-xxxx")
	}
	return "https://orcid.org/" + id, nil
}

var rorDigits = regexp.MustCompile(`^0[a-z0-9]{8}$`)

// NewROR validates a Research Organization Registry identifier and returns
// its canonical https://ror.org/xxxxxxxxx form.
func NewROR(raw string) (string, error) {
	id := raw
	for _, prefix := range []string{"https://ror.org/", "http://ror.org/"} {
		id = strings.TrimPrefix(id, prefix)
	}
	if !rorDigits.MatchString(id) {
		return "", onixerr.Invalid("ROR", "must be of the form 0xxxxxxxx")
	}
	return "https://ror.org/" + id, nil
}

var issnDigits = regexp.MustCompile(`^\d{4}-?\d{3}[\dX]$`)

// NewISSN validates an ISSN and returns its canonical hyphenated form.
func NewISSN(raw string) (string, error) {
	if !issnDigits.MatchString(raw) {
		return "", onixerr.Invalid("ISSN", "must be of the form xxxx-xxxx")
	}
	digits := strings.ReplaceAll(raw, "-", "")
	return digits[:4] + "-" + digits[4:], nil
}
