package thothonix

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/thoth-pub/thoth-onix/onixerr"
	"github.com/thoth-pub/thoth-onix/work"
)

func sampleWork() *work.Work {
	return &work.Work{
		ID:          uuid.MustParse("00000000-0000-0000-0000-0000000000aa"),
		Type:        work.TypeMonograph,
		Status:      work.StatusActive,
		LandingPage: "https://example.org/books/sample",
		Imprint: &work.Imprint{
			Name:      "Example Press",
			Publisher: work.Publisher{Name: "Example Publisher"},
		},
		Titles: []work.Title{{Title: "Sample Work", Canonical: true}},
		Publications: []work.Publication{
			{ID: uuid.MustParse("00000000-0000-0000-0000-0000000000bb"), Type: work.PublicationPDF, ISBN: "9781234567897"},
		},
	}
}

func TestRunGeneric30(t *testing.T) {
	var buf strings.Builder
	err := Run(Generic30, &buf, []*work.Work{sampleWork()}, time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC), nil)
	if err != nil {
		t.Fatalf("Run: unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "<SenderName>Thoth</SenderName>") {
		t.Error("missing Header/Sender/SenderName")
	}
	if !strings.Contains(buf.String(), "9781234567897") {
		t.Error("missing ISBN in output")
	}
}

func TestRunUnknownDialect(t *testing.T) {
	var buf strings.Builder
	err := Run(Dialect("bogus"), &buf, []*work.Work{sampleWork()}, time.Now(), nil)
	if err == nil {
		t.Fatal("Run with unknown dialect: want error, got nil")
	}
	var internal *onixerr.InternalError
	switch e := err.(type) {
	case *onixerr.InternalError:
		internal = e
	default:
		t.Fatalf("Run error = %v (%T), want *onixerr.InternalError", err, err)
	}
	if internal == nil {
		t.Fatal("internal error is nil")
	}
}

func TestRunEmptyWorksReturnsError(t *testing.T) {
	var buf strings.Builder
	err := Run(Generic30, &buf, nil, time.Now(), nil)
	if err == nil {
		t.Fatal("Run with no works: want error, got nil")
	}
}
