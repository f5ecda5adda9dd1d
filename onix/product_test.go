package onix

import (
	"strings"
	"testing"

	"github.com/thoth-pub/thoth-onix/work"
	"github.com/thoth-pub/thoth-onix/xmlw"
)

func TestSortContributionsStableOnOrdinalTies(t *testing.T) {
	contributions := []work.Contribution{
		{FullName: "Charlie", Ordinal: 2},
		{FullName: "Alice", Ordinal: 1},
		{FullName: "Bob", Ordinal: 1},
	}
	sortContributions(contributions)
	if contributions[0].FullName != "Alice" || contributions[1].FullName != "Bob" || contributions[2].FullName != "Charlie" {
		t.Errorf("sortContributions: got %+v, want Alice, Bob (input order preserved on tie), Charlie", contributions)
	}
}

func TestHasCollateralDetail(t *testing.T) {
	wk := &work.Work{}
	if hasCollateralDetail(wk) {
		t.Error("empty Work should have no CollateralDetail")
	}
	wk.TOC = "Chapter 1\nChapter 2"
	if !hasCollateralDetail(wk) {
		t.Error("Work with TOC should have CollateralDetail")
	}
}

func TestWriteAncillaryContentOnlyNonZero(t *testing.T) {
	wk := &work.Work{ImageCount: 3, VideoCount: 1}
	out := renderFragment(t, func(w *xmlw.Writer) error {
		return writeAncillaryContent(w, wk)
	})
	if strings.Count(out, "<AncillaryContent>") != 2 {
		t.Errorf("expected 2 AncillaryContent blocks (images, video), got %d\n%s", strings.Count(out, "<AncillaryContent>"), out)
	}
	if !strings.Contains(out, "<AncillaryContentType>09</AncillaryContentType>") {
		t.Error("missing image AncillaryContentType")
	}
	if !strings.Contains(out, "<AncillaryContentDescription>Video</AncillaryContentDescription>") {
		t.Error("missing video description")
	}
}
