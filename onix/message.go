package onix

import (
	"io"
	"log"
	"time"

	"github.com/thoth-pub/thoth-onix/onixerr"
	"github.com/thoth-pub/thoth-onix/work"
	"github.com/thoth-pub/thoth-onix/xmlw"
)

// Handle is the top-level specification runner's per-dialect entry point:
// it opens the ONIXMessage envelope with the dialect's namespace, writes
// the Header, dispatches works to the dialect driver per the empty/
// single/multi-work protocol, and closes the envelope.
//
// logger receives one line per per-work error swallowed in multi-work mode
// (nil defaults to log.Default()). sentAt is the Header's SentDateTime;
// callers must supply it explicitly rather than relying on wall-clock time,
// so that output is reproducible in tests.
func Handle(d driver, sink io.Writer, works []*work.Work, sentAt time.Time, logger *log.Logger) error {
	if logger == nil {
		logger = log.Default()
	}
	w, err := xmlw.New(sink)
	if err != nil {
		return err
	}
	return w.WriteFullElementBlock("ONIXMessage",
		[]xmlw.Attr{{Name: "xsi:schemaLocation", Value: d.schemaLocation}},
		[]xmlw.Attr{
			{Name: "xmlns", Value: d.namespace},
			{Name: "xmlns:xsi", Value: "http://www.w3.org/2001/XMLSchema-instance"},
		},
		func(w *xmlw.Writer) error {
			if err := writeHeader(w, sentAt); err != nil {
				return err
			}
			return dispatchWorks(w, d, works, logger)
		},
	)
}

func writeHeader(w *xmlw.Writer, sentAt time.Time) error {
	return w.WriteElementBlock("Header", func(w *xmlw.Writer) error {
		if err := w.WriteElementBlock("Sender", func(w *xmlw.Writer) error {
			if err := w.WriteText("SenderName", "Thoth"); err != nil {
				return err
			}
			return w.WriteText("EmailAddress", "info@thoth.pub")
		}); err != nil {
			return err
		}
		return w.WriteText("SentDateTime", sentAt.UTC().Format("20060102T150405"))
	})
}

func dispatchWorks(w *xmlw.Writer, d driver, works []*work.Work, logger *log.Logger) error {
	switch len(works) {
	case 0:
		return missingErr(d.dialect, "Not enough data")
	case 1:
		return renderWork(w, d, works[0])
	default:
		for _, wk := range works {
			if wk.Type == work.TypeBookChapter {
				continue
			}
			if err := renderWork(w, d, wk); err != nil {
				var incomplete *onixerr.IncompleteMetadataRecord
				if !asIncomplete(err, &incomplete) {
					return err
				}
				logger.Printf("skipping work %s: %v", wk.ID, err)
			}
		}
		return nil
	}
}

func asIncomplete(err error, target **onixerr.IncompleteMetadataRecord) bool {
	if e, ok := err.(*onixerr.IncompleteMetadataRecord); ok {
		*target = e
		return true
	}
	return false
}
