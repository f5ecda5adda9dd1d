// Package thothonix is the top-level metadata dissemination engine: given
// an already-resolved Work aggregate (or a batch of them), it emits a
// bit-exact ONIX for Books XML document in the dialect requested. See
// package onix for the dialect drivers and package work for the input
// domain model.
package thothonix

import (
	"io"
	"log"
	"time"

	"github.com/thoth-pub/thoth-onix/onix"
	"github.com/thoth-pub/thoth-onix/onixerr"
	"github.com/thoth-pub/thoth-onix/work"
)

// Dialect identifies which ONIX dialect driver to run.
type Dialect = onix.Dialect

// Re-exported dialect identifiers, for callers that don't want to import
// package onix directly.
const (
	Generic30 = onix.DialectGeneric30
	Overdrive = onix.DialectOverdrive
	Google    = onix.DialectGoogle
	JSTOR     = onix.DialectJSTOR
	Proquest  = onix.DialectProquest
	Thoth31   = onix.DialectThoth31
)

// Run emits an ONIX document for works under dialect d to sink, using
// sentAt as the Header's SentDateTime. logger receives one line per
// per-work error swallowed when len(works) > 1 (nil defaults to
// log.Default()).
//
// Run mirrors the single call -> one Work aggregate -> one XML document
// contract: it is synchronous, touches no shared state, and is safe to call
// concurrently for unrelated works.
func Run(d Dialect, sink io.Writer, works []*work.Work, sentAt time.Time, logger *log.Logger) error {
	switch d {
	case Generic30:
		return onix.Handle(onix.Generic30, sink, works, sentAt, logger)
	case Overdrive:
		return onix.Handle(onix.Overdrive, sink, works, sentAt, logger)
	case Google:
		return onix.Handle(onix.Google, sink, works, sentAt, logger)
	case JSTOR:
		return onix.Handle(onix.JSTOR, sink, works, sentAt, logger)
	case Proquest:
		return onix.Handle(onix.Proquest, sink, works, sentAt, logger)
	case Thoth31:
		return onix.Handle(onix.Thoth31, sink, works, sentAt, logger)
	default:
		return onixerr.Internalf("unknown dialect %q", d)
	}
}
