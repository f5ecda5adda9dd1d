package onix

import (
	"github.com/thoth-pub/thoth-onix/onixerr"
	"github.com/thoth-pub/thoth-onix/work"
	"github.com/thoth-pub/thoth-onix/xmlw"
)

// Dialect identifies one ONIX dialect. The spec's dialect trait layer
// (one entity rendering itself differently per dialect) is realised here
// through the free functions in codes.go and the *.go renderers rather
// than per-dialect method sets, since none of the controlled-vocabulary
// mappings actually vary by dialect (only preconditions and Product
// composition do — see driver below).
type Dialect string

const (
	DialectGeneric30 Dialect = "onix_3.0::generic"
	DialectOverdrive Dialect = "onix_3.0::overdrive"
	DialectGoogle    Dialect = "onix_3.0::google"
	DialectJSTOR     Dialect = "onix_3.0::jstor"
	DialectProquest  Dialect = "onix_3.0::proquest"
	DialectThoth31   Dialect = "onix_3.1::thoth"
)

// driver is a dialect's configuration: namespace metadata, the precondition
// gate, and how it turns a Work into one or more Products.
type driver struct {
	dialect        Dialect
	namespace      string
	schemaLocation string
	// selectProducts returns the (publication, options) pairs to emit as
	// Products for wk, or an IncompleteMetadataRecord error if wk doesn't
	// satisfy the dialect's preconditions.
	selectProducts func(wk *work.Work) ([]productPlan, error)
}

type productPlan struct {
	publication work.Publication
	opts        productOptions
}

// renderWork renders wk into zero or more <Product> elements under d,
// surfacing d.selectProducts' precondition error unchanged.
func renderWork(w *xmlw.Writer, d driver, wk *work.Work) error {
	plans, err := d.selectProducts(wk)
	if err != nil {
		return err
	}
	for _, p := range plans {
		if err := writeProduct(w, wk, p.publication, p.opts); err != nil {
			return err
		}
	}
	return nil
}

func siblingISBNs(wk *work.Work, current work.Publication) []string {
	var out []string
	for _, p := range wk.Publications {
		if p.ID == current.ID {
			continue
		}
		if p.ISBN != "" {
			out = append(out, p.ISBN)
		}
	}
	return out
}

func missingErr(d Dialect, reason string) error {
	return onixerr.Incomplete(string(d), reason)
}
