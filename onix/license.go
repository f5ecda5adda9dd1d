package onix

import (
	"github.com/thoth-pub/thoth-onix/license"
	"github.com/thoth-pub/thoth-onix/xmlw"
)

// writeEpubLicense emits an EpubLicense block if licenseURL is set.
func writeEpubLicense(w *xmlw.Writer, licenseURL string) error {
	if licenseURL == "" {
		return nil
	}
	name := license.Resolve(licenseURL)
	return w.WriteElementBlock("EpubLicense", func(w *xmlw.Writer) error {
		if err := w.WriteText("EpubLicenseName", name); err != nil {
			return err
		}
		return w.WriteElementBlock("EpubLicenseExpression", func(w *xmlw.Writer) error {
			if err := w.WriteText("EpubLicenseExpressionType", "02"); err != nil {
				return err
			}
			return w.WriteText("EpubLicenseExpressionLink", licenseURL)
		})
	})
}
