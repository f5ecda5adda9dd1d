// Package onixerr defines the error taxonomy shared by the domain model and
// the ONIX dialect drivers: incomplete input, internal/writer failures, and
// construction-time validation failures.
package onixerr

import "fmt"

// IncompleteMetadataRecord reports that a Work does not satisfy a dialect's
// preconditions. SpecificationID names the dialect (e.g. "onix_3.0::overdrive").
type IncompleteMetadataRecord struct {
	SpecificationID string
	Reason          string
}

func (e *IncompleteMetadataRecord) Error() string {
	return fmt.Sprintf("incomplete metadata record (%s): %s", e.SpecificationID, e.Reason)
}

// Incomplete constructs an IncompleteMetadataRecord error.
func Incomplete(specificationID, reason string) error {
	return &IncompleteMetadataRecord{SpecificationID: specificationID, Reason: reason}
}

// InternalError reports a programmer or writer failure: malformed UTF-8, a
// sink write error, or an unreachable enum variant.
type InternalError struct {
	Detail string
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("internal error: %s", e.Detail)
}

// Internal constructs an InternalError.
func Internal(detail string) error {
	return &InternalError{Detail: detail}
}

// Internalf constructs an InternalError with a formatted detail.
func Internalf(format string, args ...any) error {
	return &InternalError{Detail: fmt.Sprintf(format, args...)}
}

// InvalidInput reports that a value was rejected by a validator at
// construction time (DOI, ISBN, ROR, ORCID, ISSN, or a structural invariant
// such as Reference requiring a DOI or an unstructured citation).
type InvalidInput struct {
	Field  string
	Reason string
}

func (e *InvalidInput) Error() string {
	return fmt.Sprintf("invalid input (%s): %s", e.Field, e.Reason)
}

// Invalid constructs an InvalidInput error.
func Invalid(field, reason string) error {
	return &InvalidInput{Field: field, Reason: reason}
}
