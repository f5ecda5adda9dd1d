package onixerr

import (
	"errors"
	"testing"
)

func TestIncomplete(t *testing.T) {
	err := Incomplete("onix_3.0::overdrive", "Missing Publication Date")
	want := "incomplete metadata record (onix_3.0::overdrive): Missing Publication Date"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	var target *IncompleteMetadataRecord
	if !errors.As(err, &target) {
		t.Fatal("errors.As failed to unwrap IncompleteMetadataRecord")
	}
	if target.SpecificationID != "onix_3.0::overdrive" {
		t.Errorf("SpecificationID = %q", target.SpecificationID)
	}
}

func TestInternal(t *testing.T) {
	err := Internal("writer closed")
	if err.Error() != "internal error: writer closed" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestInternalf(t *testing.T) {
	err := Internalf("unreachable variant %q", "FOO")
	want := `internal error: unreachable variant "FOO"`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestInvalid(t *testing.T) {
	err := Invalid("ISBN", "must be 13 digits")
	want := "invalid input (ISBN): must be 13 digits"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	var target *InvalidInput
	if !errors.As(err, &target) {
		t.Fatal("errors.As failed to unwrap InvalidInput")
	}
}
