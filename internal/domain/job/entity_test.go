package job

import "testing"

func TestCategory_Valid(t *testing.T) {
	if !CategoryPatientCare.Valid() {
		t.Fatalf("patient_care should be valid")
	}
	if Category("astronaut").Valid() {
		t.Fatalf("unknown category should be invalid")
	}
	if got := CategoryRetailFoodServices.Label(); got != "Retail & Food Services" {
		t.Fatalf("unexpected label %q", got)
	}
	if len(Categories()) != 9 {
		t.Fatalf("expected 9 categories, got %d", len(Categories()))
	}
}

func TestStatus(t *testing.T) {
	if !StatusActive.Valid() || !StatusClosed.Valid() {
		t.Fatalf("active and closed must be valid")
	}
	if Status("paused").Valid() {
		t.Fatalf("paused must be invalid")
	}
	if !(Job{Status: StatusActive}).IsActive() {
		t.Fatalf("expected active job")
	}
	if (Job{Status: StatusClosed}).IsActive() {
		t.Fatalf("closed job must not be active")
	}
}
