package pdf

import (
	"bytes"
	"reflect"
	"testing"
	"time"

	"jobbridge/internal/domain/beneficiary"
	"jobbridge/internal/domain/skill"
)

func strPtr(s string) *string { return &s }

func TestResolveFields(t *testing.T) {
	tests := []struct {
		name    string
		in      []string
		want    []string
		wantErr bool
	}{
		{name: "empty uses defaults", in: nil, want: []string{"full_name", "phone_number", "skills"}},
		{name: "blank only uses defaults", in: []string{" ", ""}, want: []string{"full_name", "phone_number", "skills"}},
		{name: "catalogue order", in: []string{"skills", "email", "full_name"}, want: []string{"full_name", "email", "skills"}},
		{name: "duplicates collapse", in: []string{"gender", "gender"}, want: []string{"gender"}},
		{name: "unknown rejected", in: []string{"salary"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveFields(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("got %v want %v", got, tt.want)
			}
		})
	}
}

func TestFieldValue(t *testing.T) {
	b := beneficiary.Beneficiary{
		FullName:    "Asha Devi",
		PhoneNumber: "9876543210",
		Email:       strPtr("asha@example.org"),
		Skills:      skill.NewSet("Cook", "Maid"),
		CreatedAt:   time.Date(2024, 3, 9, 22, 0, 0, 0, time.UTC),
	}

	if got := FieldValue(b, "skills"); got != "Cook, Maid" {
		t.Fatalf("unexpected skills %q", got)
	}
	if got := FieldValue(b, "created_at"); got != "2024-03-09" {
		t.Fatalf("unexpected created_at %q", got)
	}
	if got := FieldValue(b, "address"); got != "" {
		t.Fatalf("missing address should be empty, got %q", got)
	}
	if got := FieldValue(b, "email"); got != "asha@example.org" {
		t.Fatalf("unexpected email %q", got)
	}
}

func TestFileName(t *testing.T) {
	if got := FileName(beneficiary.Beneficiary{FullName: "Asha  Devi"}); got != "Asha_Devi_profile.pdf" {
		t.Fatalf("unexpected file name %q", got)
	}
	if got := FileName(beneficiary.Beneficiary{}); got != "beneficiary_profile.pdf" {
		t.Fatalf("unexpected fallback %q", got)
	}
}

func TestRenderProfile(t *testing.T) {
	b := beneficiary.Beneficiary{
		FullName:    "Asha Devi",
		PhoneNumber: "9876543210",
		Skills:      skill.NewSet("Cook"),
		Experience:  strPtr("Five years in a hotel kitchen, including night shifts and catering for large events."),
	}

	var buf bytes.Buffer
	if err := RenderProfile(&buf, b, []string{"full_name", "phone_number", "skills", "experience", "email"}, time.Now()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Fatalf("output is not a pdf document")
	}
}
