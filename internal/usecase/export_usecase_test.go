package usecase

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"jobbridge/internal/domain/beneficiary"
	"jobbridge/internal/domain/skill"

	"github.com/google/uuid"
)

func TestExport_BeneficiaryProfilePDF(t *testing.T) {
	id := uuid.New()
	repo := &mockBeneficiaryRepo{items: []beneficiary.Beneficiary{{
		ID:          id,
		FullName:    "Lakshmi Devi",
		PhoneNumber: "9000000003",
		Skills:      skill.NewSet("Maid", "Cook"),
	}}}
	uc := NewExportUsecase(NewBeneficiaryUsecase(repo, nil, nil, nil), nil)

	doc, err := uc.BeneficiaryProfilePDF(context.Background(), id, nil)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if doc.FileName != "Lakshmi_Devi_profile.pdf" {
		t.Fatalf("unexpected file name %q", doc.FileName)
	}
	if !bytes.HasPrefix(doc.Content, []byte("%PDF-")) {
		t.Fatalf("expected pdf content")
	}
}

func TestExport_Errors(t *testing.T) {
	uc := NewExportUsecase(NewBeneficiaryUsecase(&mockBeneficiaryRepo{}, nil, nil, nil), nil)

	if _, err := uc.BeneficiaryProfilePDF(context.Background(), uuid.New(), []string{"salary"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := uc.BeneficiaryProfilePDF(context.Background(), uuid.New(), nil); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
