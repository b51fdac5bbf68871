package usecase

import (
	"bytes"
	"context"
	"time"

	"jobbridge/internal/infrastructure/pdf"
	"jobbridge/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ProfileDocument struct {
	FileName string
	Content  []byte
}

type ExportUsecase interface {
	BeneficiaryProfilePDF(ctx context.Context, id uuid.UUID, fields []string) (ProfileDocument, error)
}

type Export struct {
	beneficiaries BeneficiaryUsecase
	logger        *zap.Logger
	now           func() time.Time
}

func NewExportUsecase(beneficiaries BeneficiaryUsecase, log *zap.Logger) *Export {
	return &Export{beneficiaries: beneficiaries, logger: logger.OrNop(log), now: time.Now}
}

func (u *Export) BeneficiaryProfilePDF(ctx context.Context, id uuid.UUID, fields []string) (ProfileDocument, error) {
	selected, err := pdf.ResolveFields(fields)
	if err != nil {
		return ProfileDocument{}, invalidf("%s", err.Error())
	}

	b, err := u.beneficiaries.Get(ctx, id)
	if err != nil {
		return ProfileDocument{}, err
	}

	var buf bytes.Buffer
	if err := pdf.RenderProfile(&buf, b, selected, u.now()); err != nil {
		u.logger.Error("render profile failed", zap.Stringer("beneficiary_id", id), zap.Error(err))
		return ProfileDocument{}, ErrInternal
	}
	return ProfileDocument{FileName: pdf.FileName(b), Content: buf.Bytes()}, nil
}
