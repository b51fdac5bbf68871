package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"jobbridge/internal/domain/beneficiary"
	"jobbridge/internal/domain/skill"
	"jobbridge/internal/infrastructure/events"
	"jobbridge/internal/infrastructure/storage"
	"jobbridge/internal/logger"
	"jobbridge/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const MaxAttachmentSize = 10 << 20

type CreateBeneficiaryInput struct {
	FullName    string
	PhoneNumber string
	Email       *string
	Address     *string
	DateOfBirth *string
	Gender      *string
	Education   *string
	Experience  *string
	Skills      []string
}

// Attachment is an uploaded file waiting to be stored.
type Attachment struct {
	FileName    string
	ContentType string
	Size        int64
	Body        io.Reader
}

type BeneficiaryUsecase interface {
	Create(ctx context.Context, operatorID uuid.UUID, in CreateBeneficiaryInput, attachments []Attachment) (beneficiary.Beneficiary, error)
	List(ctx context.Context, filter beneficiary.Filter) ([]beneficiary.Beneficiary, error)
	Get(ctx context.Context, id uuid.UUID) (beneficiary.Beneficiary, error)
}

type Beneficiaries struct {
	repo      repository.BeneficiaryRepository
	uploader  storage.Uploader
	publisher events.Publisher
	logger    *zap.Logger
	now       func() time.Time
}

// NewBeneficiaryUsecase wires the usecase. uploader may be nil, in which case
// requests carrying attachments fail with ErrAttachmentsUnavailable.
func NewBeneficiaryUsecase(repo repository.BeneficiaryRepository, uploader storage.Uploader, publisher events.Publisher, log *zap.Logger) *Beneficiaries {
	if publisher == nil {
		publisher = events.Nop()
	}
	return &Beneficiaries{
		repo:      repo,
		uploader:  uploader,
		publisher: publisher,
		logger:    logger.OrNop(log),
		now:       time.Now,
	}
}

func (u *Beneficiaries) Create(ctx context.Context, operatorID uuid.UUID, in CreateBeneficiaryInput, attachments []Attachment) (beneficiary.Beneficiary, error) {
	if operatorID == uuid.Nil {
		return beneficiary.Beneficiary{}, ErrUnauthorized
	}

	b, err := buildBeneficiary(in)
	if err != nil {
		return beneficiary.Beneficiary{}, err
	}
	b.CreatedBy = operatorID

	var keys []string
	if len(attachments) > 0 {
		b.Attachments, keys, err = u.storeAttachments(ctx, operatorID, attachments)
		if err != nil {
			return beneficiary.Beneficiary{}, err
		}
	}

	created, err := u.repo.Create(ctx, b)
	if err != nil {
		u.logger.Error("create beneficiary failed", zap.Error(err))
		u.discardAttachments(ctx, keys)
		return beneficiary.Beneficiary{}, ErrInternal
	}

	publish(ctx, u.publisher, u.logger, events.RecordsUpdated(events.EntityBeneficiary, "created", created.ID.String()))
	return created, nil
}

func buildBeneficiary(in CreateBeneficiaryInput) (beneficiary.Beneficiary, error) {
	fullName := strings.TrimSpace(in.FullName)
	if fullName == "" {
		return beneficiary.Beneficiary{}, invalidf("full name is required")
	}
	phone := strings.TrimSpace(in.PhoneNumber)
	if !validPhone(phone) {
		return beneficiary.Beneficiary{}, invalidf("valid phone number is required")
	}

	email := optional(in.Email)
	if email != nil && !validEmail(*email) {
		return beneficiary.Beneficiary{}, invalidf("valid email is required")
	}
	dob := optional(in.DateOfBirth)
	if dob != nil && !validDate(*dob) {
		return beneficiary.Beneficiary{}, invalidf("date of birth must be YYYY-MM-DD")
	}

	skills := skill.NewSet(in.Skills...)
	if skills.IsEmpty() {
		return beneficiary.Beneficiary{}, invalidf("at least one skill is required")
	}

	return beneficiary.Beneficiary{
		FullName:    fullName,
		PhoneNumber: phone,
		Email:       email,
		Address:     optional(in.Address),
		DateOfBirth: dob,
		Gender:      optional(in.Gender),
		Education:   optional(in.Education),
		Experience:  optional(in.Experience),
		Skills:      skills,
	}, nil
}

// storeAttachments uploads every file or none: a failed upload removes the
// objects already written. It returns the public URLs and the object keys.
func (u *Beneficiaries) storeAttachments(ctx context.Context, operatorID uuid.UUID, attachments []Attachment) ([]string, []string, error) {
	if u.uploader == nil {
		return nil, nil, ErrAttachmentsUnavailable
	}

	for _, a := range attachments {
		if a.Size > MaxAttachmentSize {
			return nil, nil, invalidf("attachment %q exceeds 10MB", a.FileName)
		}
	}

	urls := make([]string, 0, len(attachments))
	keys := make([]string, 0, len(attachments))
	for _, a := range attachments {
		key := attachmentKey(operatorID, a.FileName, u.now())
		url, err := u.uploader.Upload(ctx, key, a.ContentType, a.Body)
		if err != nil {
			u.discardAttachments(ctx, keys)
			if errors.Is(err, storage.ErrDisabled) {
				return nil, nil, ErrAttachmentsUnavailable
			}
			u.logger.Error("upload attachment failed", zap.String("key", key), zap.Error(err))
			return nil, nil, fmt.Errorf("%w: upload %s", ErrInternal, a.FileName)
		}
		urls = append(urls, url)
		keys = append(keys, key)
	}
	return urls, keys, nil
}

// discardAttachments removes uploaded objects that no record will point to.
// Failures are logged; the object is left behind.
func (u *Beneficiaries) discardAttachments(ctx context.Context, keys []string) {
	ctx = context.WithoutCancel(ctx)
	for _, key := range keys {
		if err := u.uploader.Delete(ctx, key); err != nil {
			u.logger.Warn("orphaned attachment left in storage", zap.String("key", key), zap.Error(err))
		}
	}
}

// attachmentKey is "beneficiaries/<operator>/<unix nanos>-<random>.<ext>".
// The random part keeps files from one request apart when the clock does not
// advance between them.
func attachmentKey(operatorID uuid.UUID, fileName string, at time.Time) string {
	key := fmt.Sprintf("beneficiaries/%s/%d-%s", operatorID, at.UnixNano(), uuid.NewString())
	if ext := strings.ToLower(strings.TrimPrefix(path.Ext(fileName), ".")); ext != "" {
		key += "." + ext
	}
	return key
}

func (u *Beneficiaries) List(ctx context.Context, filter beneficiary.Filter) ([]beneficiary.Beneficiary, error) {
	if day := strings.TrimSpace(filter.RegisteredOn); day != "" && !validDate(day) {
		return nil, invalidf("date must be YYYY-MM-DD")
	}

	items, err := u.repo.List(ctx)
	if err != nil {
		u.logger.Error("list beneficiaries failed", zap.Error(err))
		return nil, ErrInternal
	}
	return filter.Apply(items), nil
}

func (u *Beneficiaries) Get(ctx context.Context, id uuid.UUID) (beneficiary.Beneficiary, error) {
	b, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return beneficiary.Beneficiary{}, ErrNotFound
		}
		u.logger.Error("get beneficiary failed", zap.Stringer("id", id), zap.Error(err))
		return beneficiary.Beneficiary{}, ErrInternal
	}
	return b, nil
}

// publish reports a record change. Listeners only refetch, so failures are
// logged and never fail the write.
func publish(ctx context.Context, p events.Publisher, log *zap.Logger, evt events.Event) {
	if err := p.Publish(ctx, evt); err != nil {
		log.Warn("publish event failed", zap.String("routing_key", evt.RoutingKey()), zap.Error(err))
	}
}
