package usecase

import (
	"context"
	"errors"
	"strings"

	"jobbridge/internal/domain/provider"
	"jobbridge/internal/infrastructure/events"
	"jobbridge/internal/logger"
	"jobbridge/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CreateProviderInput struct {
	CompanyName   string
	ContactPerson string
	PhoneNumber   string
	Email         string
	Address       *string
	Industry      *string
}

type ProviderUsecase interface {
	Create(ctx context.Context, operatorID uuid.UUID, in CreateProviderInput) (provider.Provider, error)
	List(ctx context.Context) ([]provider.Provider, error)
	Get(ctx context.Context, id uuid.UUID) (provider.Provider, error)
}

type Providers struct {
	repo      repository.ProviderRepository
	publisher events.Publisher
	logger    *zap.Logger
}

func NewProviderUsecase(repo repository.ProviderRepository, publisher events.Publisher, log *zap.Logger) *Providers {
	if publisher == nil {
		publisher = events.Nop()
	}
	return &Providers{repo: repo, publisher: publisher, logger: logger.OrNop(log)}
}

func (u *Providers) Create(ctx context.Context, operatorID uuid.UUID, in CreateProviderInput) (provider.Provider, error) {
	if operatorID == uuid.Nil {
		return provider.Provider{}, ErrUnauthorized
	}

	p := provider.Provider{
		CompanyName:   strings.TrimSpace(in.CompanyName),
		ContactPerson: strings.TrimSpace(in.ContactPerson),
		PhoneNumber:   strings.TrimSpace(in.PhoneNumber),
		Email:         strings.TrimSpace(in.Email),
		Address:       optional(in.Address),
		Industry:      optional(in.Industry),
		CreatedBy:     operatorID,
	}
	switch {
	case p.CompanyName == "":
		return provider.Provider{}, invalidf("company name is required")
	case p.ContactPerson == "":
		return provider.Provider{}, invalidf("contact person is required")
	case !validPhone(p.PhoneNumber):
		return provider.Provider{}, invalidf("valid phone number is required")
	case !validEmail(p.Email):
		return provider.Provider{}, invalidf("valid email is required")
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		u.logger.Error("create provider failed", zap.Error(err))
		return provider.Provider{}, ErrInternal
	}

	publish(ctx, u.publisher, u.logger, events.RecordsUpdated(events.EntityProvider, "created", created.ID.String()))
	return created, nil
}

func (u *Providers) List(ctx context.Context) ([]provider.Provider, error) {
	items, err := u.repo.List(ctx)
	if err != nil {
		u.logger.Error("list providers failed", zap.Error(err))
		return nil, ErrInternal
	}
	return items, nil
}

func (u *Providers) Get(ctx context.Context, id uuid.UUID) (provider.Provider, error) {
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return provider.Provider{}, ErrNotFound
		}
		u.logger.Error("get provider failed", zap.Stringer("id", id), zap.Error(err))
		return provider.Provider{}, ErrInternal
	}
	return p, nil
}
