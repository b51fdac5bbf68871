package usecase

import (
	"context"
	"errors"
	"strings"

	"jobbridge/internal/domain/job"
	"jobbridge/internal/domain/provider"
	"jobbridge/internal/domain/skill"
	"jobbridge/internal/infrastructure/events"
	"jobbridge/internal/logger"
	"jobbridge/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CreateJobInput struct {
	ProviderID     uuid.UUID
	Title          string
	Category       string
	Description    string
	RequiredSkills []string
	Location       *string
	SalaryRange    *string
	Openings       int
}

// JobListItem is a job with its provider's company name resolved for
// display. CompanyName is empty when the provider no longer exists.
type JobListItem struct {
	Job         job.Job
	CompanyName string
}

type JobUsecase interface {
	Create(ctx context.Context, operatorID uuid.UUID, in CreateJobInput) (JobListItem, error)
	List(ctx context.Context, status string) ([]JobListItem, error)
	Get(ctx context.Context, id uuid.UUID) (JobListItem, error)
	Close(ctx context.Context, id uuid.UUID) (JobListItem, error)
	Reopen(ctx context.Context, id uuid.UUID) (JobListItem, error)
}

type Jobs struct {
	jobs      repository.JobRepository
	providers repository.ProviderRepository
	publisher events.Publisher
	logger    *zap.Logger
}

func NewJobUsecase(jobs repository.JobRepository, providers repository.ProviderRepository, publisher events.Publisher, log *zap.Logger) *Jobs {
	if publisher == nil {
		publisher = events.Nop()
	}
	return &Jobs{jobs: jobs, providers: providers, publisher: publisher, logger: logger.OrNop(log)}
}

func (u *Jobs) Create(ctx context.Context, operatorID uuid.UUID, in CreateJobInput) (JobListItem, error) {
	if operatorID == uuid.Nil {
		return JobListItem{}, ErrUnauthorized
	}

	j := job.Job{
		ProviderID:     in.ProviderID,
		Title:          strings.TrimSpace(in.Title),
		Category:       job.Category(strings.TrimSpace(in.Category)),
		Description:    strings.TrimSpace(in.Description),
		RequiredSkills: skill.NewSet(in.RequiredSkills...),
		Location:       optional(in.Location),
		SalaryRange:    optional(in.SalaryRange),
		Openings:       in.Openings,
		Status:         job.StatusActive,
		CreatedBy:      operatorID,
	}
	switch {
	case j.ProviderID == uuid.Nil:
		return JobListItem{}, invalidf("provider is required")
	case j.Title == "":
		return JobListItem{}, invalidf("job title is required")
	case !j.Category.Valid():
		return JobListItem{}, invalidf("unknown category %q", string(j.Category))
	case j.Description == "":
		return JobListItem{}, invalidf("description is required")
	case j.RequiredSkills.IsEmpty():
		return JobListItem{}, invalidf("at least one skill is required")
	case j.Openings < 1:
		return JobListItem{}, invalidf("at least 1 opening is required")
	}

	p, err := u.providers.GetByID(ctx, j.ProviderID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return JobListItem{}, invalidf("provider not found")
		}
		u.logger.Error("load provider failed", zap.Stringer("provider_id", j.ProviderID), zap.Error(err))
		return JobListItem{}, ErrInternal
	}

	created, err := u.jobs.Create(ctx, j)
	if err != nil {
		u.logger.Error("create job failed", zap.Error(err))
		return JobListItem{}, ErrInternal
	}

	publish(ctx, u.publisher, u.logger, events.RecordsUpdated(events.EntityJob, "created", created.ID.String()))
	return JobListItem{Job: created, CompanyName: p.CompanyName}, nil
}

func (u *Jobs) List(ctx context.Context, status string) ([]JobListItem, error) {
	status = strings.TrimSpace(status)

	var (
		items []job.Job
		err   error
	)
	if status == "" {
		items, err = u.jobs.List(ctx)
	} else {
		st := job.Status(status)
		if !st.Valid() {
			return nil, invalidf("unknown status %q", status)
		}
		items, err = u.jobs.ListByStatus(ctx, st)
	}
	if err != nil {
		u.logger.Error("list jobs failed", zap.Error(err))
		return nil, ErrInternal
	}

	providers, err := u.lookupProviders(ctx, items)
	if err != nil {
		return nil, ErrInternal
	}

	out := make([]JobListItem, 0, len(items))
	for _, j := range items {
		out = append(out, JobListItem{Job: j, CompanyName: providers[j.ProviderID].CompanyName})
	}
	return out, nil
}

func (u *Jobs) Get(ctx context.Context, id uuid.UUID) (JobListItem, error) {
	j, err := u.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return JobListItem{}, ErrNotFound
		}
		u.logger.Error("get job failed", zap.Stringer("id", id), zap.Error(err))
		return JobListItem{}, ErrInternal
	}
	return u.withCompany(ctx, j)
}

func (u *Jobs) Close(ctx context.Context, id uuid.UUID) (JobListItem, error) {
	return u.setStatus(ctx, id, job.StatusClosed)
}

func (u *Jobs) Reopen(ctx context.Context, id uuid.UUID) (JobListItem, error) {
	return u.setStatus(ctx, id, job.StatusActive)
}

// setStatus is idempotent. Only an actual transition publishes an event.
func (u *Jobs) setStatus(ctx context.Context, id uuid.UUID, status job.Status) (JobListItem, error) {
	current, err := u.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return JobListItem{}, ErrNotFound
		}
		u.logger.Error("get job failed", zap.Stringer("id", id), zap.Error(err))
		return JobListItem{}, ErrInternal
	}
	if current.Status == status {
		return u.withCompany(ctx, current)
	}

	updated, err := u.jobs.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return JobListItem{}, ErrNotFound
		}
		u.logger.Error("update job status failed", zap.Stringer("id", id), zap.String("status", string(status)), zap.Error(err))
		return JobListItem{}, ErrInternal
	}

	publish(ctx, u.publisher, u.logger, events.RecordsUpdated(events.EntityJob, "status_changed", updated.ID.String()))
	return u.withCompany(ctx, updated)
}

func (u *Jobs) withCompany(ctx context.Context, j job.Job) (JobListItem, error) {
	providers, err := u.lookupProviders(ctx, []job.Job{j})
	if err != nil {
		return JobListItem{}, ErrInternal
	}
	return JobListItem{Job: j, CompanyName: providers[j.ProviderID].CompanyName}, nil
}

func (u *Jobs) lookupProviders(ctx context.Context, items []job.Job) (map[uuid.UUID]provider.Provider, error) {
	providers, err := findProviders(ctx, u.providers, items)
	if err != nil {
		u.logger.Error("lookup providers failed", zap.Error(err))
		return nil, err
	}
	return providers, nil
}

// findProviders resolves the distinct provider ids referenced by items.
func findProviders(ctx context.Context, repo repository.ProviderRepository, items []job.Job) (map[uuid.UUID]provider.Provider, error) {
	if len(items) == 0 {
		return map[uuid.UUID]provider.Provider{}, nil
	}
	seen := make(map[uuid.UUID]struct{}, len(items))
	ids := make([]uuid.UUID, 0, len(items))
	for _, j := range items {
		if _, ok := seen[j.ProviderID]; ok {
			continue
		}
		seen[j.ProviderID] = struct{}{}
		ids = append(ids, j.ProviderID)
	}
	return repo.FindByIDs(ctx, ids)
}
