package usecase

import (
	"context"
	"errors"
	"time"

	"jobbridge/internal/domain/beneficiary"
	"jobbridge/internal/domain/job"
	"jobbridge/internal/domain/matching"
	"jobbridge/internal/logger"
	"jobbridge/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const maxMatchesLimit = 200

type MatchParams struct {
	Query  string // beneficiary name, case-insensitive substring
	Phone  string
	Limit  int // 0 returns everything after Offset
	Offset int
}

type MatchItem struct {
	matching.Match
	CompanyName string
}

type MatchPage struct {
	Items []MatchItem
	Total int
}

type MatchingUsecase interface {
	GetMatches(ctx context.Context, params MatchParams) (MatchPage, error)
}

type Matching struct {
	beneficiaries repository.BeneficiaryRepository
	jobs          repository.JobRepository
	providers     repository.ProviderRepository
	timeout       time.Duration
	logger        *zap.Logger
}

func NewMatchingUsecase(
	beneficiaries repository.BeneficiaryRepository,
	jobs repository.JobRepository,
	providers repository.ProviderRepository,
	timeout time.Duration,
	log *zap.Logger,
) *Matching {
	return &Matching{
		beneficiaries: beneficiaries,
		jobs:          jobs,
		providers:     providers,
		timeout:       timeout,
		logger:        logger.OrNop(log),
	}
}

// GetMatches ranks every beneficiary against every active job. Search and
// pagination only slice the ranked list.
func (u *Matching) GetMatches(ctx context.Context, params MatchParams) (MatchPage, error) {
	if params.Limit < 0 || params.Limit > maxMatchesLimit {
		return MatchPage{}, invalidf("limit must be between 0 and %d", maxMatchesLimit)
	}
	if params.Offset < 0 {
		return MatchPage{}, invalidf("offset must not be negative")
	}

	if u.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, u.timeout)
		defer cancel()
	}

	var (
		people []beneficiary.Beneficiary
		open   []job.Job
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		people, err = u.beneficiaries.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		open, err = u.jobs.ListByStatus(gctx, job.StatusActive)
		return err
	})
	if err := g.Wait(); err != nil {
		return MatchPage{}, u.fetchError(ctx, err)
	}

	done := make(chan []matching.Match, 1)
	go func() {
		done <- matching.ComputeMatches(people, open)
	}()

	var ranked []matching.Match
	select {
	case ranked = <-done:
	case <-ctx.Done():
		u.logger.Warn("matching exceeded budget",
			zap.Duration("timeout", u.timeout),
			zap.Int("beneficiaries", len(people)),
			zap.Int("jobs", len(open)),
		)
		return MatchPage{}, ErrMatchingUnavailable
	}

	filter := beneficiary.Filter{Name: params.Query, Phone: params.Phone}
	if !filter.IsZero() {
		kept := ranked[:0:0]
		for _, m := range ranked {
			if filter.Match(m.Beneficiary) {
				kept = append(kept, m)
			}
		}
		ranked = kept
	}

	total := len(ranked)
	ranked = paginate(ranked, params.Limit, params.Offset)

	companies := u.companyNames(ctx, ranked)
	items := make([]MatchItem, 0, len(ranked))
	for _, m := range ranked {
		items = append(items, MatchItem{Match: m, CompanyName: companies[m.Job.ProviderID]})
	}
	return MatchPage{Items: items, Total: total}, nil
}

func (u *Matching) fetchError(ctx context.Context, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		u.logger.Warn("matching fetch exceeded budget", zap.Duration("timeout", u.timeout), zap.Error(err))
		return ErrMatchingUnavailable
	}
	u.logger.Error("matching fetch failed", zap.Error(err))
	return ErrInternal
}

// companyNames never fails the request. A provider that cannot be resolved
// shows an empty company name.
func (u *Matching) companyNames(ctx context.Context, ranked []matching.Match) map[uuid.UUID]string {
	out := make(map[uuid.UUID]string)
	if len(ranked) == 0 {
		return out
	}

	jobs := make([]job.Job, 0, len(ranked))
	for _, m := range ranked {
		jobs = append(jobs, m.Job)
	}
	providers, err := findProviders(ctx, u.providers, jobs)
	if err != nil {
		u.logger.Warn("provider lookup failed, company names omitted", zap.Error(err))
		return out
	}
	for id, p := range providers {
		out[id] = p.CompanyName
	}
	return out
}

func paginate[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return []T{}
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
