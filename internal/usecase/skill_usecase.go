package usecase

import (
	"context"
	"errors"
	"strings"

	"jobbridge/internal/domain/skill"
	"jobbridge/internal/infrastructure/events"
	"jobbridge/internal/logger"
	"jobbridge/internal/repository"

	"go.uber.org/zap"
)

const skillCatalogueCacheKey = "skills:catalogue"

type SkillUsecase interface {
	ListSkills(ctx context.Context) ([]skill.Skill, error)
	AddSkill(ctx context.Context, name string) (skill.Skill, error)
}

type Skills struct {
	repo      repository.SkillRepository
	cache     Cache
	publisher events.Publisher
	logger    *zap.Logger
}

// NewSkillUsecase serves the selectable skill catalogue. cache may be nil.
func NewSkillUsecase(repo repository.SkillRepository, cache Cache, publisher events.Publisher, log *zap.Logger) *Skills {
	if publisher == nil {
		publisher = events.Nop()
	}
	return &Skills{repo: repo, cache: cache, publisher: publisher, logger: logger.OrNop(log)}
}

func (u *Skills) ListSkills(ctx context.Context) ([]skill.Skill, error) {
	if u.cache != nil {
		var cached []skill.Skill
		ok, err := u.cache.GetJSON(ctx, skillCatalogueCacheKey, &cached)
		if err != nil {
			u.logger.Debug("skill catalogue cache read failed", zap.Error(err))
		}
		if ok {
			return cached, nil
		}
	}

	items, err := u.repo.GetAllSkills(ctx)
	if err != nil {
		u.logger.Error("list skills failed", zap.Error(err))
		return nil, ErrInternal
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, skillCatalogueCacheKey, items, 0); err != nil {
			u.logger.Debug("skill catalogue cache write failed", zap.Error(err))
		}
	}
	return items, nil
}

func (u *Skills) AddSkill(ctx context.Context, name string) (skill.Skill, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return skill.Skill{}, invalidf("skill name is required")
	}

	created, err := u.repo.CreateSkill(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return skill.Skill{}, ErrConflict
		}
		u.logger.Error("create skill failed", zap.String("name", name), zap.Error(err))
		return skill.Skill{}, ErrInternal
	}

	if u.cache != nil {
		if err := u.cache.Delete(ctx, skillCatalogueCacheKey); err != nil {
			u.logger.Warn("skill catalogue cache invalidation failed", zap.Error(err))
		}
	}
	publish(ctx, u.publisher, u.logger, events.RecordsUpdated(events.EntitySkill, "created", created.ID.String()))
	return created, nil
}
