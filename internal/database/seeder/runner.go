package seeder

import (
	"context"
	"errors"
	"fmt"
	"time"

	"jobbridge/internal/database"

	"go.uber.org/zap"
)

// Seeder loads one group of reference rows. Running a seeder twice must leave
// the same rows behind.
type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}

// Runner applies seeders in order and stops at the first failure.
type Runner struct {
	Seeders []Seeder
	Logger  *zap.Logger
}

// NewRunner returns the catalogue seeder, followed by the sample providers,
// jobs and beneficiaries when demo is set.
func NewRunner(log *zap.Logger, demo bool) Runner {
	seeders := []Seeder{SkillsSeeder{}}
	if demo {
		seeders = append(seeders, DemoSeeder{})
	}
	return Runner{Seeders: seeders, Logger: log}
}

func (r Runner) Run(ctx context.Context, db database.DB) error {
	if db == nil {
		return errors.New("nil db")
	}
	log := r.Logger
	if log == nil {
		log = zap.NewNop()
	}

	for _, s := range r.Seeders {
		if s == nil {
			continue
		}
		started := time.Now()
		if err := s.Run(ctx, db); err != nil {
			return fmt.Errorf("seed %s: %w", s.Name(), err)
		}
		log.Info("seeder applied", zap.String("seeder", s.Name()), zap.Duration("elapsed", time.Since(started)))
	}
	return nil
}
