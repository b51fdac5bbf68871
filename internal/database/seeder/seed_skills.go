package seeder

import (
	"context"
	"fmt"

	"jobbridge/internal/database"
	"jobbridge/internal/domain/skill"
)

// SkillsSeeder fills the skill catalogue with the labels offered on the
// intake forms. Existing names are left untouched.
type SkillsSeeder struct {
	Names []string
}

func (SkillsSeeder) Name() string { return "skills" }

func (s SkillsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "skills", "id", "name", "created_at"); err != nil {
		return err
	}

	names := s.Names
	if len(names) == 0 {
		names = skill.DefaultCatalogue
	}

	return database.WithTx(ctx, db, func(tx database.Tx) error {
		for _, name := range names {
			if _, err := tx.Exec(
				ctx,
				`INSERT INTO skills (id, name) VALUES (gen_random_uuid(), $1) ON CONFLICT (name) DO NOTHING`,
				name,
			); err != nil {
				return fmt.Errorf("insert skill %q: %w", name, err)
			}
		}
		return nil
	})
}
