package repository

import (
	"context"
	"fmt"

	"jobbridge/internal/database"
	"jobbridge/internal/domain/skill"

	"github.com/google/uuid"
)

type SkillRepository interface {
	GetAllSkills(ctx context.Context) ([]skill.Skill, error)
	CreateSkill(ctx context.Context, name string) (skill.Skill, error)
}

type PostgresSkillRepository struct {
	db database.DB
}

func NewPostgresSkillRepository(db database.DB) *PostgresSkillRepository {
	return &PostgresSkillRepository{db: db}
}

func (r *PostgresSkillRepository) GetAllSkills(ctx context.Context) ([]skill.Skill, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, created_at FROM skills ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]skill.Skill, 0)
	for rows.Next() {
		var s skill.Skill
		if err := rows.Scan(&s.ID, &s.Name, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresSkillRepository) CreateSkill(ctx context.Context, name string) (skill.Skill, error) {
	s := skill.Skill{ID: uuid.New(), Name: name}
	row := r.db.QueryRow(ctx, `INSERT INTO skills (id, name) VALUES ($1, $2) RETURNING created_at`, s.ID, s.Name)
	if err := row.Scan(&s.CreatedAt); err != nil {
		if database.IsUniqueViolation(err) {
			return skill.Skill{}, ErrConflict
		}
		return skill.Skill{}, fmt.Errorf("insert skill: %w", err)
	}
	return s, nil
}
