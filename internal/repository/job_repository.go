package repository

import (
	"context"
	"fmt"

	"jobbridge/internal/database"
	"jobbridge/internal/domain/job"
	"jobbridge/internal/domain/skill"

	"github.com/google/uuid"
)

type JobRepository interface {
	Create(ctx context.Context, j job.Job) (job.Job, error)
	GetByID(ctx context.Context, id uuid.UUID) (job.Job, error)
	List(ctx context.Context) ([]job.Job, error)
	ListByStatus(ctx context.Context, status job.Status) ([]job.Job, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status job.Status) (job.Job, error)
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

const jobColumns = `id, provider_id, title, category, description, required_skills, location, salary_range, openings, status, COALESCE(created_by, '00000000-0000-0000-0000-000000000000'::uuid), created_at`

func (r *PostgresJobRepository) Create(ctx context.Context, j job.Job) (job.Job, error) {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	if j.Status == "" {
		j.Status = job.StatusActive
	}

	row := r.db.QueryRow(ctx,
		`INSERT INTO jobs (id, provider_id, title, category, description, required_skills, location, salary_range, openings, status, created_by)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 RETURNING `+jobColumns,
		j.ID, j.ProviderID, j.Title, string(j.Category), j.Description, j.RequiredSkills.Labels(),
		j.Location, j.SalaryRange, j.Openings, string(j.Status), nullableUUID(j.CreatedBy),
	)
	created, err := scanJob(row)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return job.Job{}, ErrConflict
		}
		return job.Job{}, fmt.Errorf("insert job: %w", err)
	}
	return created, nil
}

func (r *PostgresJobRepository) GetByID(ctx context.Context, id uuid.UUID) (job.Job, error) {
	row := r.db.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id)
	j, err := scanJob(row)
	if err != nil {
		if database.IsNoRows(err) {
			return job.Job{}, ErrNotFound
		}
		return job.Job{}, err
	}
	return j, nil
}

func (r *PostgresJobRepository) List(ctx context.Context) ([]job.Job, error) {
	rows, err := r.db.Query(ctx, `SELECT `+jobColumns+` FROM jobs ORDER BY created_at DESC, id ASC`)
	if err != nil {
		return nil, err
	}
	return collectJobs(rows)
}

func (r *PostgresJobRepository) ListByStatus(ctx context.Context, status job.Status) ([]job.Job, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE status = $1 ORDER BY created_at DESC, id ASC`,
		string(status),
	)
	if err != nil {
		return nil, err
	}
	return collectJobs(rows)
}

func (r *PostgresJobRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status job.Status) (job.Job, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE jobs SET status = $1 WHERE id = $2 RETURNING `+jobColumns,
		string(status), id,
	)
	j, err := scanJob(row)
	if err != nil {
		if database.IsNoRows(err) {
			return job.Job{}, ErrNotFound
		}
		return job.Job{}, err
	}
	return j, nil
}

func collectJobs(rows database.Rows) ([]job.Job, error) {
	defer rows.Close()

	out := make([]job.Job, 0)
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanJob(row database.Row) (job.Job, error) {
	var j job.Job
	var category, status string
	var skills []string
	if err := row.Scan(
		&j.ID, &j.ProviderID, &j.Title, &category, &j.Description, &skills,
		&j.Location, &j.SalaryRange, &j.Openings, &status, &j.CreatedBy, &j.CreatedAt,
	); err != nil {
		return job.Job{}, err
	}
	j.Category = job.Category(category)
	j.Status = job.Status(status)
	j.RequiredSkills = skill.NewSet(skills...)
	return j, nil
}
