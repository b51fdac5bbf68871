package repository

import (
	"context"
	"fmt"

	"jobbridge/internal/database"
	"jobbridge/internal/domain/beneficiary"
	"jobbridge/internal/domain/skill"

	"github.com/google/uuid"
)

type BeneficiaryRepository interface {
	Create(ctx context.Context, b beneficiary.Beneficiary) (beneficiary.Beneficiary, error)
	GetByID(ctx context.Context, id uuid.UUID) (beneficiary.Beneficiary, error)
	List(ctx context.Context) ([]beneficiary.Beneficiary, error)
}

type PostgresBeneficiaryRepository struct {
	db database.DB
}

func NewPostgresBeneficiaryRepository(db database.DB) *PostgresBeneficiaryRepository {
	return &PostgresBeneficiaryRepository{db: db}
}

const beneficiaryColumns = `id, full_name, phone_number, email, address, date_of_birth, gender, education, experience, skills, attachments, COALESCE(created_by, '00000000-0000-0000-0000-000000000000'::uuid), created_at`

func (r *PostgresBeneficiaryRepository) Create(ctx context.Context, b beneficiary.Beneficiary) (beneficiary.Beneficiary, error) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	attachments := b.Attachments
	if attachments == nil {
		attachments = []string{}
	}

	row := r.db.QueryRow(ctx,
		`INSERT INTO beneficiaries (id, full_name, phone_number, email, address, date_of_birth, gender, education, experience, skills, attachments, created_by)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 RETURNING `+beneficiaryColumns,
		b.ID, b.FullName, b.PhoneNumber, b.Email, b.Address, b.DateOfBirth, b.Gender, b.Education, b.Experience,
		b.Skills.Labels(), attachments, nullableUUID(b.CreatedBy),
	)
	created, err := scanBeneficiary(row)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return beneficiary.Beneficiary{}, ErrConflict
		}
		return beneficiary.Beneficiary{}, fmt.Errorf("insert beneficiary: %w", err)
	}
	return created, nil
}

func (r *PostgresBeneficiaryRepository) GetByID(ctx context.Context, id uuid.UUID) (beneficiary.Beneficiary, error) {
	row := r.db.QueryRow(ctx, `SELECT `+beneficiaryColumns+` FROM beneficiaries WHERE id = $1`, id)
	b, err := scanBeneficiary(row)
	if err != nil {
		if database.IsNoRows(err) {
			return beneficiary.Beneficiary{}, ErrNotFound
		}
		return beneficiary.Beneficiary{}, err
	}
	return b, nil
}

func (r *PostgresBeneficiaryRepository) List(ctx context.Context) ([]beneficiary.Beneficiary, error) {
	rows, err := r.db.Query(ctx, `SELECT `+beneficiaryColumns+` FROM beneficiaries ORDER BY created_at DESC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]beneficiary.Beneficiary, 0)
	for rows.Next() {
		b, err := scanBeneficiary(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanBeneficiary(row database.Row) (beneficiary.Beneficiary, error) {
	var b beneficiary.Beneficiary
	var skills []string
	if err := row.Scan(
		&b.ID, &b.FullName, &b.PhoneNumber, &b.Email, &b.Address, &b.DateOfBirth, &b.Gender, &b.Education, &b.Experience,
		&skills, &b.Attachments, &b.CreatedBy, &b.CreatedAt,
	); err != nil {
		return beneficiary.Beneficiary{}, err
	}
	b.Skills = skill.NewSet(skills...)
	if b.Attachments == nil {
		b.Attachments = []string{}
	}
	return b, nil
}

func nullableUUID(id uuid.UUID) *uuid.UUID {
	if id == uuid.Nil {
		return nil
	}
	return &id
}
